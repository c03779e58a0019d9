package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/felixbrock/coachbot/internal/domain"
)

const geminiBaseUrl = "https://generativelanguage.googleapis.com/v1beta"

// probe settings mirror the startup handshake: a trivial prompt with a tiny
// output cap, just to see whether the model answers at all.
const probePrompt = "Respond with only the word 'OK'"

var probeParams = domain.GenerationConfig{Temperature: 0.1, MaxOutputTokens: 10}

// GeminiRepo performs single synchronous generateContent calls against the
// hosted Gemini REST endpoint. Model is set once by SelectModel and never
// renegotiated afterwards.
type GeminiRepo struct {
	ApiKey  string
	BaseUrl string
	Model   string
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiGenerateReq struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiGenerateResp struct {
	Candidates []geminiCandidate `json:"candidates"`
}

// Generate submits one prompt with fixed sampling parameters and returns the
// generated text. Every failure mode comes back as a domain.GenerationError.
func (r *GeminiRepo) Generate(ctx context.Context, prompt string, params domain.GenerationConfig) (string, error) {
	if r.Model == "" {
		return "", domain.GenerationError{Reason: "no working model selected"}
	}
	return r.generate(ctx, r.Model, prompt, params)
}

// SelectModel probes candidate models in order and locks in the first one
// that answers. The returned selection carries every failure encountered so
// the caller can report an exhausted list without exception-shaped control flow.
func (r *GeminiRepo) SelectModel(ctx context.Context, candidates []string) domain.ModelSelection {
	var failures []domain.ProbeFailure

	for _, model := range candidates {
		text, err := r.generate(ctx, model, probePrompt, probeParams)
		if err != nil {
			failures = append(failures, domain.ProbeFailure{Model: model, Reason: err.Error()})
			continue
		}

		slog.Info(fmt.Sprintf("model %s answered probe with %q", model, text))
		r.Model = model
		return domain.ModelSelection{Model: model, Failures: failures}
	}

	return domain.ModelSelection{Failures: failures}
}

func (r *GeminiRepo) generate(ctx context.Context, model string, prompt string, params domain.GenerationConfig) (string, error) {
	body, err := json.Marshal(geminiGenerateReq{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     params.Temperature,
			TopP:            params.TopP,
			MaxOutputTokens: params.MaxOutputTokens,
		},
	})

	if err != nil {
		return "", domain.GenerationError{Reason: "encoding generation request failed", Err: err}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", r.baseUrl(), model, r.ApiKey)

	resp, err := request[geminiGenerateResp](ctx, reqConfig{
		Method:  "POST",
		Url:     url,
		Headers: []string{"Content-Type:application/json"},
		Body:    body,
	}, 200)

	if err != nil {
		return "", domain.GenerationError{Reason: "generation request failed", Err: err}
	}

	text := responseText(resp)
	if text == "" {
		return "", domain.GenerationError{Reason: "empty response from model"}
	}

	return text, nil
}

func (r *GeminiRepo) baseUrl() string {
	if r.BaseUrl != "" {
		return r.BaseUrl
	}
	return geminiBaseUrl
}

func responseText(resp *geminiGenerateResp) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}

	return strings.TrimSpace(b.String())
}
