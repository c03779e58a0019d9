package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixbrock/coachbot/internal/domain"
)

func generateBody(text string) string {
	resp := geminiGenerateResp{
		Candidates: []geminiCandidate{{Content: geminiContent{Parts: []geminiPart{{Text: text}}}}},
	}
	raw, _ := json.Marshal(resp)
	return string(raw)
}

func TestGenerate_ReturnsText(t *testing.T) {
	var gotPath string
	var gotReq geminiGenerateReq

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		fmt.Fprint(w, generateBody("WEEK 1: drills"))
	}))
	defer server.Close()

	repo := &GeminiRepo{ApiKey: "key", BaseUrl: server.URL, Model: "gemini-1.5-pro"}

	text, err := repo.Generate(context.Background(), "build a plan", domain.GenerationConfig{
		Temperature: 0.3, TopP: 0.8, MaxOutputTokens: 1500,
	})

	require.NoError(t, err)
	assert.Equal(t, "WEEK 1: drills", text)
	assert.Equal(t, "/models/gemini-1.5-pro:generateContent", gotPath)
	require.Len(t, gotReq.Contents, 1)
	assert.Equal(t, "build a plan", gotReq.Contents[0].Parts[0].Text)
	assert.InDelta(t, 0.3, gotReq.GenerationConfig.Temperature, 0.001)
	assert.Equal(t, 1500, gotReq.GenerationConfig.MaxOutputTokens)
}

func TestGenerate_EmptyResultIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates":[]}`)
	}))
	defer server.Close()

	repo := &GeminiRepo{ApiKey: "key", BaseUrl: server.URL, Model: "gemini-1.5-pro"}

	_, err := repo.Generate(context.Background(), "build a plan", domain.GenerationConfig{Temperature: 0.3})

	var genErr domain.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "empty response from model", genErr.Reason)
}

func TestGenerate_RejectedRequestIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", 403)
	}))
	defer server.Close()

	repo := &GeminiRepo{ApiKey: "bad", BaseUrl: server.URL, Model: "gemini-1.5-pro"}

	_, err := repo.Generate(context.Background(), "build a plan", domain.GenerationConfig{Temperature: 0.3})

	var genErr domain.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, genErr.Error(), "403")
}

func TestGenerate_WithoutSelectedModel(t *testing.T) {
	repo := &GeminiRepo{ApiKey: "key"}

	_, err := repo.Generate(context.Background(), "build a plan", domain.GenerationConfig{Temperature: 0.3})

	var genErr domain.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "no working model selected", genErr.Reason)
}

func TestSelectModel_FallsThroughToFirstAnswering(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "gemini-1.5-pro") {
			http.Error(w, "not available", 500)
			return
		}
		fmt.Fprint(w, generateBody("OK"))
	}))
	defer server.Close()

	repo := &GeminiRepo{ApiKey: "key", BaseUrl: server.URL}

	selection := repo.SelectModel(context.Background(), []string{"gemini-1.5-pro", "gemini-1.5-flash"})

	require.True(t, selection.OK())
	assert.Equal(t, "gemini-1.5-flash", selection.Model)
	assert.Equal(t, "gemini-1.5-flash", repo.Model)
	require.Len(t, selection.Failures, 1)
	assert.Equal(t, "gemini-1.5-pro", selection.Failures[0].Model)
	assert.Contains(t, selection.Failures[0].Reason, "500")
}

func TestSelectModel_ExhaustedReportsEveryFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", 500)
	}))
	defer server.Close()

	repo := &GeminiRepo{ApiKey: "key", BaseUrl: server.URL}

	selection := repo.SelectModel(context.Background(), []string{"a", "b", "c"})

	assert.False(t, selection.OK())
	assert.Empty(t, repo.Model)
	assert.Len(t, selection.Failures, 3)
}
