package domain

import (
	"fmt"
	"time"
)

type PlanKind string

const (
	PlanTraining  PlanKind = "training"
	PlanNutrition PlanKind = "nutrition"
	PlanTactics   PlanKind = "tactics"
	PlanWarmup    PlanKind = "warmup"
	PlanMental    PlanKind = "mental"
	PlanHydration PlanKind = "hydration"
	PlanCustom    PlanKind = "custom"
)

var planKinds = []PlanKind{
	PlanTraining, PlanNutrition, PlanTactics, PlanWarmup, PlanMental, PlanHydration, PlanCustom,
}

var planLabels = map[PlanKind]string{
	PlanTraining:  "Training Plan",
	PlanNutrition: "Nutrition Plan",
	PlanTactics:   "Tactical Advice",
	PlanWarmup:    "Warm-Up Routine",
	PlanMental:    "Mental Focus",
	PlanHydration: "Hydration Schedule",
	PlanCustom:    "Custom Request",
}

func PlanKinds() []PlanKind {
	return planKinds
}

func ParsePlanKind(s string) (PlanKind, bool) {
	kind := PlanKind(s)
	_, ok := planLabels[kind]
	return kind, ok
}

func (k PlanKind) Label() string {
	return planLabels[k]
}

type Plan struct {
	Kind        PlanKind
	Text        string
	Model       string
	GeneratedAt time.Time
}

// GenerationConfig carries the fixed sampling parameters for one generation call.
type GenerationConfig struct {
	Temperature     float64 `yaml:"temperature"`
	TopP            float64 `yaml:"top_p"`
	MaxOutputTokens int     `yaml:"max_output_tokens"`
}

// GenerationError normalizes text-generation service failures into one type.
type GenerationError struct {
	Reason string
	Err    error
}

func (e GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Reason, e.Err.Error())
	}
	return e.Reason
}

func (e GenerationError) Unwrap() error {
	return e.Err
}

// ProbeFailure records why one candidate model did not answer the startup probe.
type ProbeFailure struct {
	Model  string
	Reason string
}

// ModelSelection is the outcome of probing the ordered candidate model list:
// either a working model identifier or the full list of failures.
type ModelSelection struct {
	Model    string
	Failures []ProbeFailure
}

func (s ModelSelection) OK() bool {
	return s.Model != ""
}

type ErrorEntry struct {
	Id        string
	Timestamp time.Time
	Context   string
	Message   string
	Detail    string
}
