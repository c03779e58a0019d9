package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixbrock/coachbot/internal/domain"
)

func testProfile() domain.Profile {
	return domain.Profile{
		Sport:            "cricket",
		Position:         "Batsman",
		Age:              18,
		Gender:           "Male",
		Height:           "175",
		Weight:           "65.5",
		Experience:       3,
		TrainingDays:     4,
		FitnessLevel:     "Intermediate",
		Goals:            []string{"Strength", "Skill"},
		CurrentInjury:    domain.NoInjury,
		CompetitionLevel: "Club",
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	profile := testProfile()

	for _, kind := range domain.PlanKinds() {
		first := buildPrompt(kind, profile)
		second := buildPrompt(kind, profile)

		require.NotEmpty(t, first, "kind %s", kind)
		assert.Equal(t, first, second, "kind %s must produce byte-identical prompts", kind)
	}
}

func TestBuildPrompt_TrainingCricketScenario(t *testing.T) {
	prompt := buildPrompt(domain.PlanTraining, testProfile())

	assert.Contains(t, prompt, "CRICKET")
	assert.Contains(t, prompt, "Batsman")
	assert.Contains(t, prompt, "4-week")
	assert.Contains(t, prompt, "Strength, Skill")
}

func TestBuildPrompt_InjurySwitchesToRecoveryProgram(t *testing.T) {
	profile := testProfile()
	profile.CurrentInjury = "Hamstring strain"
	profile.InjuryDuration = "2-4 weeks"

	prompt := buildPrompt(domain.PlanTraining, profile)

	assert.Contains(t, prompt, "DO NOT recommend exercises that could worsen Hamstring strain")
	assert.Contains(t, prompt, "3-PHASE RECOVERY PROGRAM")
	assert.NotContains(t, prompt, "4-week")
}

func TestBuildPrompt_NutritionSubstitutesPlaceholders(t *testing.T) {
	profile := testProfile()
	profile.Weight = ""
	profile.Height = ""

	prompt := buildPrompt(domain.PlanNutrition, profile)

	assert.Contains(t, prompt, "Weight: Not specified kg")
	assert.Contains(t, prompt, "Height: Not specified cm")
	assert.Contains(t, prompt, "- No dietary restrictions")
	assert.NotContains(t, prompt, "RARE ALLERGIES")
}

func TestBuildPrompt_NutritionListsRestrictionsAndAllergies(t *testing.T) {
	profile := testProfile()
	profile.DietaryRestrictions = []string{"No gluten", "No nuts"}
	profile.RareAllergies = "avocado"

	prompt := buildPrompt(domain.PlanNutrition, profile)

	assert.Contains(t, prompt, "- No gluten\n")
	assert.Contains(t, prompt, "- No nuts\n")
	assert.Contains(t, prompt, "RARE ALLERGIES:\n- avocado")
	assert.Contains(t, prompt, "7-day nutrition plan")
}

func TestBuildPrompt_WarmupUsesEnergyProfile(t *testing.T) {
	prompt := buildPrompt(domain.PlanWarmup, testProfile())

	assert.Contains(t, prompt, "Aerobic 60% / Anaerobic 30% / Power 10%")
	assert.Contains(t, prompt, "CRICKET")
}

func TestBuildPrompt_CustomFallsBackWhenRequestEmpty(t *testing.T) {
	profile := testProfile()
	profile.CustomRequest = ""

	prompt := buildPrompt(domain.PlanCustom, profile)

	assert.Contains(t, prompt, "REQUEST:\nNot specified")
}

func TestBuildPrompt_EveryKindEmbedsSport(t *testing.T) {
	profile := testProfile()

	for _, kind := range domain.PlanKinds() {
		prompt := buildPrompt(kind, profile)
		lower := strings.ToLower(prompt)
		assert.Contains(t, lower, "cricket", "kind %s", kind)
	}
}
