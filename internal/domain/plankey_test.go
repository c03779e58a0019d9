package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func keyProfile() Profile {
	return Profile{
		Sport:               "cricket",
		Position:            "Batsman",
		Age:                 18,
		Gender:              "Male",
		Weight:              "65.5",
		CurrentInjury:       NoInjury,
		DietaryRestrictions: []string{"No gluten", "No nuts"},
	}
}

func TestKeyFor_TrainingIgnoresDietChanges(t *testing.T) {
	a := keyProfile()
	b := keyProfile()
	b.DietaryRestrictions = []string{"No soy"}
	b.RareAllergies = "avocado"

	assert.Equal(t, KeyFor(PlanTraining, a), KeyFor(PlanTraining, b))
}

func TestKeyFor_TrainingSplitsOnInjury(t *testing.T) {
	healthy := keyProfile()
	injured := keyProfile()
	injured.CurrentInjury = "Hamstring strain"
	injured.InjuryDuration = "2-4 weeks"

	assert.NotEqual(t, KeyFor(PlanTraining, healthy), KeyFor(PlanTraining, injured))

	longer := injured
	longer.InjuryDuration = "> 3 months"
	assert.NotEqual(t, KeyFor(PlanTraining, injured), KeyFor(PlanTraining, longer))
}

func TestKeyFor_NutritionTracksDiet(t *testing.T) {
	a := keyProfile()
	b := keyProfile()
	b.DietaryRestrictions = []string{"No soy"}

	assert.NotEqual(t, KeyFor(PlanNutrition, a), KeyFor(PlanNutrition, b))

	c := keyProfile()
	c.Weight = "80"
	assert.NotEqual(t, KeyFor(PlanNutrition, a), KeyFor(PlanNutrition, c))
}

func TestKeyFor_NutritionIsRestrictionOrderInsensitive(t *testing.T) {
	a := keyProfile()
	a.DietaryRestrictions = []string{"No nuts", "No gluten"}
	b := keyProfile()
	b.DietaryRestrictions = []string{"No gluten", "No nuts"}

	assert.Equal(t, KeyFor(PlanNutrition, a), KeyFor(PlanNutrition, b))
}

func TestKeyFor_CustomTracksRequestText(t *testing.T) {
	a := keyProfile()
	a.CustomRequest = "improve my pull shot"
	b := keyProfile()
	b.CustomRequest = "improve my cover drive"

	assert.NotEqual(t, KeyFor(PlanCustom, a), KeyFor(PlanCustom, b))
}

func TestKeyFor_HydrationTracksWeightOnly(t *testing.T) {
	a := keyProfile()
	b := keyProfile()
	b.DietaryRestrictions = nil
	b.Goals = []string{"Speed"}

	assert.Equal(t, KeyFor(PlanHydration, a), KeyFor(PlanHydration, b))

	c := keyProfile()
	c.Weight = "90"
	assert.NotEqual(t, KeyFor(PlanHydration, a), KeyFor(PlanHydration, c))
}
