package domain

import (
	"fmt"
	"sort"
	"strings"
)

// PlanKey identifies one cacheable plan. Only the fields a plan kind actually
// embeds in its prompt participate; the rest stay zero so that irrelevant
// profile edits cannot invalidate or collide entries.
type PlanKey struct {
	Kind     PlanKind
	Sport    string
	Position string
	Injury   string
	Diet     string
	Request  string
}

// KeyFor derives the cache key for a plan kind from the current profile.
//
// Key policy:
//   - training, warmup: sport + position + injury (incl. duration); an injury
//     switches the program wholesale, so it must split the cache namespace
//   - nutrition: sport + position + diet discriminator (weight, gender,
//     restrictions, allergies) — everything the meal plan embeds
//   - tactics, mental: sport + position
//   - hydration: sport + position + weight
//   - custom: sport + the free-text request itself
func KeyFor(kind PlanKind, p Profile) PlanKey {
	key := PlanKey{Kind: kind, Sport: p.Sport}

	switch kind {
	case PlanTraining, PlanWarmup:
		key.Position = p.Position
		key.Injury = injuryDiscriminator(p)
	case PlanNutrition:
		key.Position = p.Position
		key.Diet = dietDiscriminator(p)
	case PlanTactics, PlanMental:
		key.Position = p.Position
	case PlanHydration:
		key.Position = p.Position
		key.Diet = p.Weight
	case PlanCustom:
		key.Request = p.CustomRequest
	}

	return key
}

func injuryDiscriminator(p Profile) string {
	if !p.Injured() {
		return NoInjury
	}
	return fmt.Sprintf("%s (%s)", p.CurrentInjury, p.InjuryDuration)
}

func dietDiscriminator(p Profile) string {
	restrictions := append([]string(nil), p.DietaryRestrictions...)
	sort.Strings(restrictions)

	parts := []string{p.Weight, p.Gender}
	parts = append(parts, restrictions...)
	if p.RareAllergies != "" {
		parts = append(parts, p.RareAllergies)
	}

	return strings.Join(parts, "|")
}
