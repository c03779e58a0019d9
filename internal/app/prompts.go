package app

import (
	"fmt"
	"strings"

	"github.com/felixbrock/coachbot/internal/domain"
)

// buildPrompt maps a profile and plan kind to the instruction text sent to the
// model. Pure and deterministic: the same profile and kind always produce a
// byte-identical prompt.
func buildPrompt(kind domain.PlanKind, p domain.Profile) string {
	switch kind {
	case domain.PlanTraining:
		if p.Injured() {
			return recoveryPrompt(p)
		}
		return trainingPrompt(p)
	case domain.PlanNutrition:
		return nutritionPrompt(p)
	case domain.PlanTactics:
		return tacticsPrompt(p)
	case domain.PlanWarmup:
		return warmupPrompt(p)
	case domain.PlanMental:
		return mentalPrompt(p)
	case domain.PlanHydration:
		return hydrationPrompt(p)
	case domain.PlanCustom:
		return customPrompt(p)
	}

	return ""
}

func trainingPrompt(p domain.Profile) string {
	return fmt.Sprintf(`Create a COMPLETE 4-week training program for:

SPORT: %s
POSITION: %s
AGE: %d years
EXPERIENCE: %d years
TRAINING DAYS: %d/week
GOALS: %s
FITNESS LEVEL: %s

The program MUST include:

WEEK 1-2: BASE BUILDING
- Sport-specific skill drills
- Strength foundation
- Aerobic conditioning
- Mobility work

WEEK 3-4: INTENSIFICATION
- Power development
- High-intensity intervals
- Technical refinement
- Mental preparation

For EACH week provide:
1. Daily workout schedule
2. Specific exercises with sets/reps
3. Recovery protocols
4. Nutrition timing advice
5. Progress tracking metrics

Make it SPECIFIC to %s %s.`,
		strings.ToUpper(p.Sport), p.Position, p.Age, p.Experience, p.TrainingDays,
		listOr(p.Goals, domain.NotSpecified), orNotSpecified(p.FitnessLevel),
		p.Sport, p.Position)
}

func recoveryPrompt(p domain.Profile) string {
	return fmt.Sprintf(`Create a SAFE, injury-modified training program for:

SPORT: %s
POSITION: %s
INJURY: %s
INJURY DURATION: %s
LIMITATIONS: %s
AGE: %d years

IMPORTANT SAFETY RULES:
1. DO NOT recommend exercises that could worsen %s
2. Focus on rehabilitation and safe alternatives
3. Include gradual progression
4. Add warning signs to watch for

Create a 3-PHASE RECOVERY PROGRAM:

PHASE 1 (Week 1-2): REHABILITATION
- Pain management
- Range of motion
- Very light activity

PHASE 2 (Week 3-4): MODIFIED TRAINING
- Sport-specific movements at reduced intensity
- Strength without aggravating injury
- Controlled progression

PHASE 3 (Week 5-6): RETURN PREPARATION
- Sport-specific drills
- Gradual intensity increase
- Performance testing

For each phase provide:
1. Daily exercise plan
2. Modifications for %s
3. Progression criteria
4. Safety precautions`,
		strings.ToUpper(p.Sport), p.Position, p.CurrentInjury,
		defaultStr(p.InjuryDuration, "Recent"), defaultStr(p.Limitations, "Pain during activity"),
		p.Age, p.CurrentInjury, p.Sport)
}

func nutritionPrompt(p domain.Profile) string {
	return fmt.Sprintf(`Create a DETAILED 7-day nutrition plan for a %s athlete.

ATHLETE PROFILE:
- Sport: %s
- Position: %s
- Age: %d years
- Weight: %s kg
- Height: %s cm
- Gender: %s
- Training: %d days/week
- Goals: %s

%s
NUTRITIONAL REQUIREMENTS:
- High protein for muscle repair
- Complex carbs for sustained energy
- Healthy fats for hormone balance
- Adequate hydration

Create a COMPLETE meal plan with:

FOR EACH DAY (Monday-Sunday):
1. BREAKFAST (with portion sizes)
2. MID-MORNING SNACK
3. LUNCH (main protein + carbs + veggies)
4. PRE-WORKOUT SNACK (1-2 hours before training)
5. POST-WORKOUT MEAL (within 30 minutes after)
6. DINNER
7. BEDTIME SNACK (if needed)

Include for each meal:
- Ingredients with quantities (grams/cups)
- Simple cooking instructions
- Macronutrient breakdown
- Approximate calories

ADDITIONAL SECTIONS:
1. Weekly Grocery Shopping List
2. Hydration Schedule (when & how much to drink)
3. Meal Prep Tips
4. Budget-Friendly Alternatives

IMPORTANT: Strictly respect all dietary restrictions listed above.`,
		p.Sport, p.Sport, p.Position, p.Age,
		orNotSpecified(p.Weight), orNotSpecified(p.Height), orNotSpecified(p.Gender),
		p.TrainingDays, listOr(p.Goals, domain.NotSpecified), dietaryInfo(p))
}

func dietaryInfo(p domain.Profile) string {
	var b strings.Builder
	b.WriteString("DIETARY RESTRICTIONS:\n")

	if len(p.DietaryRestrictions) > 0 {
		for _, restriction := range p.DietaryRestrictions {
			fmt.Fprintf(&b, "- %s\n", restriction)
		}
	} else {
		b.WriteString("- No dietary restrictions\n")
	}

	if p.RareAllergies != "" {
		fmt.Fprintf(&b, "\nRARE ALLERGIES:\n- %s\n", p.RareAllergies)
	}

	return b.String()
}

func tacticsPrompt(p domain.Profile) string {
	return fmt.Sprintf(`Provide detailed tactical coaching advice for:

SPORT: %s
POSITION: %s
EXPERIENCE: %d years
LEVEL: %s

Cover these areas:
1. Position-specific responsibilities
2. Game reading and decision making
3. Technical skill improvements
4. Mental preparation strategies
5. Match day routines
6. Opponent analysis methods
7. Communication with teammates
8. Common mistakes to avoid

Provide SPECIFIC examples for %s %s.`,
		strings.ToUpper(p.Sport), p.Position, p.Experience,
		orNotSpecified(p.CompetitionLevel), p.Sport, p.Position)
}

func warmupPrompt(p domain.Profile) string {
	aerobic, anaerobic, power := energySplit(p.Sport)

	return fmt.Sprintf(`Create a pre-training WARM-UP ROUTINE for:

SPORT: %s
POSITION: %s
ENERGY PROFILE: Aerobic %d%% / Anaerobic %d%% / Power %d%%
CURRENT INJURY: %s
FITNESS LEVEL: %s

The routine MUST include:
1. General activation (5 minutes)
2. Dynamic stretching sequence
3. Sport-specific movement preparation
4. Position-specific drills for a %s
5. Injury-prevention activations

If an injury is listed above, avoid any movement that loads %s and name a safe
substitute for each skipped drill.

Keep the complete routine under 20 minutes and give a duration for every step.`,
		strings.ToUpper(p.Sport), p.Position, aerobic, anaerobic, power,
		defaultStr(p.CurrentInjury, domain.NoInjury), orNotSpecified(p.FitnessLevel),
		p.Position, defaultStr(p.CurrentInjury, domain.NoInjury))
}

func mentalPrompt(p domain.Profile) string {
	return fmt.Sprintf(`Create a MENTAL FOCUS and preparation program for:

SPORT: %s
POSITION: %s
EXPERIENCE: %d years
COMPETITION LEVEL: %s
GOALS: %s

Cover these areas:
1. Pre-match visualization routine
2. Breathing and arousal control techniques
3. Concentration cues specific to a %s %s
4. Rebuilding confidence after mistakes mid-game
5. Pressure simulation drills for training sessions
6. Post-match review habits

Keep every technique actionable and give a daily 15-minute practice schedule.`,
		strings.ToUpper(p.Sport), p.Position, p.Experience,
		orNotSpecified(p.CompetitionLevel), listOr(p.Goals, domain.NotSpecified),
		p.Sport, p.Position)
}

func hydrationPrompt(p domain.Profile) string {
	return fmt.Sprintf(`Create a DAILY HYDRATION SCHEDULE for a %s athlete.

ATHLETE PROFILE:
- Position: %s
- Age: %d years
- Weight: %s kg
- Training: %d days/week
- Training intensity: %s

Include:
1. Wake-up to bedtime schedule with amounts in ml
2. Pre-training, during-training and post-training targets
3. Electrolyte guidance for heavy sweat days
4. Adjustments for hot weather and match days
5. Warning signs of dehydration to watch for

Where weight is specified, scale the amounts to body weight.`,
		p.Sport, p.Position, p.Age, orNotSpecified(p.Weight),
		p.TrainingDays, orNotSpecified(p.TrainingIntensity))
}

func customPrompt(p domain.Profile) string {
	return fmt.Sprintf(`You are a professional %s coach. Answer the athlete's request below.

ATHLETE PROFILE:
- Position: %s
- Age: %d years
- Experience: %d years
- Fitness level: %s
- Competition level: %s
- Current injury: %s

REQUEST:
%s

If the request is empty, suggest three areas this athlete should work on next
and explain why.`,
		p.Sport, p.Position, p.Age, p.Experience,
		orNotSpecified(p.FitnessLevel), orNotSpecified(p.CompetitionLevel),
		defaultStr(p.CurrentInjury, domain.NoInjury), orNotSpecified(p.CustomRequest))
}

func energySplit(sport string) (aerobic int, anaerobic int, power int) {
	data, ok := domain.SportDataFor(sport)
	if !ok {
		return 0, 0, 0
	}
	return data.Energy["Aerobic"], data.Energy["Anaerobic"], data.Energy["Power"]
}

func orNotSpecified(s string) string {
	return defaultStr(s, domain.NotSpecified)
}

func defaultStr(s string, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func listOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
