package domain

// NoInjury is the sentinel the profile form submits when the athlete is healthy.
const NoInjury = "None"

// NotSpecified substitutes optional profile fields the athlete left blank.
const NotSpecified = "Not specified"

type Profile struct {
	Sport               string   `json:"sport"`
	Position            string   `json:"position"`
	Age                 int      `json:"age"`
	Gender              string   `json:"gender"`
	Height              string   `json:"height"`
	Weight              string   `json:"weight"`
	Experience          int      `json:"experience"`
	TrainingDays        int      `json:"training_days"`
	FitnessLevel        string   `json:"fitness_level"`
	Goals               []string `json:"goals"`
	CurrentInjury       string   `json:"current_injury"`
	InjuryDuration      string   `json:"injury_duration"`
	Limitations         string   `json:"limitations"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	RareAllergies       string   `json:"rare_allergies"`
	CompetitionLevel    string   `json:"competition_level"`
	TrainingIntensity   string   `json:"training_intensity"`
	CalorieGoal         string   `json:"calorie_goal"`
	CustomRequest       string   `json:"custom_request"`
}

func (p Profile) Injured() bool {
	return p.CurrentInjury != "" && p.CurrentInjury != NoInjury
}

type Session struct {
	Id      string
	Profile *Profile
}
