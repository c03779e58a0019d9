package app

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/felixbrock/coachbot/internal/domain"
)

const sessionCookie = "coachbot_session"

// session resolves the caller's session from the cookie, creating one (and
// setting the cookie) on first contact.
func (a *App) session(w http.ResponseWriter, r *http.Request) *domain.Session {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if session, ok := a.SessionRepo.Get(cookie.Value); ok {
			return session
		}
	}

	session := a.SessionRepo.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    session.Id,
		Path:     "/",
		HttpOnly: true,
	})

	return session
}

// profileFromForm coerces the submitted form into a Profile. Validation stays
// at type-coercion level; unparseable numbers fall back to the form defaults.
func profileFromForm(r *http.Request) domain.Profile {
	injury := r.FormValue("current_injury")
	if injury == "" {
		injury = domain.NoInjury
	}

	return domain.Profile{
		Sport:               r.FormValue("sport"),
		Position:            r.FormValue("position"),
		Age:                 formInt(r, "age", 18),
		Gender:              r.FormValue("gender"),
		Height:              strings.TrimSpace(r.FormValue("height")),
		Weight:              strings.TrimSpace(r.FormValue("weight")),
		Experience:          formInt(r, "experience", 0),
		TrainingDays:        formInt(r, "training_days", 4),
		FitnessLevel:        r.FormValue("fitness_level"),
		Goals:               r.Form["goals"],
		CurrentInjury:       injury,
		InjuryDuration:      r.FormValue("injury_duration"),
		Limitations:         r.FormValue("limitations"),
		DietaryRestrictions: r.Form["dietary_restrictions"],
		RareAllergies:       strings.TrimSpace(r.FormValue("rare_allergies")),
		CompetitionLevel:    r.FormValue("competition_level"),
		TrainingIntensity:   r.FormValue("training_intensity"),
		CalorieGoal:         strings.TrimSpace(r.FormValue("calorie_goal")),
		CustomRequest:       strings.TrimSpace(r.FormValue("custom_request")),
	}
}

func formInt(r *http.Request, field string, fallback int) int {
	n, err := strconv.Atoi(r.FormValue(field))
	if err != nil {
		return fallback
	}
	return n
}
