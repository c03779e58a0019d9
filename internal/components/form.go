package components

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/felixbrock/coachbot/internal/domain"
)

var goalOptions = []string{
	"Strength", "Speed", "Endurance", "Skill", "Injury Prevention", "Weight Management", "Competition",
}

var dietaryOptions = []string{
	"No red meat", "No pork", "No poultry", "No fish", "No seafood", "No eggs",
	"No milk", "No cheese", "No yogurt", "No onions", "No garlic", "No potatoes",
	"No root vegetables (carrots, beets, etc.)", "No mushrooms", "No gluten",
	"No nuts", "No soy", "No legumes",
}

var fitnessLevels = []string{"Beginner", "Intermediate", "Advanced", "Elite"}
var genders = []string{"Male", "Female", "Other"}
var injuryDurations = []string{"< 2 weeks", "2-4 weeks", "1-3 months", "> 3 months"}
var competitionLevels = []string{"Recreational", "School", "Club", "State", "National", "Professional"}
var trainingIntensities = []string{"Low", "Moderate", "High"}

// Index renders the single-page app: the profile form and, once a profile has
// been submitted, the plan tabs.
func Index(profile *domain.Profile) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main>`); err != nil {
			return err
		}
		if err := profileForm(profile).Render(ctx, w); err != nil {
			return err
		}
		if err := planSection(profile).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>`)
		return err
	})

	return page("CoachBot AI - Smart Sports Assistant", body)
}

func profileForm(profile *domain.Profile) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := domain.Profile{Sport: "cricket", Age: 18, TrainingDays: 4, CurrentInjury: domain.NoInjury}
		if profile != nil {
			p = *profile
		}

		sport, _ := domain.SportDataFor(p.Sport)

		if _, err := io.WriteString(w, `<form class="profile" method="post" action="/profile">`); err != nil {
			return err
		}

		writeSelect(w, "sport", "Select Your Sport", domain.Sports(), p.Sport)
		writeSelect(w, "position", "Your Position", sport.Positions, p.Position)
		writeNumber(w, "age", "Age", 12, 40, p.Age)
		writeSelect(w, "gender", "Gender", genders, p.Gender)
		writeText(w, "height", "Height (cm)", p.Height, "e.g., 175")
		writeText(w, "weight", "Weight (kg)", p.Weight, "e.g., 65.5")
		writeNumber(w, "experience", "Experience (years)", 0, 20, p.Experience)
		writeNumber(w, "training_days", "Training Days per Week", 1, 7, p.TrainingDays)
		writeSelect(w, "fitness_level", "Current Fitness Level", fitnessLevels, p.FitnessLevel)
		writeCheckboxes(w, "goals", "Training Goals", goalOptions, p.Goals)

		injuries := append([]string{domain.NoInjury}, sport.CommonInjuries...)
		writeSelect(w, "current_injury", "Current Injury", injuries, p.CurrentInjury)
		writeSelect(w, "injury_duration", "Injury Duration", injuryDurations, p.InjuryDuration)
		writeText(w, "limitations", "Current Limitations", p.Limitations, "Pain during certain movements")

		writeCheckboxes(w, "dietary_restrictions", "Dietary Restrictions", dietaryOptions, p.DietaryRestrictions)
		writeText(w, "rare_allergies", "Any rare allergies? (optional)", p.RareAllergies, "e.g., avocado, sesame seeds, etc.")
		writeSelect(w, "competition_level", "Competition Level", competitionLevels, p.CompetitionLevel)
		writeSelect(w, "training_intensity", "Training Intensity (optional)", trainingIntensities, p.TrainingIntensity)
		writeText(w, "calorie_goal", "Daily Calorie Goal (optional)", p.CalorieGoal, "e.g., 2800")
		writeTextarea(w, "custom_request", "Custom Request (optional)", p.CustomRequest)

		if _, err := io.WriteString(w, `<button type="submit">Generate My Plan</button></form>`); err != nil {
			return err
		}

		return writeSportScript(w)
	})
}

func planSection(profile *domain.Profile) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="plans">`); err != nil {
			return err
		}

		if profile == nil {
			if _, err := io.WriteString(w,
				`<h2>Welcome</h2><p>Fill in your details and submit your profile to get `+
					`personalized training, nutrition and tactical guidance.</p></section>`); err != nil {
				return err
			}
			return nil
		}

		fmt.Fprintf(w, `<h2>Your %s plans</h2>`, templ.EscapeString(profile.Sport))
		for _, kind := range domain.PlanKinds() {
			fmt.Fprintf(w,
				`<button hx-post="/plans/%s" hx-target="#plan-panel" hx-swap="innerHTML">%s</button>`,
				kind, templ.EscapeString(kind.Label()))
		}

		_, err := io.WriteString(w,
			`<span class="htmx-indicator">Generating…</span><div id="plan-panel"></div></section>`)
		return err
	})
}

// writeSportScript emits the catalog and a small handler that swaps the
// position and injury option lists when the sport changes.
func writeSportScript(w io.Writer) error {
	catalog, err := json.Marshal(domain.SportCatalog())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, `<script>
(function(){
  var catalog=%s;
  var sport=document.querySelector('select[name=sport]');
  if(!sport){return;}
  sport.addEventListener('change',function(){
    var data=catalog[sport.value];
    if(!data){return;}
    fill('position',data.positions,false);
    fill('current_injury',data.common_injuries,true);
  });
  function fill(name,options,noneFirst){
    var select=document.querySelector('select[name='+name+']');
    select.innerHTML='';
    var all=noneFirst?['None'].concat(options):options;
    all.forEach(function(o){
      var opt=document.createElement('option');
      opt.value=o;opt.textContent=o;select.appendChild(opt);
    });
  }
})();
</script>`, catalog)
	return err
}

func writeSelect(w io.Writer, name string, label string, options []string, current string) {
	fmt.Fprintf(w, `<label for="%s">%s</label><select id="%s" name="%s">`, name, templ.EscapeString(label), name, name)
	for _, option := range options {
		selected := ""
		if option == current {
			selected = " selected"
		}
		fmt.Fprintf(w, `<option value="%s"%s>%s</option>`,
			templ.EscapeString(option), selected, templ.EscapeString(option))
	}
	io.WriteString(w, `</select>`)
}

func writeCheckboxes(w io.Writer, name string, legend string, options []string, checked []string) {
	fmt.Fprintf(w, `<fieldset><legend>%s</legend>`, templ.EscapeString(legend))
	for _, option := range options {
		mark := ""
		for _, c := range checked {
			if c == option {
				mark = " checked"
				break
			}
		}
		fmt.Fprintf(w, `<label><input type="checkbox" name="%s" value="%s"%s> %s</label>`,
			name, templ.EscapeString(option), mark, templ.EscapeString(option))
	}
	io.WriteString(w, `</fieldset>`)
}

func writeText(w io.Writer, name string, label string, value string, placeholder string) {
	fmt.Fprintf(w, `<label for="%s">%s</label><input id="%s" type="text" name="%s" value="%s" placeholder="%s">`,
		name, templ.EscapeString(label), name, name, templ.EscapeString(value), templ.EscapeString(placeholder))
}

func writeTextarea(w io.Writer, name string, label string, value string) {
	fmt.Fprintf(w, `<label for="%s">%s</label><textarea id="%s" name="%s" rows="3">%s</textarea>`,
		name, templ.EscapeString(label), name, name, templ.EscapeString(value))
}

func writeNumber(w io.Writer, name string, label string, min int, max int, value int) {
	fmt.Fprintf(w, `<label for="%s">%s</label><input id="%s" type="number" name="%s" min="%s" max="%s" value="%s">`,
		name, templ.EscapeString(label), name, name,
		strconv.Itoa(min), strconv.Itoa(max), strconv.Itoa(value))
}
