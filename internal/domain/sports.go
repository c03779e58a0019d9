package domain

// SportData describes one supported sport: selectable positions, the injuries
// the form offers, and the rough energy-system split used by the warm-up prompt.
type SportData struct {
	Positions      []string       `json:"positions"`
	CommonInjuries []string       `json:"common_injuries"`
	Energy         map[string]int `json:"energy"`
}

var sportCatalog = map[string]SportData{
	"cricket": {
		Positions: []string{"Batsman", "Fast Bowler", "Spin Bowler", "Wicket-Keeper", "All-rounder"},
		CommonInjuries: []string{
			"Hamstring strain", "Shoulder impingement", "Lower back pain",
			"Ankle sprain", "Side strain", "Rotator cuff tear",
		},
		Energy: map[string]int{"Aerobic": 60, "Anaerobic": 30, "Power": 10},
	},
	"kabaddi": {
		Positions: []string{"Raider", "Corner Defender", "Cover Defender", "All-rounder"},
		CommonInjuries: []string{
			"Knee ligament tear", "Ankle sprain", "Shoulder dislocation",
			"Concussion", "Finger fracture", "Groin strain",
		},
		Energy: map[string]int{"Aerobic": 40, "Anaerobic": 50, "Power": 10},
	},
	"volleyball": {
		Positions: []string{"Setter", "Outside Hitter", "Middle Blocker", "Opposite", "Libero"},
		CommonInjuries: []string{
			"Jumper's knee", "Ankle sprain", "Shoulder pain",
			"Rotator cuff injury", "Finger injury", "Back pain",
		},
		Energy: map[string]int{"Aerobic": 50, "Anaerobic": 40, "Power": 10},
	},
}

var sportNames = []string{"cricket", "kabaddi", "volleyball"}

func Sports() []string {
	return sportNames
}

func SportCatalog() map[string]SportData {
	return sportCatalog
}

func SportDataFor(sport string) (SportData, bool) {
	data, ok := sportCatalog[sport]
	return data, ok
}
