package team

import "sort"

const DefaultFormation = "4-4-2"

// Slot is a pitch position in percent of the pitch. X runs from the left touchline,
// Y from the team's own goal line.
type Slot struct {
	Role string
	X    float64
	Y    float64
}

var formations = map[string][]Slot{
	"4-4-2": {
		{"GK", 50, 5},
		{"LB", 15, 25}, {"CB", 38, 20}, {"CB", 62, 20}, {"RB", 85, 25},
		{"LM", 15, 50}, {"CM", 38, 47}, {"CM", 62, 47}, {"RM", 85, 50},
		{"ST", 38, 76}, {"ST", 62, 76},
	},
	"4-3-3": {
		{"GK", 50, 5},
		{"LB", 15, 25}, {"CB", 38, 20}, {"CB", 62, 20}, {"RB", 85, 25},
		{"CM", 30, 48}, {"CM", 50, 44}, {"CM", 70, 48},
		{"LW", 18, 74}, {"ST", 50, 80}, {"RW", 82, 74},
	},
	"3-5-2": {
		{"GK", 50, 5},
		{"CB", 28, 22}, {"CB", 50, 19}, {"CB", 72, 22},
		{"LWB", 10, 48}, {"CM", 32, 45}, {"CM", 50, 52}, {"CM", 68, 45}, {"RWB", 90, 48},
		{"ST", 38, 76}, {"ST", 62, 76},
	},
	"4-2-3-1": {
		{"GK", 50, 5},
		{"LB", 15, 25}, {"CB", 38, 20}, {"CB", 62, 20}, {"RB", 85, 25},
		{"DM", 38, 40}, {"DM", 62, 40},
		{"LAM", 18, 62}, {"CAM", 50, 62}, {"RAM", 82, 62},
		{"ST", 50, 82},
	},
	"5-3-2": {
		{"GK", 50, 5},
		{"LWB", 10, 30}, {"CB", 30, 20}, {"CB", 50, 18}, {"CB", 70, 20}, {"RWB", 90, 30},
		{"CM", 30, 50}, {"CM", 50, 47}, {"CM", 70, 50},
		{"ST", 38, 76}, {"ST", 62, 76},
	},
}

func IsSupportedFormation(name string) bool {
	_, ok := formations[name]
	return ok
}

func SupportedFormations() []string {
	out := make([]string, 0, len(formations))
	for name := range formations {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// FormationSlots returns the eleven positions of a formation. Unknown or empty
// names resolve to DefaultFormation.
func FormationSlots(name string) (string, []Slot) {
	slots, ok := formations[name]
	if !ok {
		name = DefaultFormation
		slots = formations[DefaultFormation]
	}
	return name, append([]Slot(nil), slots...)
}

// Mirror flips slots to the opposite half for the away side of a shared pitch.
func Mirror(slots []Slot) []Slot {
	out := make([]Slot, len(slots))
	for i, s := range slots {
		out[i] = Slot{Role: s.Role, X: 100 - s.X, Y: 100 - s.Y}
	}
	return out
}
