package team

import "testing"

func TestFormationSlots_ElevenPerFormation(t *testing.T) {
	t.Parallel()

	for _, name := range SupportedFormations() {
		got, slots := FormationSlots(name)
		if got != name {
			t.Fatalf("unexpected formation name %q for %q", got, name)
		}
		if len(slots) != 11 {
			t.Fatalf("formation %s has %d slots, want 11", name, len(slots))
		}
		if slots[0].Role != "GK" {
			t.Fatalf("formation %s must start with the goalkeeper", name)
		}
		for _, s := range slots {
			if s.X < 0 || s.X > 100 || s.Y < 0 || s.Y > 100 {
				t.Fatalf("formation %s slot out of pitch: %+v", name, s)
			}
		}
	}
}

func TestFormationSlots_UnknownFallsBack(t *testing.T) {
	t.Parallel()

	name, slots := FormationSlots("2-3-5")
	if name != DefaultFormation || len(slots) != 11 {
		t.Fatalf("expected fallback to %s, got %s with %d slots", DefaultFormation, name, len(slots))
	}

	slots[0].Role = "changed"
	if _, again := FormationSlots(DefaultFormation); again[0].Role != "GK" {
		t.Fatalf("returned slots must be a copy")
	}
}

func TestMirror(t *testing.T) {
	t.Parallel()

	m := Mirror([]Slot{{Role: "GK", X: 50, Y: 5}})
	if m[0].X != 50 || m[0].Y != 95 {
		t.Fatalf("unexpected mirrored slot: %+v", m[0])
	}
}

func TestTeam_Validate(t *testing.T) {
	t.Parallel()

	ok := Team{ID: "t1", Slug: "saint-george", LeagueID: "l1", NameEN: "Saint George", Formation: "4-3-3"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("expected valid team: %v", err)
	}

	bad := ok
	bad.Formation = "4-4-3"
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected unsupported formation error")
	}
	if ok.Name("am") != "Saint George" {
		t.Fatalf("empty amharic name should fall back to english")
	}
}
