package match

import (
	"fmt"
	"time"
)

// Phase is the period a live match is in.
type Phase string

const (
	PhaseNone       Phase = ""
	PhaseFirstHalf  Phase = "first_half"
	PhaseSecondHalf Phase = "second_half"
	PhaseExtraTime  Phase = "extra_time"
)

func ParsePhase(v string) (Phase, bool) {
	switch Phase(v) {
	case PhaseFirstHalf, PhaseSecondHalf, PhaseExtraTime:
		return Phase(v), true
	default:
		return PhaseNone, false
	}
}

const (
	MaxMinute   = 120
	maxStoppage = 15

	// Placeholder is shown when no minute or kickoff is known.
	Placeholder = "-"
	FullTime    = "FT"
)

// Display is what a match view shows next to the score.
type Display struct {
	Live     bool
	Minute   int
	Stoppage int
	Phase    Phase
	Label    string
}

func (d Display) String() string {
	return d.Label
}

type period struct {
	phase Phase
	start *time.Time
	base  int
	end   int
}

// Clock derives the displayed minute of m at now. It never fails: missing data
// degrades to the server minute, then to Placeholder.
//
// For a live match the most advanced period with a start timestamp wins, and the
// minute is base + whole minutes elapsed + 1. Time past the period end is shown
// as stoppage (45+2', 90+4'). A start in the future counts as zero elapsed.
func Clock(m Match, now time.Time) Display {
	switch m.Status {
	case StatusLive:
		return liveClock(m, now)
	case StatusCompleted:
		d := Display{Label: FullTime}
		if m.Minute != nil && *m.Minute > 0 {
			d.Minute = clamp(*m.Minute, 0, MaxMinute)
		}
		return d
	default:
		if m.ScheduledAt.IsZero() {
			return Display{Label: Placeholder}
		}
		return Display{Label: m.ScheduledAt.UTC().Format("15:04")}
	}
}

func liveClock(m Match, now time.Time) Display {
	periods := [...]period{
		{phase: PhaseExtraTime, start: m.ExtraTimeStartedAt, base: 90, end: MaxMinute},
		{phase: PhaseSecondHalf, start: m.SecondHalfStartedAt, base: 45, end: 90},
		{phase: PhaseFirstHalf, start: m.MatchStartedAt, base: 0, end: 45},
	}

	for _, p := range periods {
		if p.start == nil || p.start.IsZero() {
			continue
		}

		elapsed := now.Sub(*p.start)
		if elapsed < 0 {
			elapsed = 0
		}
		raw := p.base + int(elapsed/time.Minute) + 1

		d := Display{Live: true, Phase: p.phase, Minute: raw}
		if raw > p.end {
			d.Minute = p.end
			d.Stoppage = min(raw-p.end, maxStoppage)
			d.Label = fmt.Sprintf("%d+%d'", d.Minute, d.Stoppage)
			return d
		}
		d.Label = fmt.Sprintf("%d'", d.Minute)
		return d
	}

	if m.Minute != nil {
		minute := clamp(*m.Minute, 0, MaxMinute)
		return Display{
			Live:   true,
			Minute: minute,
			Phase:  phaseForMinute(minute),
			Label:  fmt.Sprintf("%d'", minute),
		}
	}

	return Display{Live: true, Label: Placeholder}
}

func phaseForMinute(minute int) Phase {
	switch {
	case minute <= 45:
		return PhaseFirstHalf
	case minute <= 90:
		return PhaseSecondHalf
	default:
		return PhaseExtraTime
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
