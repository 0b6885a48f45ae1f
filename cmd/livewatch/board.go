package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/infrastructure/liveapi"
)

const teamColumnWidth = 16

func renderBoard(w io.Writer, groups []liveapi.Group, now time.Time) {
	fmt.Fprintf(w, "\n-- live board %s --\n", now.Format("15:04:05"))
	if len(groups) == 0 {
		fmt.Fprintln(w, "no live matches")
		return
	}

	for _, g := range groups {
		fmt.Fprintf(w, "%s (%d)\n", g.League.Name, len(g.Matches))
		for _, m := range g.Matches {
			fmt.Fprintln(w, "  "+compactRow(m))
		}
	}
}

// compactRow renders one match as "67'   STG   1 - 1   FAS".
func compactRow(m liveapi.Match) string {
	clock := m.Clock.Label
	if clock == "" {
		clock = "-"
	}
	return fmt.Sprintf("%-7s %*s %2d - %-2d %s",
		clock,
		teamColumnWidth, truncate(m.HomeTeam.Label(), teamColumnWidth),
		m.HomeScore, m.AwayScore,
		truncate(m.AwayTeam.Label(), teamColumnWidth),
	)
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "~"
}
