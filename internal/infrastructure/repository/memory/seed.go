package memory

import (
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/cup"
	"github.com/riskibarqy/league-portal/internal/domain/league"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	"github.com/riskibarqy/league-portal/internal/domain/topscorer"
)

const (
	LeagueIDPremierLeague = "6f1c2a4e-8a49-4a5e-9d1f-0c1b2a3d4e01"
	LeagueIDHigherLeague  = "6f1c2a4e-8a49-4a5e-9d1f-0c1b2a3d4e02"

	TeamIDSaintGeorge   = "7a2d3b5f-9b5a-4b6f-8e20-1d2c3b4e5f01"
	TeamIDFasilKenema   = "7a2d3b5f-9b5a-4b6f-8e20-1d2c3b4e5f02"
	TeamIDEthiopiaBunna = "7a2d3b5f-9b5a-4b6f-8e20-1d2c3b4e5f03"
	TeamIDBahirDar      = "7a2d3b5f-9b5a-4b6f-8e20-1d2c3b4e5f04"
	TeamIDHadiyaHossana = "7a2d3b5f-9b5a-4b6f-8e20-1d2c3b4e5f05"

	MatchIDLive      = "8b3e4c60-ac6b-4c70-9f31-2e3d4c5f6a01"
	MatchIDScheduled = "8b3e4c60-ac6b-4c70-9f31-2e3d4c5f6a02"
	MatchIDCompleted = "8b3e4c60-ac6b-4c70-9f31-2e3d4c5f6a03"

	CupIDEthiopianCup = "9c4f5d71-bd7c-4d81-a042-3f4e5d6a7b01"
)

var seedCreatedAt = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:        LeagueIDPremierLeague,
			Slug:      "ethiopian-premier-league",
			NameEN:    "Ethiopian Premier League",
			NameAM:    "የኢትዮጵያ ፕሪሚየር ሊግ",
			Country:   "ET",
			Season:    "2025/26",
			IsActive:  true,
			CreatedAt: seedCreatedAt,
			UpdatedAt: seedCreatedAt,
		},
		{
			ID:        LeagueIDHigherLeague,
			Slug:      "ethiopian-higher-league",
			NameEN:    "Ethiopian Higher League",
			NameAM:    "የኢትዮጵያ ከፍተኛ ሊግ",
			Country:   "ET",
			Season:    "2025/26",
			IsActive:  true,
			CreatedAt: seedCreatedAt,
			UpdatedAt: seedCreatedAt,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDSaintGeorge, Slug: "saint-george", LeagueID: LeagueIDPremierLeague, NameEN: "Saint George", NameAM: "ቅዱስ ጊዮርጊስ", ShortName: "STG", Stadium: "Addis Ababa Stadium", FoundedYear: 1935, Formation: "4-3-3", CreatedAt: seedCreatedAt, UpdatedAt: seedCreatedAt},
		{ID: TeamIDFasilKenema, Slug: "fasil-kenema", LeagueID: LeagueIDPremierLeague, NameEN: "Fasil Kenema", NameAM: "ፋሲል ከነማ", ShortName: "FAS", Stadium: "Fasiledes Stadium", FoundedYear: 1968, Formation: "4-4-2", CreatedAt: seedCreatedAt, UpdatedAt: seedCreatedAt},
		{ID: TeamIDEthiopiaBunna, Slug: "ethiopia-bunna", LeagueID: LeagueIDPremierLeague, NameEN: "Ethiopia Bunna", NameAM: "ኢትዮጵያ ቡና", ShortName: "BUN", Stadium: "Addis Ababa Stadium", FoundedYear: 1976, Formation: "4-2-3-1", CreatedAt: seedCreatedAt, UpdatedAt: seedCreatedAt},
		{ID: TeamIDBahirDar, Slug: "bahir-dar-kenema", LeagueID: LeagueIDPremierLeague, NameEN: "Bahir Dar Kenema", NameAM: "ባህር ዳር ከነማ", ShortName: "BDK", Stadium: "Bahir Dar Stadium", FoundedYear: 1998, Formation: "3-5-2", CreatedAt: seedCreatedAt, UpdatedAt: seedCreatedAt},
		{ID: TeamIDHadiyaHossana, Slug: "hadiya-hossana", LeagueID: LeagueIDHigherLeague, NameEN: "Hadiya Hossana", NameAM: "ሀዲያ ሆሳዕና", ShortName: "HAD", FoundedYear: 2004, Formation: "5-3-2", CreatedAt: seedCreatedAt, UpdatedAt: seedCreatedAt},
	}
}

func SeedPlayers() []player.Player {
	p := func(id, slug, teamID, nameEN, nameAM string, pos player.Position, jersey int) player.Player {
		return player.Player{
			ID:           id,
			Slug:         slug,
			TeamID:       teamID,
			NameEN:       nameEN,
			NameAM:       nameAM,
			Position:     pos,
			JerseyNumber: jersey,
			Nationality:  "ET",
			CreatedAt:    seedCreatedAt,
			UpdatedAt:    seedCreatedAt,
		}
	}
	return []player.Player{
		p("a1b2c3d4-0001-4000-8000-000000000001", "fasil-gebremichael", TeamIDSaintGeorge, "Fasil Gebremichael", "ፋሲል ገብረሚካኤል", player.PositionGoalkeeper, 1),
		p("a1b2c3d4-0001-4000-8000-000000000002", "aschalew-tamene", TeamIDSaintGeorge, "Aschalew Tamene", "አስቻለው ታመነ", player.PositionDefender, 4),
		p("a1b2c3d4-0001-4000-8000-000000000003", "gatoch-panom", TeamIDSaintGeorge, "Gatoch Panom", "ጋቶች ፓኖም", player.PositionMidfielder, 8),
		p("a1b2c3d4-0001-4000-8000-000000000004", "abel-yalew", TeamIDSaintGeorge, "Abel Yalew", "አቤል ያለው", player.PositionForward, 10),
		p("a1b2c3d4-0001-4000-8000-000000000005", "mujib-kassim", TeamIDFasilKenema, "Mujib Kassim", "ሙጂብ ቃሲም", player.PositionForward, 9),
		p("a1b2c3d4-0001-4000-8000-000000000006", "surafel-dagnachew", TeamIDFasilKenema, "Surafel Dagnachew", "ሱራፌል ዳኛቸው", player.PositionMidfielder, 7),
		p("a1b2c3d4-0001-4000-8000-000000000007", "abubeker-nasir", TeamIDEthiopiaBunna, "Abubeker Nasir", "አቡበከር ናስር", player.PositionForward, 11),
	}
}

// SeedMatches places one match in each status relative to now so the live views
// have something to show.
func SeedMatches(now time.Time) []match.Match {
	now = now.UTC()
	kickoff := now.Add(-30 * time.Minute)
	liveMinute := 31
	finalMinute := 90
	return []match.Match{
		{
			ID:             MatchIDLive,
			Slug:           "saint-george-vs-fasil-kenema",
			LeagueID:       LeagueIDPremierLeague,
			HomeTeamID:     TeamIDSaintGeorge,
			AwayTeamID:     TeamIDFasilKenema,
			ScheduledAt:    kickoff,
			Status:         match.StatusLive,
			HomeScore:      1,
			MatchStartedAt: &kickoff,
			Minute:         &liveMinute,
			Venue:          "Addis Ababa Stadium",
			Round:          "Matchday 5",
			CreatedAt:      seedCreatedAt,
			UpdatedAt:      seedCreatedAt,
		},
		{
			ID:          MatchIDScheduled,
			Slug:        "ethiopia-bunna-vs-bahir-dar-kenema",
			LeagueID:    LeagueIDPremierLeague,
			HomeTeamID:  TeamIDEthiopiaBunna,
			AwayTeamID:  TeamIDBahirDar,
			ScheduledAt: now.Add(48 * time.Hour).Truncate(time.Hour),
			Status:      match.StatusScheduled,
			Venue:       "Addis Ababa Stadium",
			Round:       "Matchday 5",
			CreatedAt:   seedCreatedAt,
			UpdatedAt:   seedCreatedAt,
		},
		{
			ID:          MatchIDCompleted,
			Slug:        "fasil-kenema-vs-ethiopia-bunna",
			LeagueID:    LeagueIDPremierLeague,
			HomeTeamID:  TeamIDFasilKenema,
			AwayTeamID:  TeamIDEthiopiaBunna,
			ScheduledAt: now.Add(-7 * 24 * time.Hour).Truncate(time.Hour),
			Status:      match.StatusCompleted,
			HomeScore:   2,
			AwayScore:   2,
			Minute:      &finalMinute,
			Venue:       "Fasiledes Stadium",
			Round:       "Matchday 4",
			CreatedAt:   seedCreatedAt,
			UpdatedAt:   seedCreatedAt,
		},
	}
}

func SeedMatchEvents() []match.Event {
	return []match.Event{
		{ID: "b2c3d4e5-0001-4000-8000-000000000001", MatchID: MatchIDLive, TeamID: TeamIDSaintGeorge, PlayerID: "a1b2c3d4-0001-4000-8000-000000000004", Type: match.EventGoal, Minute: 17, DescriptionEN: "Header from a corner", CreatedAt: seedCreatedAt},
		{ID: "b2c3d4e5-0001-4000-8000-000000000002", MatchID: MatchIDLive, TeamID: TeamIDFasilKenema, PlayerID: "a1b2c3d4-0001-4000-8000-000000000006", Type: match.EventYellowCard, Minute: 24, CreatedAt: seedCreatedAt},
		{ID: "b2c3d4e5-0001-4000-8000-000000000003", MatchID: MatchIDCompleted, TeamID: TeamIDFasilKenema, PlayerID: "a1b2c3d4-0001-4000-8000-000000000005", Type: match.EventPenaltyGoal, Minute: 45, ExtraMinute: 2, CreatedAt: seedCreatedAt},
	}
}

func SeedTopScorers() []topscorer.TopScorer {
	return []topscorer.TopScorer{
		{ID: "c3d4e5f6-0001-4000-8000-000000000001", LeagueID: LeagueIDPremierLeague, PlayerID: "a1b2c3d4-0001-4000-8000-000000000005", TeamID: TeamIDFasilKenema, Season: "2025/26", Goals: 6, Assists: 2, Penalties: 2, CreatedAt: seedCreatedAt, UpdatedAt: seedCreatedAt},
		{ID: "c3d4e5f6-0001-4000-8000-000000000002", LeagueID: LeagueIDPremierLeague, PlayerID: "a1b2c3d4-0001-4000-8000-000000000004", TeamID: TeamIDSaintGeorge, Season: "2025/26", Goals: 5, Assists: 3, CreatedAt: seedCreatedAt, UpdatedAt: seedCreatedAt},
		{ID: "c3d4e5f6-0001-4000-8000-000000000003", LeagueID: LeagueIDPremierLeague, PlayerID: "a1b2c3d4-0001-4000-8000-000000000007", TeamID: TeamIDEthiopiaBunna, Season: "2025/26", Goals: 5, Assists: 1, CreatedAt: seedCreatedAt, UpdatedAt: seedCreatedAt},
	}
}

func SeedCups() []cup.Cup {
	return []cup.Cup{
		{ID: CupIDEthiopianCup, Slug: "ethiopian-cup", NameEN: "Ethiopian Cup", NameAM: "የኢትዮጵያ ዋንጫ", Country: "ET", CreatedAt: seedCreatedAt, UpdatedAt: seedCreatedAt},
	}
}

func SeedCupEditions() []cup.Edition {
	final := time.Date(2025, 6, 14, 15, 0, 0, 0, time.UTC)
	return []cup.Edition{
		{ID: "d4e5f6a7-0001-4000-8000-000000000001", CupID: CupIDEthiopianCup, Slug: "2024-25", Season: "2024/25", WinnerTeamID: TeamIDSaintGeorge, RunnerUpTeamID: TeamIDFasilKenema, FinalDate: &final, CreatedAt: seedCreatedAt, UpdatedAt: seedCreatedAt},
	}
}
