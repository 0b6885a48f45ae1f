package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/riskibarqy/league-portal/internal/domain/topscorer"
	"github.com/riskibarqy/league-portal/internal/usecase"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	items, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	lang := langFromRequest(r)
	out := make([]leagueDTO, 0, len(items))
	for _, l := range items {
		out = append(out, leagueToDTO(l, lang))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	item, err := h.leagueService.GetLeague(ctx, pathRef(r, "ref"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item, langFromRequest(r)))
}

func (h *Handler) GetLeagueOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueOverview")
	defer span.End()

	overview, err := h.pageService.LeagueOverview(ctx, pathRef(r, "ref"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	lang := langFromRequest(r)
	playerNames, err := h.scorerNames(ctx, overview.TopScorers, lang)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, leagueOverviewToDTO(overview, playerNames, lang, h.now()))
}

func (h *Handler) ListTeamsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByLeague")
	defer span.End()

	items, err := h.leagueService.ListTeamsByLeague(ctx, pathRef(r, "ref"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamsToDTO(items, langFromRequest(r)))
}

func (h *Handler) ListLeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueStandings")
	defer span.End()

	ref := pathRef(r, "ref")
	table, err := h.standingService.ListStandings(ctx, ref)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teams, err := h.leagueService.ListTeamsByLeague(ctx, ref)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	lang := langFromRequest(r)
	writeSuccess(ctx, w, http.StatusOK, standingTableToDTO(table, teamNameIndex(teams, lang), lang))
}

func (h *Handler) ListLeagueTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueTopScorers")
	defer span.End()

	ref := pathRef(r, "ref")
	items, err := h.topScorerService.ListTopScorers(ctx, ref)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teams, err := h.leagueService.ListTeamsByLeague(ctx, ref)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	lang := langFromRequest(r)
	playerNames, err := h.scorerNames(ctx, items, lang)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, topScorersToDTO(items, playerNames, teamNameIndex(teams, lang)))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	items, err := h.teamService.ListTeams(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamsToDTO(items, langFromRequest(r)))
}

func (h *Handler) GetTeamPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamPage")
	defer span.End()

	page, err := h.pageService.TeamPage(ctx, pathRef(r, "ref"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamPageToDTO(page, langFromRequest(r), h.now()))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	teamID := strings.TrimSpace(r.URL.Query().Get("team"))
	if teamID != "" {
		t, err := h.teamService.GetTeam(ctx, teamID)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		teamID = t.ID
	}

	items, err := h.playerService.ListPlayers(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playersToDTO(items, langFromRequest(r)))
}

func (h *Handler) GetPlayerPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerPage")
	defer span.End()

	page, err := h.pageService.PlayerPage(ctx, pathRef(r, "ref"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerPageToDTO(page, langFromRequest(r)))
}

// ListMatches accepts ?league=, ?team= (id or slug) and a comma separated ?status=.
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	query := r.URL.Query()
	items, err := h.matchService.ListMatches(ctx, usecase.MatchQuery{
		LeagueRef: strings.TrimSpace(query.Get("league")),
		TeamRef:   strings.TrimSpace(query.Get("team")),
		Statuses:  splitList(query.Get("status")),
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items, h.now()))
}

// ListLiveMatches serves the live board: ?q= filters by team or league name and
// ?league= by league slug.
func (h *Handler) ListLiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveMatches")
	defer span.End()

	groups, err := h.liveService.ListLive(ctx, liveFilterFromRequest(r))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, liveGroupsToDTO(groups, langFromRequest(r)))
}

func (h *Handler) GetMatchPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchPage")
	defer span.End()

	page, err := h.pageService.MatchPage(ctx, pathRef(r, "ref"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchPageToDTO(page, langFromRequest(r), h.now()))
}

func (h *Handler) ListMatchEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchEvents")
	defer span.End()

	items, err := h.matchService.ListEvents(ctx, pathRef(r, "ref"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, eventsToDTO(items))
}

func (h *Handler) ListCups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCups")
	defer span.End()

	items, err := h.cupService.ListCups(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	lang := langFromRequest(r)
	out := make([]cupDTO, 0, len(items))
	for _, c := range items {
		out = append(out, cupToDTO(c, lang))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetCup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCup")
	defer span.End()

	detail, err := h.cupService.GetCup(ctx, pathRef(r, "ref"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, cupDetailToDTO(detail, langFromRequest(r)))
}

func (h *Handler) scorerNames(ctx context.Context, items []topscorer.TopScorer, lang string) (map[string]string, error) {
	ids := make([]string, 0, len(items))
	for _, t := range items {
		ids = append(ids, t.PlayerID)
	}
	players, err := h.playerService.GetPlayersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return playerNameIndex(players, lang), nil
}

func liveFilterFromRequest(r *http.Request) usecase.LiveFilter {
	query := r.URL.Query()
	return usecase.LiveFilter{
		Query:      strings.TrimSpace(query.Get("q")),
		LeagueSlug: strings.TrimSpace(query.Get("league")),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
