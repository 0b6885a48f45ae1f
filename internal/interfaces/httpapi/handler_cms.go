package httpapi

import (
	"context"
	"net/http"
)

// readPayload decodes and validates a CMS body. On failure the error response is
// already written and ok is false.
func readPayload[T any](ctx context.Context, h *Handler, w http.ResponseWriter, r *http.Request) (payload T, ok bool) {
	if err := h.decodeJSON(ctx, w, r, &payload); err != nil {
		writeError(ctx, w, err)
		return payload, false
	}
	if err := h.validateRequest(ctx, payload); err != nil {
		writeError(ctx, w, err)
		return payload, false
	}
	return payload, true
}

func writeDeleted(ctx context.Context, w http.ResponseWriter, id string) {
	writeSuccess(ctx, w, http.StatusOK, map[string]any{"id": id, "deleted": true})
}

func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLeague")
	defer span.End()

	req, ok := readPayload[leagueRequest](ctx, h, w, r)
	if !ok {
		return
	}
	item, err := h.leagueService.CreateLeague(ctx, req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, leagueToDTO(item, langFromRequest(r)))
}

func (h *Handler) UpdateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateLeague")
	defer span.End()

	req, ok := readPayload[leagueRequest](ctx, h, w, r)
	if !ok {
		return
	}
	item, err := h.leagueService.UpdateLeague(ctx, pathRef(r, "id"), req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item, langFromRequest(r)))
}

func (h *Handler) DeleteLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteLeague")
	defer span.End()

	id := pathRef(r, "id")
	if err := h.leagueService.DeleteLeague(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeDeleted(ctx, w, id)
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	req, ok := readPayload[teamRequest](ctx, h, w, r)
	if !ok {
		return
	}
	item, err := h.teamService.CreateTeam(ctx, req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(item, langFromRequest(r)))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	req, ok := readPayload[teamRequest](ctx, h, w, r)
	if !ok {
		return
	}
	item, err := h.teamService.UpdateTeam(ctx, pathRef(r, "id"), req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item, langFromRequest(r)))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	id := pathRef(r, "id")
	if err := h.teamService.DeleteTeam(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeDeleted(ctx, w, id)
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	req, ok := readPayload[playerRequest](ctx, h, w, r)
	if !ok {
		return
	}
	item, err := h.playerService.CreatePlayer(ctx, req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item, langFromRequest(r)))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	req, ok := readPayload[playerRequest](ctx, h, w, r)
	if !ok {
		return
	}
	item, err := h.playerService.UpdatePlayer(ctx, pathRef(r, "id"), req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item, langFromRequest(r)))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	id := pathRef(r, "id")
	if err := h.playerService.DeletePlayer(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeDeleted(ctx, w, id)
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	req, ok := readPayload[matchRequest](ctx, h, w, r)
	if !ok {
		return
	}
	item, err := h.matchService.CreateMatch(ctx, req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item, h.now()))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	req, ok := readPayload[matchRequest](ctx, h, w, r)
	if !ok {
		return
	}
	item, err := h.matchService.UpdateMatch(ctx, pathRef(r, "id"), req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item, h.now()))
}

// UpdateMatchStatus moves a match between scheduled, live and completed and
// records score, phase and minute changes.
func (h *Handler) UpdateMatchStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchStatus")
	defer span.End()

	req, ok := readPayload[matchStatusRequest](ctx, h, w, r)
	if !ok {
		return
	}
	item, err := h.matchService.UpdateStatus(ctx, pathRef(r, "id"), req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item, h.now()))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	id := pathRef(r, "id")
	if err := h.matchService.DeleteMatch(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeDeleted(ctx, w, id)
}

func (h *Handler) CreateMatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatchEvent")
	defer span.End()

	req, ok := readPayload[eventRequest](ctx, h, w, r)
	if !ok {
		return
	}
	item, err := h.matchService.CreateEvent(ctx, pathRef(r, "id"), req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, eventToDTO(item))
}

func (h *Handler) UpdateMatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchEvent")
	defer span.End()

	req, ok := readPayload[eventRequest](ctx, h, w, r)
	if !ok {
		return
	}
	item, err := h.matchService.UpdateEvent(ctx, pathRef(r, "id"), req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, eventToDTO(item))
}

func (h *Handler) DeleteMatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatchEvent")
	defer span.End()

	id := pathRef(r, "id")
	if err := h.matchService.DeleteEvent(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeDeleted(ctx, w, id)
}

func (h *Handler) CreateStanding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateStanding")
	defer span.End()

	req, ok := readPayload[standingRequest](ctx, h, w, r)
	if !ok {
		return
	}
	item, err := h.standingService.CreateStanding(ctx, req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, standingToDTO(item, ""))
}

func (h *Handler) UpdateStanding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateStanding")
	defer span.End()

	req, ok := readPayload[standingRequest](ctx, h, w, r)
	if !ok {
		return
	}
	item, err := h.standingService.UpdateStanding(ctx, pathRef(r, "id"), req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, standingToDTO(item, ""))
}

func (h *Handler) DeleteStanding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteStanding")
	defer span.End()

	id := pathRef(r, "id")
	if err := h.standingService.DeleteStanding(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeDeleted(ctx, w, id)
}

func (h *Handler) CreateTopScorer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTopScorer")
	defer span.End()

	req, ok := readPayload[topScorerRequest](ctx, h, w, r)
	if !ok {
		return
	}
	item, err := h.topScorerService.CreateTopScorer(ctx, req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, topScorerToDTO(item, "", ""))
}

func (h *Handler) UpdateTopScorer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTopScorer")
	defer span.End()

	req, ok := readPayload[topScorerRequest](ctx, h, w, r)
	if !ok {
		return
	}
	item, err := h.topScorerService.UpdateTopScorer(ctx, pathRef(r, "id"), req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, topScorerToDTO(item, "", ""))
}

func (h *Handler) DeleteTopScorer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTopScorer")
	defer span.End()

	id := pathRef(r, "id")
	if err := h.topScorerService.DeleteTopScorer(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeDeleted(ctx, w, id)
}

func (h *Handler) CreateCup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCup")
	defer span.End()

	req, ok := readPayload[cupRequest](ctx, h, w, r)
	if !ok {
		return
	}
	item, err := h.cupService.CreateCup(ctx, req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, cupToDTO(item, langFromRequest(r)))
}

func (h *Handler) UpdateCup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateCup")
	defer span.End()

	req, ok := readPayload[cupRequest](ctx, h, w, r)
	if !ok {
		return
	}
	item, err := h.cupService.UpdateCup(ctx, pathRef(r, "id"), req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, cupToDTO(item, langFromRequest(r)))
}

func (h *Handler) DeleteCup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteCup")
	defer span.End()

	id := pathRef(r, "id")
	if err := h.cupService.DeleteCup(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeDeleted(ctx, w, id)
}

func (h *Handler) CreateCupEdition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCupEdition")
	defer span.End()

	req, ok := readPayload[cupEditionRequest](ctx, h, w, r)
	if !ok {
		return
	}
	item, err := h.cupService.CreateEdition(ctx, pathRef(r, "id"), req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, cupEditionToDTO(item))
}

func (h *Handler) UpdateCupEdition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateCupEdition")
	defer span.End()

	req, ok := readPayload[cupEditionRequest](ctx, h, w, r)
	if !ok {
		return
	}
	item, err := h.cupService.UpdateEdition(ctx, pathRef(r, "id"), req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, cupEditionToDTO(item))
}

func (h *Handler) DeleteCupEdition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteCupEdition")
	defer span.End()

	id := pathRef(r, "id")
	if err := h.cupService.DeleteEdition(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeDeleted(ctx, w, id)
}
