package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, mediaDir string) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if mediaDir != "" {
		mux.Handle("GET /media/{bucket}/{file}", MediaHandler(mediaDir))
	}
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{ref}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{ref}/overview", handler.GetLeagueOverview)
	mux.HandleFunc("GET /v1/leagues/{ref}/teams", handler.ListTeamsByLeague)
	mux.HandleFunc("GET /v1/leagues/{ref}/standings", handler.ListLeagueStandings)
	mux.HandleFunc("GET /v1/leagues/{ref}/topscorers", handler.ListLeagueTopScorers)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{ref}", handler.GetTeamPage)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{ref}", handler.GetPlayerPage)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/live", handler.ListLiveMatches)
	mux.HandleFunc("GET /v1/matches/{ref}", handler.GetMatchPage)
	mux.HandleFunc("GET /v1/matches/{ref}/events", handler.ListMatchEvents)
	mux.HandleFunc("GET /v1/cups", handler.ListCups)
	mux.HandleFunc("GET /v1/cups/{ref}", handler.GetCup)
}

func registerLiveRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/live/ws", handler.LiveSocket)
	mux.HandleFunc("GET /v1/live/snapshot", handler.GetLiveSnapshot)
	mux.HandleFunc("POST /v1/live/refresh", handler.RefreshLive)
}

func registerCMSRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	admin := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, RequireAdminToken(adminToken, fn))
	}

	admin("POST /v1/cms/leagues", handler.CreateLeague)
	admin("PUT /v1/cms/leagues/{id}", handler.UpdateLeague)
	admin("DELETE /v1/cms/leagues/{id}", handler.DeleteLeague)

	admin("POST /v1/cms/teams", handler.CreateTeam)
	admin("PUT /v1/cms/teams/{id}", handler.UpdateTeam)
	admin("DELETE /v1/cms/teams/{id}", handler.DeleteTeam)

	admin("POST /v1/cms/players", handler.CreatePlayer)
	admin("PUT /v1/cms/players/{id}", handler.UpdatePlayer)
	admin("DELETE /v1/cms/players/{id}", handler.DeletePlayer)

	admin("POST /v1/cms/matches", handler.CreateMatch)
	admin("PUT /v1/cms/matches/{id}", handler.UpdateMatch)
	admin("PATCH /v1/cms/matches/{id}/status", handler.UpdateMatchStatus)
	admin("DELETE /v1/cms/matches/{id}", handler.DeleteMatch)
	admin("POST /v1/cms/matches/{id}/events", handler.CreateMatchEvent)
	admin("PUT /v1/cms/events/{id}", handler.UpdateMatchEvent)
	admin("DELETE /v1/cms/events/{id}", handler.DeleteMatchEvent)

	admin("POST /v1/cms/standings", handler.CreateStanding)
	admin("PUT /v1/cms/standings/{id}", handler.UpdateStanding)
	admin("DELETE /v1/cms/standings/{id}", handler.DeleteStanding)

	admin("POST /v1/cms/topscorers", handler.CreateTopScorer)
	admin("PUT /v1/cms/topscorers/{id}", handler.UpdateTopScorer)
	admin("DELETE /v1/cms/topscorers/{id}", handler.DeleteTopScorer)

	admin("POST /v1/cms/cups", handler.CreateCup)
	admin("PUT /v1/cms/cups/{id}", handler.UpdateCup)
	admin("DELETE /v1/cms/cups/{id}", handler.DeleteCup)
	admin("POST /v1/cms/cups/{id}/editions", handler.CreateCupEdition)
	admin("PUT /v1/cms/editions/{id}", handler.UpdateCupEdition)
	admin("DELETE /v1/cms/editions/{id}", handler.DeleteCupEdition)

	admin("GET /v1/cms/live/interval", handler.GetLiveInterval)
	admin("PUT /v1/cms/live/interval", handler.UpdateLiveInterval)

	admin("POST /v1/cms/uploads", handler.Upload)
}
