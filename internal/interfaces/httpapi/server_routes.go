package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
}

func registerChampionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/champions/edition-winners", handler.EditionWinners)
	mux.HandleFunc("GET /v1/champions/all-time-scorers", handler.AllTimeScorers)
	mux.HandleFunc("GET /v1/champions/placement-stats", handler.PlacementStats)
	mux.HandleFunc("GET /v1/champions/overview", handler.ChampionsOverview)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players/{playerID}/history", handler.PlayerHistory)
	mux.HandleFunc("GET /v1/players/{playerID}/placement-stats", handler.PlayerPlacementStats)
	mux.HandleFunc("GET /v1/players/{playerID}/goals", handler.PlayerGoals)
}

func registerEditionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/editions", handler.ListEditions)
	mux.HandleFunc("GET /v1/editions/{editionID}", handler.GetEdition)
}
