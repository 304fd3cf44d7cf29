package httpapi

import "net/http"

func (h *Handler) EditionWinners(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "EditionWinners")
	defer span.End()

	limit, err := h.leaderboardLimit(ctx, r)
	if err != nil {
		h.fail(ctx, w, "edition winners rejected", err)
		return
	}

	items, err := h.championService.EditionWinLeaders(ctx, limit)
	if err != nil {
		h.fail(ctx, w, "edition winners failed", err, "limit", limit)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, editionWinnersToDTO(items))
}

func (h *Handler) AllTimeScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "AllTimeScorers")
	defer span.End()

	limit, err := h.leaderboardLimit(ctx, r)
	if err != nil {
		h.fail(ctx, w, "all-time scorers rejected", err)
		return
	}

	items, err := h.championService.AllTimeScorers(ctx, limit)
	if err != nil {
		h.fail(ctx, w, "all-time scorers failed", err, "limit", limit)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scorersToDTO(items))
}

func (h *Handler) PlacementStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "PlacementStats")
	defer span.End()

	limit, err := h.leaderboardLimit(ctx, r)
	if err != nil {
		h.fail(ctx, w, "placement stats rejected", err)
		return
	}

	items, err := h.championService.PlacementStats(ctx, limit)
	if err != nil {
		h.fail(ctx, w, "placement stats failed", err, "limit", limit)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, placementStatsToDTO(items))
}

func (h *Handler) ChampionsOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "ChampionsOverview")
	defer span.End()

	limit, err := h.leaderboardLimit(ctx, r)
	if err != nil {
		h.fail(ctx, w, "champions overview rejected", err)
		return
	}

	overview, err := h.championService.Overview(ctx, limit)
	if err != nil {
		h.fail(ctx, w, "champions overview failed", err, "limit", limit)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, championsOverviewDTO{
		EditionWinners: editionWinnersToDTO(overview.EditionWinners),
		AllTimeScorers: scorersToDTO(overview.AllTimeScorers),
		PlacementStats: placementStatsToDTO(overview.PlacementStats),
	})
}
