package httpapi

import "net/http"

func (h *Handler) PlayerHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "PlayerHistory")
	defer span.End()

	playerID, err := h.pathID(ctx, r, "playerID")
	if err != nil {
		h.fail(ctx, w, "player history rejected", err)
		return
	}
	limit, err := h.historyLimit(ctx, r)
	if err != nil {
		h.fail(ctx, w, "player history rejected", err, "player_id", playerID)
		return
	}

	records, err := h.historyService.History(ctx, playerID, limit)
	if err != nil {
		h.fail(ctx, w, "player history failed", err, "player_id", playerID)
		return
	}

	items := make([]placementRecordDTO, 0, len(records))
	for _, rec := range records {
		items = append(items, placementRecordToDTO(rec))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) PlayerPlacementStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "PlayerPlacementStats")
	defer span.End()

	playerID, err := h.pathID(ctx, r, "playerID")
	if err != nil {
		h.fail(ctx, w, "player placement stats rejected", err)
		return
	}

	stats, err := h.historyService.PlacementStats(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "player placement stats failed", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, placementStatToDTO(stats))
}

func (h *Handler) PlayerGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "PlayerGoals")
	defer span.End()

	playerID, err := h.pathID(ctx, r, "playerID")
	if err != nil {
		h.fail(ctx, w, "player goals rejected", err)
		return
	}

	count, err := h.historyService.GoalCount(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "player goals failed", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerGoalsDTO{
		PlayerID:  count.Player.ID,
		FirstName: count.Player.FirstName,
		LastName:  count.Player.LastName,
		GoalCount: count.GoalCount,
	})
}
