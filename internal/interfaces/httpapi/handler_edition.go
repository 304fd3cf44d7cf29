package httpapi

import "net/http"

func (h *Handler) ListEditions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "ListEditions")
	defer span.End()

	editions, err := h.editionService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list editions failed", err)
		return
	}

	items := make([]editionDTO, 0, len(editions))
	for _, e := range editions {
		items = append(items, editionToDTO(e))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetEdition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "GetEdition")
	defer span.End()

	editionID, err := h.pathID(ctx, r, "editionID")
	if err != nil {
		h.fail(ctx, w, "edition details rejected", err)
		return
	}

	details, err := h.editionService.Details(ctx, editionID)
	if err != nil {
		h.fail(ctx, w, "edition details failed", err, "edition_id", editionID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, editionDetailsToDTO(details))
}
