package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/threadfeed/internal/api"
	"github.com/itchan-dev/threadfeed/internal/utils"
)

func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIdParam(chi.URLParam(r, "thread"), "thread ID")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	feed, err := h.feed.Build(r.Context(), threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	// polled by clients, always serve fresh
	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, http.StatusOK, api.NewFeedResponse(feed))
}
