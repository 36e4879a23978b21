package handler

import (
	"net/http"

	"github.com/itchan-dev/threadfeed/internal/api"
	"github.com/itchan-dev/threadfeed/internal/middleware/metrics"
	"github.com/itchan-dev/threadfeed/internal/utils"
)

const kindThread = "thread"

func (h *Handler) GetThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := h.thread.List(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.NewThreadsResponse(threads))
}

// CreateThread accepts a form with title and password. The password is
// checked before anything else touches the request.
func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		recordWriteError(kindThread, err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	body := api.CreateThreadRequest{
		Title:    r.PostForm.Get("title"),
		Password: r.PostForm.Get("password"),
	}

	if err := h.gate.Authorize(body.Password); err != nil {
		recordWriteError(kindThread, err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := utils.Validate(&body); err != nil {
		recordWriteError(kindThread, err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if _, err := h.thread.Create(r.Context(), body.Title); err != nil {
		recordWriteError(kindThread, err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	metrics.RecordWrite(kindThread, metrics.OutcomeCreated)
	utils.WriteJSON(w, http.StatusOK, api.OK())
}
