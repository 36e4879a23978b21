package handler

import (
	"context"
	"net/http"
	"time"
)

const readyTimeout = 2 * time.Second

func writeProbe(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// Health answers as long as the process serves http.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeProbe(w, http.StatusOK, "ok")
}

// Ready fails with 503 while the database does not answer a ping.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		writeProbe(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	writeProbe(w, http.StatusOK, "ok")
}
