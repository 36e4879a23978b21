// Package api holds the JSON shapes served by the http layer and the
// functions mapping domain values onto them.
package api

import (
	"time"
)

// timestamps are always rendered in UTC
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

func OK() StatusResponse {
	return StatusResponse{Status: "ok"}
}
