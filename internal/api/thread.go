package api

import (
	"github.com/itchan-dev/threadfeed/internal/domain"
)

// Request DTOs

type CreateThreadRequest struct {
	Title    string `validate:"required"`
	Password string
}

// Response DTOs

type ThreadResponse struct {
	Id        uint64 `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
}

func NewThreadResponse(t domain.Thread) ThreadResponse {
	return ThreadResponse{
		Id:        t.Id,
		Title:     t.Title,
		CreatedAt: formatTime(t.CreatedAt),
	}
}

func NewThreadsResponse(threads []domain.Thread) []ThreadResponse {
	resp := make([]ThreadResponse, len(threads))
	for i, t := range threads {
		resp[i] = NewThreadResponse(t)
	}
	return resp
}
