package api

import (
	"github.com/itchan-dev/threadfeed/internal/domain"
)

// Request DTOs

type CreatePostRequest struct {
	ThreadId string `validate:"required"`
	Author   string `validate:"required"`
	Content  string `validate:"required"`
	Password string
}

// Response DTOs

// PostResponse is the flat representation used by /posts.json.
type PostResponse struct {
	Id          uint64 `json:"id"`
	ThreadId    uint64 `json:"thread_id"`
	Author      string `json:"author"`
	Content     string `json:"content"`
	CreatedAt   string `json:"created_at"`
	ContentHTML string `json:"content_html"`
}

func NewPostResponse(p domain.RenderedPost) PostResponse {
	return PostResponse{
		Id:          p.Id,
		ThreadId:    p.ThreadId,
		Author:      p.Author,
		Content:     p.Content,
		CreatedAt:   formatTime(p.CreatedAt),
		ContentHTML: p.ContentHTML,
	}
}

func NewPostsResponse(posts []domain.RenderedPost) []PostResponse {
	resp := make([]PostResponse, len(posts))
	for i, p := range posts {
		resp[i] = NewPostResponse(p)
	}
	return resp
}
