package api

import (
	"github.com/itchan-dev/threadfeed/internal/domain"
)

// FeedPostResponse omits thread_id, it is carried by the enclosing feed.
type FeedPostResponse struct {
	Id          uint64 `json:"id"`
	Author      string `json:"author"`
	Content     string `json:"content"`
	CreatedAt   string `json:"created_at"`
	ContentHTML string `json:"content_html"`
}

type FeedResponse struct {
	Thread ThreadResponse     `json:"thread"`
	Posts  []FeedPostResponse `json:"posts"`
}

func NewFeedPostResponse(p domain.RenderedPost) FeedPostResponse {
	return FeedPostResponse{
		Id:          p.Id,
		Author:      p.Author,
		Content:     p.Content,
		CreatedAt:   formatTime(p.CreatedAt),
		ContentHTML: p.ContentHTML,
	}
}

func NewFeedResponse(f domain.Feed) FeedResponse {
	posts := make([]FeedPostResponse, len(f.Posts))
	for i, p := range f.Posts {
		posts[i] = NewFeedPostResponse(p)
	}
	return FeedResponse{
		Thread: NewThreadResponse(f.Thread),
		Posts:  posts,
	}
}
