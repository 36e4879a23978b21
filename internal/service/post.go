package service

import (
	"context"
	"strings"

	"github.com/itchan-dev/threadfeed/internal/domain"
)

type PostService interface {
	Create(ctx context.Context, creationData domain.PostCreationData) (domain.Post, error)
}

type Post struct {
	storage   PostStorage
	validator PostValidator
}

type PostStorage interface {
	GetThread(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
	CreatePost(ctx context.Context, creationData domain.PostCreationData) (domain.Post, error)
}

type PostValidator interface {
	Author(author domain.PostAuthor) error
	Content(content domain.PostContent) error
}

func NewPost(storage PostStorage, validator PostValidator) *Post {
	return &Post{storage: storage, validator: validator}
}

// Create stores a post after checking its thread exists.
// A missing thread yields 404 and nothing is written.
func (b *Post) Create(ctx context.Context, creationData domain.PostCreationData) (domain.Post, error) {
	creationData.Author = strings.TrimSpace(creationData.Author)
	if err := b.validator.Author(creationData.Author); err != nil {
		return domain.Post{}, err
	}
	if err := b.validator.Content(creationData.Content); err != nil {
		return domain.Post{}, err
	}

	if _, err := b.storage.GetThread(ctx, creationData.ThreadId); err != nil {
		return domain.Post{}, err
	}

	return b.storage.CreatePost(ctx, creationData)
}
