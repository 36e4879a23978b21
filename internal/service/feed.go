package service

import (
	"context"
	"sort"

	"github.com/itchan-dev/threadfeed/internal/domain"
)

type FeedService interface {
	Build(ctx context.Context, threadId domain.ThreadId) (domain.Feed, error)
	Posts(ctx context.Context) ([]domain.RenderedPost, error)
	Post(ctx context.Context, id domain.PostId) (domain.RenderedPost, error)
}

type Renderer interface {
	Render(markup string) string
}

type FeedStorage interface {
	GetThread(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
	ListPostsForThread(ctx context.Context, threadId domain.ThreadId) ([]domain.Post, error)
	ListPosts(ctx context.Context) ([]domain.Post, error)
	GetPost(ctx context.Context, id domain.PostId) (domain.Post, error)
}

// Feed assembles rendered views on every call. Nothing is cached and
// nothing is written, so repeated reads are safe.
type Feed struct {
	storage  FeedStorage
	renderer Renderer
}

func NewFeed(storage FeedStorage, renderer Renderer) *Feed {
	return &Feed{storage: storage, renderer: renderer}
}

func (f *Feed) Build(ctx context.Context, threadId domain.ThreadId) (domain.Feed, error) {
	thread, err := f.storage.GetThread(ctx, threadId)
	if err != nil {
		return domain.Feed{}, err
	}

	// already newest first
	posts, err := f.storage.ListPostsForThread(ctx, threadId)
	if err != nil {
		return domain.Feed{}, err
	}

	return domain.Feed{Thread: thread, Posts: f.renderAll(posts)}, nil
}

// Posts returns every post of every thread, rendered and newest first.
func (f *Feed) Posts(ctx context.Context) ([]domain.RenderedPost, error) {
	posts, err := f.storage.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].Id > posts[j].Id
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return f.renderAll(posts), nil
}

func (f *Feed) Post(ctx context.Context, id domain.PostId) (domain.RenderedPost, error) {
	post, err := f.storage.GetPost(ctx, id)
	if err != nil {
		return domain.RenderedPost{}, err
	}
	return f.render(post), nil
}

func (f *Feed) render(post domain.Post) domain.RenderedPost {
	return domain.RenderedPost{Post: post, ContentHTML: f.renderer.Render(post.Content)}
}

func (f *Feed) renderAll(posts []domain.Post) []domain.RenderedPost {
	rendered := make([]domain.RenderedPost, len(posts))
	for i, p := range posts {
		rendered[i] = f.render(p)
	}
	return rendered
}
