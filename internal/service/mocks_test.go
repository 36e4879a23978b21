package service

import (
	"context"
	"sync"

	"github.com/itchan-dev/threadfeed/internal/domain"
)

// --- Mocks ---

// MockStorage mocks every storage interface used by the services.
type MockStorage struct {
	createThreadFunc       func(ctx context.Context, title domain.ThreadTitle) (domain.Thread, error)
	getThreadFunc          func(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
	listThreadsFunc        func(ctx context.Context) ([]domain.Thread, error)
	createPostFunc         func(ctx context.Context, creationData domain.PostCreationData) (domain.Post, error)
	getPostFunc            func(ctx context.Context, id domain.PostId) (domain.Post, error)
	listPostsFunc          func(ctx context.Context) ([]domain.Post, error)
	listPostsForThreadFunc func(ctx context.Context, threadId domain.ThreadId) ([]domain.Post, error)

	mu    sync.Mutex
	calls map[string]int
}

func (m *MockStorage) track(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[name]++
}

func (m *MockStorage) Calls(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *MockStorage) Writes() int {
	return m.Calls("CreateThread") + m.Calls("CreatePost")
}

func (m *MockStorage) CreateThread(ctx context.Context, title domain.ThreadTitle) (domain.Thread, error) {
	m.track("CreateThread")
	if m.createThreadFunc != nil {
		return m.createThreadFunc(ctx, title)
	}
	return domain.Thread{Id: 1, Title: title}, nil
}

func (m *MockStorage) GetThread(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	m.track("GetThread")
	if m.getThreadFunc != nil {
		return m.getThreadFunc(ctx, id)
	}
	return domain.Thread{Id: id}, nil
}

func (m *MockStorage) ListThreads(ctx context.Context) ([]domain.Thread, error) {
	m.track("ListThreads")
	if m.listThreadsFunc != nil {
		return m.listThreadsFunc(ctx)
	}
	return []domain.Thread{}, nil
}

func (m *MockStorage) CreatePost(ctx context.Context, creationData domain.PostCreationData) (domain.Post, error) {
	m.track("CreatePost")
	if m.createPostFunc != nil {
		return m.createPostFunc(ctx, creationData)
	}
	return domain.Post{Id: 1, ThreadId: creationData.ThreadId, Author: creationData.Author, Content: creationData.Content}, nil
}

func (m *MockStorage) GetPost(ctx context.Context, id domain.PostId) (domain.Post, error) {
	m.track("GetPost")
	if m.getPostFunc != nil {
		return m.getPostFunc(ctx, id)
	}
	return domain.Post{Id: id}, nil
}

func (m *MockStorage) ListPosts(ctx context.Context) ([]domain.Post, error) {
	m.track("ListPosts")
	if m.listPostsFunc != nil {
		return m.listPostsFunc(ctx)
	}
	return []domain.Post{}, nil
}

func (m *MockStorage) ListPostsForThread(ctx context.Context, threadId domain.ThreadId) ([]domain.Post, error) {
	m.track("ListPostsForThread")
	if m.listPostsForThreadFunc != nil {
		return m.listPostsForThreadFunc(ctx, threadId)
	}
	return []domain.Post{}, nil
}

// MockRenderer wraps content in a marker so tests can see it was rendered.
type MockRenderer struct {
	mu    sync.Mutex
	count int
}

func (m *MockRenderer) Render(markup string) string {
	m.mu.Lock()
	m.count++
	m.mu.Unlock()
	return "<p>" + markup + "</p>"
}

func (m *MockRenderer) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}
