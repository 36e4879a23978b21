package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/threadfeed/internal/config"
	"github.com/itchan-dev/threadfeed/internal/domain"
	"github.com/itchan-dev/threadfeed/internal/errors"
	"github.com/itchan-dev/threadfeed/internal/markdown"
	"github.com/itchan-dev/threadfeed/internal/service"
	"github.com/itchan-dev/threadfeed/internal/utils"
	"github.com/stretchr/testify/require"
)

const testPassword = "hunter2"

// memStore is an in-memory store satisfying every storage interface the
// services use.
type memStore struct {
	mu      sync.Mutex
	threads map[domain.ThreadId]domain.Thread
	posts   []domain.Post
	nextId  uint64
	now     time.Time
	writes  int
	pingErr error
}

func newMemStore() *memStore {
	return &memStore{
		threads: make(map[domain.ThreadId]domain.Thread),
		now:     time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) tick() time.Time {
	s.now = s.now.Add(time.Second)
	return s.now
}

func (s *memStore) CreateThread(ctx context.Context, title domain.ThreadTitle) (domain.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	s.nextId++
	thread := domain.Thread{Id: s.nextId, Title: title, CreatedAt: s.tick()}
	s.threads[thread.Id] = thread
	return thread, nil
}

func (s *memStore) GetThread(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	thread, ok := s.threads[id]
	if !ok {
		return domain.Thread{}, errors.NotFound("Thread not found")
	}
	return thread, nil
}

func (s *memStore) ListThreads(ctx context.Context) ([]domain.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	threads := make([]domain.Thread, 0, len(s.threads))
	for _, t := range s.threads {
		threads = append(threads, t)
	}
	return threads, nil
}

func (s *memStore) CreatePost(ctx context.Context, data domain.PostCreationData) (domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.threads[data.ThreadId]; !ok {
		return domain.Post{}, errors.NotFound("Thread not found")
	}
	s.writes++
	s.nextId++
	post := domain.Post{Id: s.nextId, ThreadId: data.ThreadId, Author: data.Author, Content: data.Content, CreatedAt: s.tick()}
	s.posts = append(s.posts, post)
	return post, nil
}

func (s *memStore) GetPost(ctx context.Context, id domain.PostId) (domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.Id == id {
			return p, nil
		}
	}
	return domain.Post{}, errors.NotFound("Post not found")
}

func (s *memStore) ListPosts(ctx context.Context) ([]domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Post{}, s.posts...), nil
}

func (s *memStore) ListPostsForThread(ctx context.Context, threadId domain.ThreadId) ([]domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts := []domain.Post{}
	for _, p := range s.posts {
		if p.ThreadId == threadId {
			posts = append(posts, p)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (s *memStore) Ping(ctx context.Context) error {
	return s.pingErr
}

func (s *memStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func testConfig() *config.Config {
	return &config.Config{
		Public:  config.Public{FeedPollInterval: 5 * time.Second},
		Private: config.Private{WritePassword: testPassword},
	}
}

func newTestHandler(t *testing.T, store *memStore) *Handler {
	t.Helper()
	cfg := testConfig()
	h, err := New(
		service.NewThread(store, &utils.ThreadTitleValidator{}),
		service.NewPost(store, &utils.PostValidator{}),
		service.NewFeed(store, markdown.New()),
		service.NewWriteGate(cfg.WritePassword()),
		store,
		cfg,
	)
	require.NoError(t, err)
	return h
}

func newTestRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	r.Get("/threads", h.ThreadsPage)
	r.Get("/threads/{thread}", h.ThreadPage)
	r.Get("/threads.json", h.GetThreads)
	r.Get("/threads/{thread}/feed.json", h.GetFeed)
	r.Get("/posts.json", h.GetPosts)
	r.Get("/posts/{post}.json", h.GetPost)
	r.Post("/thread/form_handler", h.CreateThread)
	r.Post("/post/form_handler", h.CreatePost)
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	return r
}

func postForm(t *testing.T, router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rr)["error"]
}
