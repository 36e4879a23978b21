package handler

import (
	"context"
	"html/template"

	"github.com/itchan-dev/threadfeed/internal/config"
	"github.com/itchan-dev/threadfeed/internal/service"
)

// HealthChecker is used by the readiness probe.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	thread    service.ThreadService
	post      service.PostService
	feed      service.FeedService
	gate      service.Gate
	health    HealthChecker
	cfg       *config.Config
	templates map[string]*template.Template
}

func New(thread service.ThreadService, post service.PostService, feed service.FeedService, gate service.Gate, health HealthChecker, cfg *config.Config) (*Handler, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Handler{
		thread:    thread,
		post:      post,
		feed:      feed,
		gate:      gate,
		health:    health,
		cfg:       cfg,
		templates: templates,
	}, nil
}
