package setup

import (
	"context"
	"fmt"

	"github.com/itchan-dev/threadfeed/internal/config"
	"github.com/itchan-dev/threadfeed/internal/handler"
	"github.com/itchan-dev/threadfeed/internal/markdown"
	"github.com/itchan-dev/threadfeed/internal/service"
	"github.com/itchan-dev/threadfeed/internal/storage/pg"
	"github.com/itchan-dev/threadfeed/internal/utils"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Config  *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	if err := pg.Migrate(cfg); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	storage, err := pg.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	renderer := markdown.New()

	thread := service.NewThread(storage, &utils.ThreadTitleValidator{})
	post := service.NewPost(storage, &utils.PostValidator{})
	feed := service.NewFeed(storage, renderer)
	gate := service.NewWriteGate(cfg.WritePassword())

	h, err := handler.New(thread, post, feed, gate, storage, cfg)
	if err != nil {
		storage.Cleanup()
		return nil, err
	}

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Config:  cfg,
	}, nil
}
