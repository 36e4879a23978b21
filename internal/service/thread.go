package service

import (
	"context"
	"sort"
	"strings"

	"github.com/itchan-dev/threadfeed/internal/domain"
)

type ThreadService interface {
	Create(ctx context.Context, title domain.ThreadTitle) (domain.Thread, error)
	Get(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
	List(ctx context.Context) ([]domain.Thread, error)
}

type Thread struct {
	storage   ThreadStorage
	validator ThreadValidator
}

type ThreadStorage interface {
	CreateThread(ctx context.Context, title domain.ThreadTitle) (domain.Thread, error)
	GetThread(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
	ListThreads(ctx context.Context) ([]domain.Thread, error)
}

type ThreadValidator interface {
	Title(title domain.ThreadTitle) error
}

func NewThread(storage ThreadStorage, validator ThreadValidator) *Thread {
	return &Thread{storage: storage, validator: validator}
}

func (b *Thread) Create(ctx context.Context, title domain.ThreadTitle) (domain.Thread, error) {
	title = strings.TrimSpace(title)
	if err := b.validator.Title(title); err != nil {
		return domain.Thread{}, err
	}
	return b.storage.CreateThread(ctx, title)
}

func (b *Thread) Get(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	return b.storage.GetThread(ctx, id)
}

// List returns every thread, newest first.
func (b *Thread) List(ctx context.Context) ([]domain.Thread, error) {
	threads, err := b.storage.ListThreads(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(threads, func(i, j int) bool {
		if threads[i].CreatedAt.Equal(threads[j].CreatedAt) {
			return threads[i].Id > threads[j].Id
		}
		return threads[i].CreatedAt.After(threads[j].CreatedAt)
	})
	return threads, nil
}
