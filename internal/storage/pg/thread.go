package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/itchan-dev/threadfeed/internal/domain"
	internal_errors "github.com/itchan-dev/threadfeed/internal/errors"
)

func (s *Storage) CreateThread(ctx context.Context, title domain.ThreadTitle) (domain.Thread, error) {
	thread := domain.Thread{Title: title, CreatedAt: s.timestamp()}
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO threads (title, created_at)
        VALUES ($1, $2)
        RETURNING id
    `, thread.Title, thread.CreatedAt).Scan(&thread.Id)
	if err != nil {
		return domain.Thread{}, storeError("create thread", err)
	}
	return thread, nil
}

func (s *Storage) GetThread(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	if !storableId(id) {
		return domain.Thread{}, internal_errors.NotFound("Thread not found")
	}
	var thread domain.Thread
	err := s.db.QueryRowContext(ctx, `
        SELECT id, title, created_at
        FROM threads
        WHERE id = $1
    `, id).Scan(&thread.Id, &thread.Title, &thread.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, internal_errors.NotFound("Thread not found")
		}
		return domain.Thread{}, storeError("get thread", err)
	}
	return thread, nil
}

// ListThreads returns every thread. Order is not part of the contract.
func (s *Storage) ListThreads(ctx context.Context) ([]domain.Thread, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, title, created_at
        FROM threads
    `)
	if err != nil {
		return nil, storeError("list threads", err)
	}
	defer rows.Close()

	threads := []domain.Thread{}
	for rows.Next() {
		var thread domain.Thread
		if err := rows.Scan(&thread.Id, &thread.Title, &thread.CreatedAt); err != nil {
			return nil, storeError("list threads", err)
		}
		threads = append(threads, thread)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list threads", err)
	}
	return threads, nil
}
