package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/itchan-dev/threadfeed/internal/domain"
	internal_errors "github.com/itchan-dev/threadfeed/internal/errors"
)

const postColumns = "id, thread_id, author, content, created_at"

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(row scanner) (domain.Post, error) {
	var post domain.Post
	err := row.Scan(&post.Id, &post.ThreadId, &post.Author, &post.Content, &post.CreatedAt)
	return post, err
}

func (s *Storage) CreatePost(ctx context.Context, creationData domain.PostCreationData) (domain.Post, error) {
	if !storableId(creationData.ThreadId) {
		return domain.Post{}, internal_errors.NotFound("Thread not found")
	}
	post := domain.Post{
		ThreadId:  creationData.ThreadId,
		Author:    creationData.Author,
		Content:   creationData.Content,
		CreatedAt: s.timestamp(),
	}
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO posts (thread_id, author, content, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, post.ThreadId, post.Author, post.Content, post.CreatedAt).Scan(&post.Id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Post{}, internal_errors.NotFound("Thread not found")
		}
		return domain.Post{}, storeError("create post", err)
	}
	return post, nil
}

func (s *Storage) GetPost(ctx context.Context, id domain.PostId) (domain.Post, error) {
	if !storableId(id) {
		return domain.Post{}, internal_errors.NotFound("Post not found")
	}
	post, err := scanPost(s.db.QueryRowContext(ctx,
		"SELECT "+postColumns+" FROM posts WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, internal_errors.NotFound("Post not found")
		}
		return domain.Post{}, storeError("get post", err)
	}
	return post, nil
}

// ListPosts returns posts of every thread. Order is not part of the contract.
func (s *Storage) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return s.queryPosts(ctx, "list posts", "SELECT "+postColumns+" FROM posts")
}

// ListPostsForThread returns the posts of one thread, newest first.
// Posts sharing a timestamp are ordered by id, higher first.
func (s *Storage) ListPostsForThread(ctx context.Context, threadId domain.ThreadId) ([]domain.Post, error) {
	if !storableId(threadId) {
		return []domain.Post{}, nil
	}
	return s.queryPosts(ctx, "list thread posts", `
        SELECT `+postColumns+`
        FROM posts
        WHERE thread_id = $1
        ORDER BY created_at DESC, id DESC
    `, threadId)
}

func (s *Storage) queryPosts(ctx context.Context, op, query string, args ...any) ([]domain.Post, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError(op, err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, storeError(op, err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(op, err)
	}
	return posts, nil
}
