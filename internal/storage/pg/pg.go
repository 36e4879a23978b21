package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/itchan-dev/threadfeed/internal/config"
	internal_errors "github.com/itchan-dev/threadfeed/internal/errors"
	"github.com/itchan-dev/threadfeed/internal/logger"

	"github.com/lib/pq"
)

const foreignKeyViolation = "23503"

type Storage struct {
	db  *sql.DB
	now func() time.Time
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return NewWithDB(db), nil
}

// NewWithDB wraps an already opened handle.
func NewWithDB(db *sql.DB) *Storage {
	return &Storage{db: db, now: time.Now}
}

// WithClock returns a copy of the storage stamping created_at with now.
func (s *Storage) WithClock(now func() time.Time) *Storage {
	c := *s
	c.now = now
	return &c
}

func DSN(cfg *config.Config) string {
	pg := cfg.Private.Pg
	sslmode := pg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		pg.Host, pg.Port, pg.User, pg.Password, pg.Dbname, sslmode)
}

func Connect(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func (s *Storage) timestamp() time.Time {
	return s.now().UTC()
}

// storableId reports whether id fits the BIGINT id columns.
// Larger values cannot name a row and the driver refuses them as arguments.
func storableId(id uint64) bool {
	return id <= math.MaxInt64
}

func storeError(op string, err error) error {
	return &internal_errors.StoreError{Op: op, Err: err}
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == foreignKeyViolation
	}
	return false
}
