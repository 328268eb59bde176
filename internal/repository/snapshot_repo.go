package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/TSC-Home/svelte-grow-todo/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SnapshotRepository manages the single per-user plant state row. The
// blob is read and replaced wholesale, never patched field by field.
type SnapshotRepository struct {
	db *pgxpool.Pool
}

func NewSnapshotRepository(db *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Create inserts the default snapshot for a new account. Called exactly
// once, at sign-up.
func (r *SnapshotRepository) Create(ctx context.Context, userID string) error {
	store, err := json.Marshal(domain.DefaultSnapshot())
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO user_snapshots (user_id, store) VALUES ($1, $2)`,
		userID, store,
	)
	return err
}

func (r *SnapshotRepository) Fetch(ctx context.Context, userID string) (domain.Snapshot, error) {
	var raw []byte
	err := r.db.QueryRow(ctx,
		`SELECT store FROM user_snapshots WHERE user_id = $1`,
		userID,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Snapshot{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Snapshot{}, err
	}

	var s domain.Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return domain.Snapshot{}, err
	}
	if s.Todos == nil {
		s.Todos = []domain.TodoItem{}
	}
	return s, nil
}

// ReplaceAll overwrites the user's snapshot row. A missing row is an
// error, not an upsert.
func (r *SnapshotRepository) ReplaceAll(ctx context.Context, userID string, s domain.Snapshot) error {
	store, err := json.Marshal(s)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE user_snapshots SET store = $2, updated_at = now() WHERE user_id = $1`,
		userID, store,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
