package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TSC-Home/svelte-grow-todo/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, user_id, text, checked, pinned, date, timer_running, accumulated_seconds, timer_started_at, created_at`

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Text,
		&t.Checked,
		&t.Pinned,
		&t.Date,
		&t.TimerRunning,
		&t.AccumulatedSeconds,
		&t.TimerStartedAt,
		&t.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Dates travel as YYYY-MM-DD text with explicit ::date casts so the
// server session timezone can never shift the day.
const dateLayout = "2006-01-02"

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO tasks (id, user_id, text, date)
		 VALUES ($1, $2, $3, $4::date)
		 RETURNING created_at`,
		t.ID, t.UserID, t.Text, t.Date.Format(dateLayout),
	).Scan(&t.CreatedAt)
}

// ListForFilter returns the user's tasks inside the filter window,
// newest first.
func (r *TaskRepository) ListForFilter(ctx context.Context, userID string, f domain.Filter) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1`
	args := []any{userID}

	if f.From != nil {
		args = append(args, f.From.Format(dateLayout))
		query += fmt.Sprintf(" AND date >= $%d::date", len(args))
	}
	if f.To != nil {
		args = append(args, f.To.Format(dateLayout))
		query += fmt.Sprintf(" AND date <= $%d::date", len(args))
	}
	if f.OpenOnly {
		query += " AND checked = false"
	}
	if f.ExcludeDate != nil {
		args = append(args, f.ExcludeDate.Format(dateLayout))
		query += fmt.Sprintf(" AND date <> $%d::date", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) GetByID(ctx context.Context, id, userID string) (*domain.Task, error) {
	return scanTask(r.db.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
}

// ToggleChecked flips checked in a single statement so concurrent
// toggles cannot lose an update.
func (r *TaskRepository) ToggleChecked(ctx context.Context, id, userID string) (*domain.Task, error) {
	return scanTask(r.db.QueryRow(ctx,
		`UPDATE tasks SET checked = NOT checked
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+taskColumns,
		id, userID,
	))
}

func (r *TaskRepository) TogglePinned(ctx context.Context, id, userID string) (*domain.Task, error) {
	return scanTask(r.db.QueryRow(ctx,
		`UPDATE tasks SET pinned = NOT pinned
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+taskColumns,
		id, userID,
	))
}

// ToggleTimer starts or stops the task timer atomically. Elapsed time
// is computed from the stored timer_started_at against the wall-clock
// instant passed in, floored to whole seconds and clamped at zero.
func (r *TaskRepository) ToggleTimer(ctx context.Context, id, userID string, now time.Time) (*domain.Task, error) {
	return scanTask(r.db.QueryRow(ctx,
		`UPDATE tasks SET
		    accumulated_seconds = CASE WHEN timer_running
		        THEN accumulated_seconds + GREATEST(0, FLOOR(EXTRACT(EPOCH FROM ($3::timestamptz - timer_started_at))))::bigint
		        ELSE accumulated_seconds END,
		    timer_started_at = CASE WHEN timer_running THEN NULL ELSE $3::timestamptz END,
		    timer_running = NOT timer_running
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+taskColumns,
		id, userID, now,
	))
}

func (r *TaskRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
