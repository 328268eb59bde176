package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID                 string     `json:"id" db:"id"`
	UserID             string     `json:"user_id" db:"user_id"`
	Text               string     `json:"text" db:"text"`
	Checked            bool       `json:"checked" db:"checked"`
	Pinned             bool       `json:"pinned" db:"pinned"`
	Date               time.Time  `json:"date" db:"date"`
	TimerRunning       bool       `json:"timer_running" db:"timer_running"`
	AccumulatedSeconds int64      `json:"accumulated_seconds" db:"accumulated_seconds"`
	TimerStartedAt     *time.Time `json:"timer_started_at,omitempty" db:"timer_started_at"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
}

// NewTask builds a task with creation defaults. Text must be non-empty
// after trimming; a zero date falls back to the current day.
func NewTask(userID, text string, date time.Time, now time.Time) (*Task, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if date.IsZero() {
		date = now
	}
	return &Task{
		ID:     uuid.NewString(),
		UserID: userID,
		Text:   text,
		Date:   Day(date),
	}, nil
}

// ToggleTimer flips the timer state at the given wall-clock instant.
// Stopping adds floor(now - timer_started_at) seconds, clamped at zero
// so clock skew can never shrink the accumulated total.
func (t Task) ToggleTimer(now time.Time) Task {
	if t.TimerRunning {
		var elapsed int64
		if t.TimerStartedAt != nil {
			elapsed = int64(now.Sub(*t.TimerStartedAt).Seconds())
		}
		if elapsed < 0 {
			elapsed = 0
		}
		t.AccumulatedSeconds += elapsed
		t.TimerRunning = false
		t.TimerStartedAt = nil
		return t
	}

	started := now
	t.TimerRunning = true
	t.TimerStartedAt = &started
	return t
}
