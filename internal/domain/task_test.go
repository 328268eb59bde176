package domain

import (
	"errors"
	"testing"
	"time"
)

var now = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func TestNewTaskDefaults(t *testing.T) {
	scheduled := time.Date(2026, 4, 1, 18, 30, 0, 0, time.UTC)

	task, err := NewTask("u1", "water the plant", scheduled, now)
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}
	if task.ID == "" {
		t.Fatal("expected generated id")
	}
	if task.Checked || task.Pinned || task.TimerRunning {
		t.Fatalf("expected all flags false, got checked=%v pinned=%v timer=%v",
			task.Checked, task.Pinned, task.TimerRunning)
	}
	if task.AccumulatedSeconds != 0 {
		t.Fatalf("expected zero accumulated time, got %d", task.AccumulatedSeconds)
	}
	if !task.Date.Equal(Day(scheduled)) {
		t.Fatalf("expected date %v, got %v", Day(scheduled), task.Date)
	}
}

func TestNewTaskDateFallsBackToToday(t *testing.T) {
	task, err := NewTask("u1", "stretch", time.Time{}, now)
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}
	if !task.Date.Equal(Day(now)) {
		t.Fatalf("expected creation day %v, got %v", Day(now), task.Date)
	}
}

func TestNewTaskEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		if _, err := NewTask("u1", text, now, now); !errors.Is(err, ErrEmptyText) {
			t.Fatalf("text %q: expected ErrEmptyText, got %v", text, err)
		}
	}
}

func TestToggleTimerRoundTrip(t *testing.T) {
	task := Task{AccumulatedSeconds: 0}

	started := task.ToggleTimer(now)
	if !started.TimerRunning {
		t.Fatal("expected timer running after first toggle")
	}
	if started.TimerStartedAt == nil || !started.TimerStartedAt.Equal(now) {
		t.Fatalf("expected timer_started_at=%v, got %v", now, started.TimerStartedAt)
	}
	if started.AccumulatedSeconds != 0 {
		t.Fatalf("starting must not change accumulated time, got %d", started.AccumulatedSeconds)
	}

	stopped := started.ToggleTimer(now.Add(90 * time.Second))
	if stopped.TimerRunning {
		t.Fatal("expected timer stopped after second toggle")
	}
	if stopped.TimerStartedAt != nil {
		t.Fatal("expected timer_started_at cleared")
	}
	if stopped.AccumulatedSeconds != 90 {
		t.Fatalf("expected 90 accumulated seconds, got %d", stopped.AccumulatedSeconds)
	}
}

func TestToggleTimerAccumulates(t *testing.T) {
	startedAt := now
	task := Task{
		TimerRunning:       true,
		TimerStartedAt:     &startedAt,
		AccumulatedSeconds: 10,
	}

	stopped := task.ToggleTimer(now.Add(5*time.Second + 900*time.Millisecond))
	if stopped.AccumulatedSeconds != 15 {
		t.Fatalf("expected floor to 15 seconds, got %d", stopped.AccumulatedSeconds)
	}
}

func TestToggleTimerClockSkewClampsToZero(t *testing.T) {
	startedAt := now.Add(time.Hour)
	task := Task{
		TimerRunning:       true,
		TimerStartedAt:     &startedAt,
		AccumulatedSeconds: 42,
	}

	stopped := task.ToggleTimer(now)
	if stopped.AccumulatedSeconds != 42 {
		t.Fatalf("negative elapsed must clamp to zero, got %d", stopped.AccumulatedSeconds)
	}
	if stopped.TimerRunning || stopped.TimerStartedAt != nil {
		t.Fatal("timer must still stop on clock skew")
	}
}
