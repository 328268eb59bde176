package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/TSC-Home/svelte-grow-todo/internal/domain"
	"github.com/TSC-Home/svelte-grow-todo/internal/http/middleware"
	"github.com/TSC-Home/svelte-grow-todo/internal/logger"
	"github.com/TSC-Home/svelte-grow-todo/internal/ws"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

func (h *Handler) CreateTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "user not found"})
		return
	}

	var req struct {
		Text string `json:"text"`
		Date string `json:"date"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "bad request"})
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid date, want YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	task, err := domain.NewTask(userID, req.Text, date, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Task text is required"})
		return
	}

	if err := h.TaskRepo.Create(c.Request.Context(), task); err != nil {
		logger.Error("failed to create task", "user_id", userID, "error", err)
		middleware.TaskMutations.WithLabelValues("create", "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to create task"})
		return
	}

	middleware.TaskMutations.WithLabelValues("create", "ok").Inc()
	h.Hub.NotifyChanged(userID, ws.ScopeTasks)
	c.JSON(http.StatusOK, gin.H{"success": true, "task": task})
}

func (h *Handler) ListTasks(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "user not found"})
		return
	}

	now := time.Now()
	reference := now
	if v := c.Query("date"); v != "" {
		if parsed, err := time.Parse(dateLayout, v); err == nil {
			reference = parsed
		}
	}

	filter := domain.ResolveFilter(c.Query("filter"), reference, now)
	tasks, err := h.TaskRepo.ListForFilter(c.Request.Context(), userID, filter)
	if err != nil {
		// the page stays renderable on backend trouble
		logger.Error("failed to list tasks", "user_id", userID, "error", err)
		c.JSON(http.StatusOK, gin.H{"tasks": []*domain.Task{}})
		return
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (h *Handler) ToggleChecked(c *gin.Context) {
	h.toggleTask(c, "check", func(c *gin.Context, userID string) (*domain.Task, error) {
		return h.TaskRepo.ToggleChecked(c.Request.Context(), c.Param("id"), userID)
	})
}

func (h *Handler) TogglePinned(c *gin.Context) {
	h.toggleTask(c, "pin", func(c *gin.Context, userID string) (*domain.Task, error) {
		return h.TaskRepo.TogglePinned(c.Request.Context(), c.Param("id"), userID)
	})
}

func (h *Handler) ToggleTimer(c *gin.Context) {
	h.toggleTask(c, "timer", func(c *gin.Context, userID string) (*domain.Task, error) {
		// wall clock captured at the moment of toggling
		return h.TaskRepo.ToggleTimer(c.Request.Context(), c.Param("id"), userID, time.Now())
	})
}

func (h *Handler) toggleTask(c *gin.Context, kind string, op func(*gin.Context, string) (*domain.Task, error)) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "user not found"})
		return
	}

	task, err := op(c, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "task not found"})
			return
		}
		logger.Error("failed to toggle task", "kind", kind, "user_id", userID, "error", err)
		middleware.TaskMutations.WithLabelValues(kind, "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to update task"})
		return
	}

	middleware.TaskMutations.WithLabelValues(kind, "ok").Inc()
	h.Hub.NotifyChanged(userID, ws.ScopeTasks)
	c.JSON(http.StatusOK, gin.H{"success": true, "task": task})
}

func (h *Handler) DeleteTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "user not found"})
		return
	}

	if err := h.TaskRepo.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "task not found"})
			return
		}
		logger.Error("failed to delete task", "user_id", userID, "error", err)
		middleware.TaskMutations.WithLabelValues("delete", "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to delete task"})
		return
	}

	middleware.TaskMutations.WithLabelValues("delete", "ok").Inc()
	h.Hub.NotifyChanged(userID, ws.ScopeTasks)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
