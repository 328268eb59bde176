package handlers

import (
	"errors"
	"net/http"

	"github.com/TSC-Home/svelte-grow-todo/internal/domain"
	"github.com/TSC-Home/svelte-grow-todo/internal/logger"
	"github.com/TSC-Home/svelte-grow-todo/internal/ws"

	"github.com/gin-gonic/gin"
)

// FetchSnapshot always answers with something renderable: anonymous
// visitors, missing rows and lookup failures all get the defaults.
func (h *Handler) FetchSnapshot(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"success": true, "store": domain.DefaultSnapshot()})
		return
	}

	snapshot, err := h.SnapshotRepo.Fetch(c.Request.Context(), userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("failed to fetch snapshot", "user_id", userID, "error", err)
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "store": domain.DefaultSnapshot()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "store": snapshot})
}

// SaveSnapshot overwrites the user's snapshot row wholesale.
func (h *Handler) SaveSnapshot(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "user not found"})
		return
	}

	var req domain.Snapshot
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "bad request"})
		return
	}
	if req.Todos == nil {
		req.Todos = []domain.TodoItem{}
	}

	if err := h.SnapshotRepo.ReplaceAll(c.Request.Context(), userID, req); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "snapshot not found"})
			return
		}
		logger.Error("failed to save snapshot", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save data"})
		return
	}

	h.Hub.NotifyChanged(userID, ws.ScopeSnapshot)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Data saved successfully"})
}
