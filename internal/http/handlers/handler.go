package handlers

import (
	"github.com/TSC-Home/svelte-grow-todo/internal/repository"
	"github.com/TSC-Home/svelte-grow-todo/internal/service"
	"github.com/TSC-Home/svelte-grow-todo/internal/ws"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB           *pgxpool.Pool
	TaskRepo     *repository.TaskRepository
	SnapshotRepo *repository.SnapshotRepository
	UserRepo     *repository.UserRepository
	AuthService  *service.AuthService
	Hub          *ws.Hub
}

func NewHandler(db *pgxpool.Pool, hub *ws.Hub) *Handler {
	return &Handler{
		DB:           db,
		TaskRepo:     repository.NewTaskRepository(db),
		SnapshotRepo: repository.NewSnapshotRepository(db),
		UserRepo:     repository.NewUserRepository(db),
		AuthService:  service.NewAuthService(db),
		Hub:          hub,
	}
}

// getUserID pulls the authenticated user id out of the Gin context.
func getUserID(c interface{ Get(string) (any, bool) }) (string, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return "", false
	}
	uid, ok := uidVal.(string)
	return uid, ok && uid != ""
}
