package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/TSC-Home/svelte-grow-todo/internal/db"
	"github.com/TSC-Home/svelte-grow-todo/internal/domain"
	"github.com/TSC-Home/svelte-grow-todo/internal/service"
)

// Creates (or reuses) a dev account and prints a session token.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	service.InitJWT()
	auth := service.NewAuthService(pool)
	ctx := context.Background()

	email := "testuser@example.com"
	password := "testpass1"

	user, token, err := auth.SignUp(ctx, email, password, "testuser")
	if errors.Is(err, domain.ErrEmailTaken) {
		user, token, err = auth.SignIn(ctx, email, password)
	}
	if err != nil {
		log.Fatalf("create test user failed: %v", err)
	}

	log.Printf("user id=%s email=%s\n", user.ID, user.Email)
	log.Printf("token=%s\n", token)
}
