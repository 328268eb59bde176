package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TSC-Home/svelte-grow-todo/internal/ws"

	"github.com/gin-gonic/gin"
)

// These cases never reach the database: validation fails first, so a
// handler over a nil pool is safe.
func testRouter(userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(nil, ws.NewHub())

	r := gin.New()
	auth := func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	}
	r.POST("/auth/signup", h.SignUp)
	r.POST("/auth/signin", h.SignIn)
	r.POST("/tasks", auth, h.CreateTask)
	r.GET("/snapshot", auth, h.FetchSnapshot)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func TestSignUpMissingFields(t *testing.T) {
	r := testRouter("")

	w, resp := doJSON(t, r, http.MethodPost, "/auth/signup", `{"email":"a@x.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp["error"] != "Email and password are required" {
		t.Fatalf("unexpected error message: %v", resp["error"])
	}
}

func TestSignInMissingFields(t *testing.T) {
	r := testRouter("")

	w, resp := doJSON(t, r, http.MethodPost, "/auth/signin", `{"password":"secret1"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp["success"] != false {
		t.Fatalf("expected success=false, got %v", resp["success"])
	}
}

func TestCreateTaskEmptyText(t *testing.T) {
	r := testRouter("u1")

	w, resp := doJSON(t, r, http.MethodPost, "/tasks", `{"text":"   "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp["error"] != "Task text is required" {
		t.Fatalf("unexpected error message: %v", resp["error"])
	}
}

func TestCreateTaskInvalidDate(t *testing.T) {
	r := testRouter("u1")

	w, _ := doJSON(t, r, http.MethodPost, "/tasks", `{"text":"x","date":"14-03-2026"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateTaskUnauthenticated(t *testing.T) {
	r := testRouter("")

	w, _ := doJSON(t, r, http.MethodPost, "/tasks", `{"text":"x"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestFetchSnapshotAnonymousGetsDefaults(t *testing.T) {
	r := testRouter("")

	req := httptest.NewRequest(http.MethodGet, "/snapshot", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Store   struct {
			Todos         []any   `json:"todos"`
			SelectedPlant string  `json:"selectedPlant"`
			PlantGrowth   float64 `json:"plantGrowth"`
		} `json:"store"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !resp.Success || resp.Store.SelectedPlant != "tree" || resp.Store.PlantGrowth != 0 || len(resp.Store.Todos) != 0 {
		t.Fatalf("expected default snapshot, got %s", w.Body.String())
	}
}
