package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/devconnect/backend/config"
	"github.com/devconnect/backend/internal/middleware"
	"github.com/devconnect/backend/internal/service"
	"github.com/devconnect/backend/internal/testhelpers"
)

// setupTestAPI wires the full handler stack over an in-memory database,
// the way main does, minus the listener.
func setupTestAPI(t *testing.T, githubURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	tokens := service.NewTokenService("test-secret", time.Hour)
	auth := service.NewAuthService(db, tokens)
	profiles := service.NewProfileService(db)
	github := service.NewGithubService(&config.Config{GithubAPIURL: githubURL})

	router := gin.New()
	router.Use(middleware.CORS())
	v1 := router.Group("/api/v1")
	NewAuthHandler(auth).RegisterRoutes(v1)
	NewProfileHandler(profiles, github, auth).RegisterRoutes(v1)
	return router
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, router *gin.Engine, name, email string) string {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/v1/accounts", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("registration did not return a token: %s", w.Body.String())
	}
	return resp.Token
}

func upsertProfile(t *testing.T, router *gin.Engine, token string, fields gin.H) *httptest.ResponseRecorder {
	t.Helper()
	body := gin.H{"status": "Developer", "skills": "Go"}
	for k, v := range fields {
		body[k] = v
	}
	return doJSON(router, http.MethodPost, "/api/v1/profiles", token, body)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	return m
}

func fromISO(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02dT00:00:00Z", year, month, day)
}
