package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Wekraft-001/admin-hub/internal/dto"
	"github.com/Wekraft-001/admin-hub/internal/models"
	"github.com/Wekraft-001/admin-hub/pkg/config"
)

type envelope struct {
	Data  json.RawMessage        `json:"data"`
	Error *struct{ Code string } `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Env:       "test",
		APIPrefix: "/api/v1",
		Session: config.SessionConfig{
			Store:      config.BackendMemory,
			Secret:     "router-test-secret",
			CookieName: "admin_session",
		},
		Activity: config.ActivityConfig{Store: config.BackendMemory},
		Exports: config.ExportsConfig{
			StorageDir:        t.TempDir(),
			SignedURLSecret:   "router-test-exports",
			SignedURLTTL:      time.Hour,
			WorkerConcurrency: 1,
			WorkerRetries:     1,
		},
		Media: config.MediaConfig{
			MaxFileSizeBytes: 1024 * 1024,
			AllowedMIMEs:     []string{"image/png"},
		},
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := NewApp(context.Background(), testConfig(t), zap.NewNop())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	app.Start(ctx)
	t.Cleanup(func() {
		cancel()
		app.Close()
	})
	return app
}

func do(t *testing.T, app *App, method, target, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func login(t *testing.T, app *App) string {
	t.Helper()
	w, env := do(t, app, http.MethodPost, "/api/v1/admin/login", "", dto.LoginRequest{
		Email:    models.AdminEmail,
		Password: models.AdminPassword,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestProtectedRouteRedirectsWithoutSession(t *testing.T) {
	app := newTestApp(t)

	w, env := do(t, app, http.MethodGet, "/api/v1/admin/dashboard", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "/admin/login", env.Meta["redirect"])
}

func TestSessionLifecycle(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	w, env := do(t, app, http.MethodGet, "/api/v1/admin/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary struct {
		Stats models.DashboardStats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 248, summary.Stats.TotalLearners)

	w, _ = do(t, app, http.MethodPost, "/api/v1/admin/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, app, http.MethodGet, "/api/v1/admin/dashboard", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "/admin/login", env.Meta["redirect"])
}

func TestWrongCredentialsStaySignedOut(t *testing.T) {
	app := newTestApp(t)

	w, env := do(t, app, http.MethodPost, "/api/v1/admin/login", "", dto.LoginRequest{
		Email:    models.AdminEmail,
		Password: "nope",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestUnknownRouteReturnsEnvelope(t *testing.T) {
	app := newTestApp(t)

	w, env := do(t, app, http.MethodGet, "/api/v1/admin/nowhere/at/all", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestHealthAndIndexArePublic(t *testing.T) {
	app := newTestApp(t)

	w, _ := do(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, app, http.MethodGet, "/ready", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env := do(t, app, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "/admin/login")
}

func TestExportRoundTrip(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	w, env := do(t, app, http.MethodPost, "/api/v1/admin/exports", token, dto.ExportRequest{
		Kind:   models.ExportKindLearners,
		Format: models.ExportFormatCSV,
		Status: "active",
	})
	require.Equal(t, http.StatusAccepted, w.Code)
	var job dto.ExportJobResponse
	require.NoError(t, json.Unmarshal(env.Data, &job))
	require.NotEmpty(t, job.ID)

	statusURL := "/api/v1/admin/exports/" + job.ID
	require.Eventually(t, func() bool {
		req := httptest.NewRequest(http.MethodGet, statusURL, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, req)
		var env envelope
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			return false
		}
		if err := json.Unmarshal(env.Data, &job); err != nil {
			return false
		}
		return job.Status == models.ExportStatusFinished
	}, 5*time.Second, 20*time.Millisecond)
	require.NotNil(t, job.ResultURL)

	req := httptest.NewRequest(http.MethodGet, *job.ResultURL, nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".csv")
	assert.Contains(t, rec.Body.String(), "Sarah Johnson")
}
