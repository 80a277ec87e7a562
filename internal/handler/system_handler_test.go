package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wekraft-001/admin-hub/internal/models"
	"github.com/Wekraft-001/admin-hub/internal/service"
	"github.com/Wekraft-001/admin-hub/pkg/logger"
)

type fakeResetService struct {
	sessionID string
}

func (f *fakeResetService) Reset(_ context.Context, sessionID string) models.Notification {
	f.sessionID = sessionID
	return models.Notify("Data Reset", "All collections have been restored to their initial data.")
}

func TestSystemHandlerIndexLinksToLogin(t *testing.T) {
	handler := NewSystemHandler(&fakeResetService{})

	c, w := newGinContext(http.MethodGet, "/", nil)
	handler.Index(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decodeEnvelope(t, w).Data), `"login":"/admin/login"`)
}

func TestSystemHandlerReset(t *testing.T) {
	svc := &fakeResetService{}
	handler := NewSystemHandler(svc)

	c, w := newGinContext(http.MethodPost, "/admin/reset", nil)
	c.Set(logger.SessionIDKey, "sid-9")
	handler.Reset(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sid-9", svc.sessionID)
	assert.Equal(t, "Data Reset", notificationTitle(decodeEnvelope(t, w)))
}

func TestMetricsHandlerReady(t *testing.T) {
	healthy := NewMetricsHandler(service.NewMetricsService(), ReadinessCheck{Name: "redis", Check: func(context.Context) error { return nil }})
	c, w := newGinContext(http.MethodGet, "/ready", nil)
	healthy.Ready(c)
	assert.Equal(t, http.StatusOK, w.Code)

	down := NewMetricsHandler(nil, ReadinessCheck{Name: "postgres", Check: func(context.Context) error { return errors.New("connection refused") }})
	c, w = newGinContext(http.MethodGet, "/ready", nil)
	down.Ready(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")

	c, w = newGinContext(http.MethodGet, "/metrics", nil)
	down.Prometheus(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
