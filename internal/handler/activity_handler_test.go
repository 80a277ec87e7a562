package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wekraft-001/admin-hub/internal/models"
)

type fakeActivityService struct {
	lastLimit int
}

func (f *fakeActivityService) List(_ context.Context, limit int) ([]models.ActivityEntry, error) {
	f.lastLimit = limit
	return []models.ActivityEntry{{ID: "a1", Action: models.ActivityLogin, Title: "Welcome back, Admin"}}, nil
}

func TestActivityHandlerList(t *testing.T) {
	svc := &fakeActivityService{}
	handler := NewActivityHandler(svc)

	c, w := newGinContext(http.MethodGet, "/admin/activity?limit=10", nil)
	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, svc.lastLimit)

	c, _ = newGinContext(http.MethodGet, "/admin/activity", nil)
	handler.List(c)
	assert.Equal(t, 0, svc.lastLimit)
}

func TestActivityHandlerRejectsNonNumericLimit(t *testing.T) {
	handler := NewActivityHandler(&fakeActivityService{})

	c, w := newGinContext(http.MethodGet, "/admin/activity?limit=ten", nil)
	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
