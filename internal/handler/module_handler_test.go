package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wekraft-001/admin-hub/internal/dto"
	"github.com/Wekraft-001/admin-hub/internal/models"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
	"github.com/Wekraft-001/admin-hub/pkg/logger"
)

type fakeModuleService struct {
	confirmed  *bool
	lastCreate dto.ModuleRequest
	lastDrag   dto.DragRequest
	sessionIDs []string
}

func (f *fakeModuleService) List(context.Context) ([]models.Module, error) {
	return []models.Module{{ID: "1", Title: "Introduction to Learning"}}, nil
}

func (f *fakeModuleService) Create(_ context.Context, sid string, req dto.ModuleRequest) (*models.Module, models.Notification, error) {
	f.sessionIDs = append(f.sessionIDs, sid)
	f.lastCreate = req
	return &models.Module{ID: "module-x", Title: req.Title}, models.Notify("Module Created", req.Title+" has been added successfully."), nil
}

func (f *fakeModuleService) Update(_ context.Context, _ string, id string, req dto.ModuleRequest) (*models.Module, models.Notification, error) {
	if id != "1" {
		return nil, models.Notification{}, appErrors.Clone(appErrors.ErrNotFound, "module not found")
	}
	return &models.Module{ID: id, Title: req.Title}, models.Notify("Module Updated", ""), nil
}

func (f *fakeModuleService) Delete(_ context.Context, _ string, _ string, confirmed bool) (models.Notification, error) {
	f.confirmed = &confirmed
	if !confirmed {
		return models.Notification{}, appErrors.Clone(appErrors.ErrPreconditionFailed, "deletion must be confirmed")
	}
	return models.Notify("Module Deleted", "Introduction to Learning has been removed."), nil
}

func (f *fakeModuleService) Move(context.Context, string, dto.MoveRequest) ([]models.Module, models.Notification, error) {
	return nil, models.Notify("Order Updated", "Module order has been saved."), nil
}

func (f *fakeModuleService) DragStart(_ context.Context, _ string, req dto.DragRequest) (*dto.DragState, error) {
	f.lastDrag = req
	return &dto.DragState{Dragging: true, Index: req.Index}, nil
}

func (f *fakeModuleService) DragOver(_ context.Context, _ string, req dto.DragRequest) (*dto.DragState, error) {
	f.lastDrag = req
	return &dto.DragState{Dragging: true, Index: req.Index}, nil
}

func (f *fakeModuleService) DragEnd(context.Context, string) (*dto.DragState, models.Notification, error) {
	return &dto.DragState{}, models.Notify("Order Updated", "Module order has been saved."), nil
}

func (f *fakeModuleService) DragCancel(context.Context, string) (*dto.DragState, error) {
	return &dto.DragState{}, nil
}

func TestModuleHandlerCreate(t *testing.T) {
	svc := &fakeModuleService{}
	handler := NewModuleHandler(svc)
	body, _ := json.Marshal(dto.ModuleRequest{Title: "Wrap-up", Type: models.ModuleTypeQuiz})

	c, w := newGinContext(http.MethodPost, "/admin/modules", body)
	c.Set(logger.SessionIDKey, "sid-1")
	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Module Created", notificationTitle(decodeEnvelope(t, w)))
	assert.Equal(t, "Wrap-up", svc.lastCreate.Title)
	assert.Equal(t, []string{"sid-1"}, svc.sessionIDs)
}

func TestModuleHandlerUpdateNotFound(t *testing.T) {
	handler := NewModuleHandler(&fakeModuleService{})
	body, _ := json.Marshal(dto.ModuleRequest{Title: "x"})

	c, w := newGinContext(http.MethodPut, "/admin/modules/99", body)
	c.Params = gin.Params{{Key: "id", Value: "99"}}
	handler.Update(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestModuleHandlerDeleteRequiresConfirmation(t *testing.T) {
	svc := &fakeModuleService{}
	handler := NewModuleHandler(svc)

	c, w := newGinContext(http.MethodDelete, "/admin/modules/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	handler.Delete(c)
	assert.Equal(t, http.StatusPreconditionFailed, w.Code)
	require.NotNil(t, svc.confirmed)
	assert.False(t, *svc.confirmed)

	c, w = newGinContext(http.MethodDelete, "/admin/modules/1?confirm=true", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	handler.Delete(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *svc.confirmed)
	assert.Equal(t, "Module Deleted", notificationTitle(decodeEnvelope(t, w)))
}

func TestModuleHandlerDragLifecycle(t *testing.T) {
	svc := &fakeModuleService{}
	handler := NewModuleHandler(svc)

	c, w := newGinContext(http.MethodPost, "/admin/modules/drag/start", []byte(`{"index":2}`))
	handler.DragStart(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastDrag.Index)
	assert.Equal(t, 2, *svc.lastDrag.Index)

	c, w = newGinContext(http.MethodPost, "/admin/modules/drag/over", []byte(`{"index":0}`))
	handler.DragOver(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, notificationTitle(decodeEnvelope(t, w)))

	c, w = newGinContext(http.MethodPost, "/admin/modules/drag/end", nil)
	handler.DragEnd(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Order Updated", notificationTitle(decodeEnvelope(t, w)))
}

func TestModuleHandlerDragRejectsMalformedBody(t *testing.T) {
	handler := NewModuleHandler(&fakeModuleService{})

	c, w := newGinContext(http.MethodPost, "/admin/modules/drag/start", []byte(`{"index":"two"}`))
	handler.DragStart(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
