package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Wekraft-001/admin-hub/internal/dto"
	"github.com/Wekraft-001/admin-hub/internal/models"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
	"github.com/Wekraft-001/admin-hub/pkg/response"
)

type moduleService interface {
	List(ctx context.Context) ([]models.Module, error)
	Create(ctx context.Context, sessionID string, req dto.ModuleRequest) (*models.Module, models.Notification, error)
	Update(ctx context.Context, sessionID, id string, req dto.ModuleRequest) (*models.Module, models.Notification, error)
	Delete(ctx context.Context, sessionID, id string, confirmed bool) (models.Notification, error)
	Move(ctx context.Context, sessionID string, req dto.MoveRequest) ([]models.Module, models.Notification, error)
	DragStart(ctx context.Context, sessionID string, req dto.DragRequest) (*dto.DragState, error)
	DragOver(ctx context.Context, sessionID string, req dto.DragRequest) (*dto.DragState, error)
	DragEnd(ctx context.Context, sessionID string) (*dto.DragState, models.Notification, error)
	DragCancel(ctx context.Context, sessionID string) (*dto.DragState, error)
}

// ModuleHandler manages course modules and their order.
type ModuleHandler struct {
	service moduleService
}

// NewModuleHandler constructs the handler.
func NewModuleHandler(svc moduleService) *ModuleHandler {
	return &ModuleHandler{service: svc}
}

// List godoc
// @Summary List modules in order
// @Tags Modules
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/modules [get]
func (h *ModuleHandler) List(c *gin.Context) {
	modules, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, modules, models.Notification{})
}

// Create godoc
// @Summary Add a module
// @Tags Modules
// @Accept json
// @Produce json
// @Param payload body dto.ModuleRequest true "Module payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/modules [post]
func (h *ModuleHandler) Create(c *gin.Context) {
	var req dto.ModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid module payload"))
		return
	}
	module, note, err := h.service.Create(c.Request.Context(), sessionID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusCreated, module, note)
}

// Update godoc
// @Summary Edit a module
// @Tags Modules
// @Accept json
// @Produce json
// @Param id path string true "Module ID"
// @Param payload body dto.ModuleRequest true "Module payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/modules/{id} [put]
func (h *ModuleHandler) Update(c *gin.Context) {
	var req dto.ModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid module payload"))
		return
	}
	module, note, err := h.service.Update(c.Request.Context(), sessionID(c), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, module, note)
}

// Delete godoc
// @Summary Delete a module
// @Tags Modules
// @Produce json
// @Param id path string true "Module ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /admin/modules/{id} [delete]
func (h *ModuleHandler) Delete(c *gin.Context) {
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))
	note, err := h.service.Delete(c.Request.Context(), sessionID(c), c.Param("id"), confirmed)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"id": c.Param("id")}, note)
}

// Move godoc
// @Summary Move one module to a new position
// @Tags Modules
// @Accept json
// @Produce json
// @Param payload body dto.MoveRequest true "Source and target index"
// @Success 200 {object} response.Envelope
// @Router /admin/modules/reorder [post]
func (h *ModuleHandler) Move(c *gin.Context) {
	var req dto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid move payload"))
		return
	}
	modules, note, err := h.service.Move(c.Request.Context(), sessionID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, modules, note)
}

// DragStart godoc
// @Summary Begin dragging a module
// @Tags Modules
// @Accept json
// @Produce json
// @Param payload body dto.DragRequest true "Index of the dragged module"
// @Success 200 {object} response.Envelope
// @Router /admin/modules/drag/start [post]
func (h *ModuleHandler) DragStart(c *gin.Context) {
	h.drag(c, h.service.DragStart)
}

// DragOver godoc
// @Summary Preview the dragged module at a new index
// @Tags Modules
// @Accept json
// @Produce json
// @Param payload body dto.DragRequest true "Index hovered over"
// @Success 200 {object} response.Envelope
// @Router /admin/modules/drag/over [post]
func (h *ModuleHandler) DragOver(c *gin.Context) {
	h.drag(c, h.service.DragOver)
}

// DragEnd godoc
// @Summary Drop the dragged module and save the order
// @Tags Modules
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /admin/modules/drag/end [post]
func (h *ModuleHandler) DragEnd(c *gin.Context) {
	state, note, err := h.service.DragEnd(c.Request.Context(), sessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, state, note)
}

// DragCancel godoc
// @Summary Abandon the current drag
// @Tags Modules
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/modules/drag/cancel [post]
func (h *ModuleHandler) DragCancel(c *gin.Context) {
	state, err := h.service.DragCancel(c.Request.Context(), sessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, state, models.Notification{})
}

func (h *ModuleHandler) drag(c *gin.Context, step func(context.Context, string, dto.DragRequest) (*dto.DragState, error)) {
	var req dto.DragRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid drag payload"))
		return
	}
	state, err := step(c.Request.Context(), sessionID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, http.StatusOK, state, models.Notification{})
}
