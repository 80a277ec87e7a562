package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Wekraft-001/admin-hub/internal/dto"
	"github.com/Wekraft-001/admin-hub/internal/models"
	"github.com/Wekraft-001/admin-hub/internal/repository"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
)

type moduleRepository interface {
	List(ctx context.Context) ([]models.Module, error)
	FindByID(ctx context.Context, id string) (*models.Module, error)
	Create(ctx context.Context, module *models.Module) error
	Update(ctx context.Context, module *models.Module) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) ([]models.Module, error)
}

type dashboardInvalidator interface {
	InvalidateDashboard(ctx context.Context)
}

// dragSession is one administrator's in-progress drag. snapshot is the order
// at DragStart.
type dragSession struct {
	index    int
	snapshot []models.Module
}

// ModuleService manages course modules and their ordering.
type ModuleService struct {
	repo      moduleRepository
	cache     dashboardInvalidator
	activity  activityRecorder
	validator *validator.Validate
	logger    *zap.Logger

	mu    sync.Mutex
	drags map[string]*dragSession
}

// NewModuleService constructs the module service.
func NewModuleService(repo moduleRepository, cache dashboardInvalidator, activity activityRecorder, validate *validator.Validate, logger *zap.Logger) *ModuleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ModuleService{
		repo:      repo,
		cache:     cache,
		activity:  activity,
		validator: validate,
		logger:    logger,
		drags:     make(map[string]*dragSession),
	}
}

// List returns modules in positional order.
func (s *ModuleService) List(ctx context.Context) ([]models.Module, error) {
	modules, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list modules")
	}
	return modules, nil
}

// Create appends a module at the end of the course.
func (s *ModuleService) Create(ctx context.Context, sessionID string, req dto.ModuleRequest) (*models.Module, models.Notification, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, models.Notification{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid module payload")
	}
	moduleType := req.Type
	if moduleType == "" {
		moduleType = models.ModuleTypeText
	}
	module := &models.Module{
		ID:          "module-" + uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Type:        moduleType,
	}
	if err := s.repo.Create(ctx, module); err != nil {
		return nil, models.Notification{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create module")
	}

	note := models.Notify("Module Created", fmt.Sprintf("%s has been added successfully.", module.Title))
	s.afterMutation(ctx, noteActivity(sessionID, models.ActivityCreate, "module", module.ID, note))
	return module, note, nil
}

// Update replaces title, description, duration and type. Order, completion rate
// and unlock criteria are kept.
func (s *ModuleService) Update(ctx context.Context, sessionID, id string, req dto.ModuleRequest) (*models.Module, models.Notification, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, models.Notification{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid module payload")
	}
	module, err := s.find(ctx, id)
	if err != nil {
		return nil, models.Notification{}, err
	}
	module.Title = req.Title
	module.Description = req.Description
	module.Duration = req.Duration
	if req.Type != "" {
		module.Type = req.Type
	}
	if err := s.repo.Update(ctx, module); err != nil {
		return nil, models.Notification{}, s.mapRepoError(err, "failed to update module")
	}

	note := models.Notify("Module Updated", fmt.Sprintf("%s has been updated successfully.", module.Title))
	s.afterMutation(ctx, noteActivity(sessionID, models.ActivityUpdate, "module", module.ID, note))
	return module, note, nil
}

// Delete removes a module once confirmed. Remaining order fields are not renumbered.
func (s *ModuleService) Delete(ctx context.Context, sessionID, id string, confirmed bool) (models.Notification, error) {
	module, err := s.find(ctx, id)
	if err != nil {
		return models.Notification{}, err
	}
	if !confirmed {
		return models.Notification{}, appErrors.Clone(appErrors.ErrPreconditionFailed, "deleting a module requires confirm=true")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return models.Notification{}, s.mapRepoError(err, "failed to delete module")
	}

	note := models.Notify("Module Deleted", fmt.Sprintf("%s has been removed.", module.Title))
	s.afterMutation(ctx, noteActivity(sessionID, models.ActivityDelete, "module", id, note))
	return note, nil
}

// Move relocates the module at from to position to and commits immediately.
func (s *ModuleService) Move(ctx context.Context, sessionID string, req dto.MoveRequest) ([]models.Module, models.Notification, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, models.Notification{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid move payload")
	}
	modules, err := s.List(ctx)
	if err != nil {
		return nil, models.Notification{}, err
	}
	from, to := *req.From, *req.To
	if from >= len(modules) || to >= len(modules) {
		return nil, models.Notification{}, appErrors.Clone(appErrors.ErrValidation, "module index out of range")
	}
	return s.commit(ctx, sessionID, MoveItem(modules, from, to))
}

// DragStart remembers the dragged index and snapshots the current order so a
// cancelled drag can be rolled back.
func (s *ModuleService) DragStart(ctx context.Context, sessionID string, req dto.DragRequest) (*dto.DragState, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid drag payload")
	}
	modules, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	index := *req.Index
	if index >= len(modules) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "module index out of range")
	}

	s.mu.Lock()
	s.drags[sessionID] = &dragSession{index: index, snapshot: modules}
	s.mu.Unlock()

	return dragState(true, index, modules), nil
}

// DragOver moves the dragged module to index and writes the new order through
// at once. Without an active drag, or for the same index, nothing changes.
func (s *ModuleService) DragOver(ctx context.Context, sessionID string, req dto.DragRequest) (*dto.DragState, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid drag payload")
	}
	index := *req.Index

	s.mu.Lock()
	defer s.mu.Unlock()

	modules, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	drag, ok := s.drags[sessionID]
	if !ok {
		return dragState(false, -1, modules), nil
	}
	if index >= len(modules) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "module index out of range")
	}
	if drag.index >= len(modules) {
		return nil, appErrors.Clone(appErrors.ErrConflict, "modules changed while reordering; reload and try again")
	}
	if index == drag.index {
		return dragState(true, drag.index, modules), nil
	}

	modules, err = s.reorder(ctx, MoveItem(modules, drag.index, index))
	if err != nil {
		return nil, err
	}
	drag.index = index
	if s.cache != nil {
		s.cache.InvalidateDashboard(ctx)
	}
	return dragState(true, drag.index, modules), nil
}

// DragEnd forgets the dragged index. The order was already saved by DragOver.
func (s *ModuleService) DragEnd(ctx context.Context, sessionID string) (*dto.DragState, models.Notification, error) {
	s.mu.Lock()
	_, ok := s.drags[sessionID]
	delete(s.drags, sessionID)
	s.mu.Unlock()

	modules, err := s.List(ctx)
	if err != nil {
		return nil, models.Notification{}, err
	}
	note := orderSaved()
	if ok {
		record(ctx, s.activity, noteActivity(sessionID, models.ActivityReorder, "module", "", note))
	}
	return dragState(false, -1, modules), note, nil
}

// DragCancel restores the order captured at DragStart.
func (s *ModuleService) DragCancel(ctx context.Context, sessionID string) (*dto.DragState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drag, ok := s.drags[sessionID]
	delete(s.drags, sessionID)
	if !ok {
		modules, err := s.List(ctx)
		if err != nil {
			return nil, err
		}
		return dragState(false, -1, modules), nil
	}

	modules, err := s.reorder(ctx, drag.snapshot)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.InvalidateDashboard(ctx)
	}
	return dragState(false, -1, modules), nil
}

// ClearDrags forgets every in-progress drag.
func (s *ModuleService) ClearDrags() {
	s.mu.Lock()
	s.drags = make(map[string]*dragSession)
	s.mu.Unlock()
}

func (s *ModuleService) commit(ctx context.Context, sessionID string, ordered []models.Module) ([]models.Module, models.Notification, error) {
	modules, err := s.reorder(ctx, ordered)
	if err != nil {
		return nil, models.Notification{}, err
	}

	note := orderSaved()
	s.afterMutation(ctx, noteActivity(sessionID, models.ActivityReorder, "module", "", note))
	return modules, note, nil
}

func (s *ModuleService) reorder(ctx context.Context, ordered []models.Module) ([]models.Module, error) {
	ids := make([]string, 0, len(ordered))
	for _, m := range ordered {
		ids = append(ids, m.ID)
	}
	modules, err := s.repo.Reorder(ctx, ids)
	if err != nil {
		if errors.Is(err, repository.ErrOrderMismatch) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "modules changed while reordering; reload and try again")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save module order")
	}
	return modules, nil
}

func (s *ModuleService) find(ctx context.Context, id string) (*models.Module, error) {
	module, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(err, "failed to load module")
	}
	return module, nil
}

func (s *ModuleService) mapRepoError(err error, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return appErrors.Clone(appErrors.ErrNotFound, "module not found")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

func (s *ModuleService) afterMutation(ctx context.Context, entry models.ActivityEntry) {
	if s.cache != nil {
		s.cache.InvalidateDashboard(ctx)
	}
	record(ctx, s.activity, entry)
}

func orderSaved() models.Notification {
	return models.Notify("Order Updated", "Module order has been saved.")
}

func dragState(dragging bool, index int, modules []models.Module) *dto.DragState {
	state := &dto.DragState{Dragging: dragging, Modules: modules}
	if dragging {
		i := index
		state.Index = &i
	}
	return state
}

// MoveItem returns a copy of items with the element at from removed and
// reinserted at to. Indices must be within range.
func MoveItem[T any](items []T, from, to int) []T {
	out := make([]T, 0, len(items))
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)
	moved := items[from]
	out = append(out[:to], append([]T{moved}, out[to:]...)...)
	return out
}
