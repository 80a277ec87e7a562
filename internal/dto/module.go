package dto

import "github.com/Wekraft-001/admin-hub/internal/models"

// ModuleRequest is the create/edit form for a module.
type ModuleRequest struct {
	Title       string            `json:"title" validate:"required,max=200"`
	Description string            `json:"description" validate:"max=2000"`
	Duration    string            `json:"duration" validate:"max=50"`
	Type        models.ModuleType `json:"type" validate:"omitempty,oneof=text video quiz"`
}

// MoveRequest relocates the module at From to position To in one step.
type MoveRequest struct {
	From *int `json:"from" validate:"required,min=0"`
	To   *int `json:"to" validate:"required,min=0"`
}

// DragRequest carries the list index a drag event refers to.
type DragRequest struct {
	Index *int `json:"index" validate:"required,min=0"`
}

// DragState is the response to drag lifecycle events.
type DragState struct {
	Dragging bool            `json:"dragging"`
	Index    *int            `json:"index,omitempty"`
	Modules  []models.Module `json:"modules"`
}
