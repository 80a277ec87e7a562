package models

// ModuleType enumerates content kinds.
type ModuleType string

const (
	ModuleTypeText  ModuleType = "text"
	ModuleTypeVideo ModuleType = "video"
	ModuleTypeQuiz  ModuleType = "quiz"
)

// Module is a unit of course content. Slice position is the authoritative
// order; Order is informational and is not renumbered after deletes or moves.
type Module struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Order          int        `json:"order"`
	Type           ModuleType `json:"type"`
	Duration       string     `json:"duration"`
	CompletionRate int        `json:"completionRate"`
	UnlockCriteria *string    `json:"unlockCriteria,omitempty"`
}
