package models

import "time"

// Activity actions.
const (
	ActivityLogin       = "LOGIN"
	ActivityLoginFailed = "LOGIN_FAILED"
	ActivityLogout      = "LOGOUT"
	ActivityCreate      = "CREATE"
	ActivityUpdate      = "UPDATE"
	ActivityDelete      = "DELETE"
	ActivityReorder     = "REORDER"
	ActivityDownload    = "DOWNLOAD"
	ActivityUpload      = "UPLOAD"
	ActivityCopyURL     = "COPY_URL"
	ActivityExport      = "EXPORT"
	ActivityReset       = "RESET"
)

// ActivityEntry is one recorded notification in the admin activity trail.
type ActivityEntry struct {
	ID          string              `db:"id" json:"id"`
	SessionID   string              `db:"session_id" json:"sessionId,omitempty"`
	Action      string              `db:"action" json:"action"`
	Resource    string              `db:"resource" json:"resource"`
	ResourceID  string              `db:"resource_id" json:"resourceId,omitempty"`
	Title       string              `db:"title" json:"title"`
	Description string              `db:"description" json:"description,omitempty"`
	Variant     NotificationVariant `db:"variant" json:"variant"`
	CreatedAt   time.Time           `db:"created_at" json:"createdAt"`
}
