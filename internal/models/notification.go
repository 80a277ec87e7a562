package models

// NotificationVariant selects the toast style shown to the administrator.
type NotificationVariant string

const (
	NotificationDefault     NotificationVariant = "default"
	NotificationDestructive NotificationVariant = "destructive"
)

// Notification is the user-facing confirmation of an operation.
type Notification struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Variant     NotificationVariant `json:"variant"`
}

// Notify builds a default-variant notification.
func Notify(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: NotificationDefault}
}

// Warn builds a destructive-variant notification.
func Warn(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: NotificationDestructive}
}
