package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Wekraft-001/admin-hub/internal/models"
)

const memoryActivityCap = 1000

// MemoryActivityRepository keeps the most recent activity entries in memory.
type MemoryActivityRepository struct {
	mu      sync.RWMutex
	entries []models.ActivityEntry
	cap     int
}

// NewMemoryActivityRepository constructs an in-memory activity log.
func NewMemoryActivityRepository() *MemoryActivityRepository {
	return &MemoryActivityRepository{cap: memoryActivityCap}
}

// Create appends an entry, evicting the oldest once the cap is reached.
func (r *MemoryActivityRepository) Create(_ context.Context, entry *models.ActivityEntry) error {
	prepareActivity(entry)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	if over := len(r.entries) - r.cap; over > 0 {
		r.entries = append([]models.ActivityEntry(nil), r.entries[over:]...)
	}
	return nil
}

// ListRecent returns up to limit entries, newest first.
func (r *MemoryActivityRepository) ListRecent(_ context.Context, limit int) ([]models.ActivityEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 || limit > len(r.entries) {
		limit = len(r.entries)
	}
	out := make([]models.ActivityEntry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

// ActivityRepository persists activity entries in PostgreSQL.
type ActivityRepository struct {
	db *sqlx.DB
}

// NewActivityRepository constructs the Postgres activity log.
func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

const activitySchema = `CREATE TABLE IF NOT EXISTS activity_log (
	id UUID PRIMARY KEY,
	session_id TEXT NOT NULL DEFAULT '',
	action TEXT NOT NULL,
	resource TEXT NOT NULL,
	resource_id TEXT NOT NULL DEFAULT '',
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	variant TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`

// EnsureSchema creates the activity_log table when missing.
func (r *ActivityRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, activitySchema); err != nil {
		return fmt.Errorf("ensure activity schema: %w", err)
	}
	return nil
}

// Create inserts an activity entry.
func (r *ActivityRepository) Create(ctx context.Context, entry *models.ActivityEntry) error {
	prepareActivity(entry)
	const query = `INSERT INTO activity_log (id, session_id, action, resource, resource_id, title, description, variant, created_at) VALUES (:id, :session_id, :action, :resource, :resource_id, :title, :description, :variant, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("create activity entry: %w", err)
	}
	return nil
}

// ListRecent returns up to limit entries, newest first.
func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	const query = `SELECT id, session_id, action, resource, resource_id, title, description, variant, created_at FROM activity_log ORDER BY created_at DESC LIMIT $1`
	var entries []models.ActivityEntry
	if err := r.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("list activity entries: %w", err)
	}
	return entries, nil
}

func prepareActivity(entry *models.ActivityEntry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if entry.Variant == "" {
		entry.Variant = models.NotificationDefault
	}
}
