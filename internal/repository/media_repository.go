package repository

import (
	"context"

	"github.com/Wekraft-001/admin-hub/internal/models"
)

// MediaRepository manages the media library.
type MediaRepository struct {
	db *mediaTable
}

// NewMediaRepository constructs the repository over the store.
func NewMediaRepository(store *Store) *MediaRepository {
	return &MediaRepository{db: store.media}
}

// List returns library entries matching filter.
func (r *MediaRepository) List(_ context.Context, filter models.MediaFilter) ([]models.MediaFile, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.MediaFile, 0, len(r.db.rows))
	for _, m := range r.db.rows {
		if filter.Matches(m) {
			out = append(out, cloneMedia(m))
		}
	}
	return out, nil
}

// FindByID returns the entry with the given id.
func (r *MediaRepository) FindByID(_ context.Context, id string) (*models.MediaFile, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, m := range r.db.rows {
		if m.ID == id {
			found := cloneMedia(m)
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes the entry with id.
func (r *MediaRepository) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, m := range r.db.rows {
		if m.ID != id {
			continue
		}
		rows := make([]models.MediaFile, 0, len(r.db.rows)-1)
		rows = append(rows, r.db.rows[:i]...)
		rows = append(rows, r.db.rows[i+1:]...)
		r.db.rows = rows
		return nil
	}
	return ErrNotFound
}

func cloneMedia(m models.MediaFile) models.MediaFile {
	if m.ThumbnailURL != nil {
		thumb := *m.ThumbnailURL
		m.ThumbnailURL = &thumb
	}
	m.Tags = append([]string{}, m.Tags...)
	m.UsedInModules = append([]string{}, m.UsedInModules...)
	return m
}
