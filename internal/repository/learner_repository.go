package repository

import (
	"context"

	"github.com/Wekraft-001/admin-hub/internal/models"
)

// LearnerRepository reads the learner roster.
type LearnerRepository struct {
	db *learnerTable
}

// NewLearnerRepository constructs the repository over the store.
func NewLearnerRepository(store *Store) *LearnerRepository {
	return &LearnerRepository{db: store.learners}
}

// List returns learners matching filter in roster order.
func (r *LearnerRepository) List(_ context.Context, filter models.LearnerFilter) ([]models.Learner, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.Learner, 0, len(r.db.rows))
	for _, l := range r.db.rows {
		if filter.Matches(l) {
			out = append(out, l)
		}
	}
	return out, nil
}

// Head returns at most n learners from the start of the roster.
func (r *LearnerRepository) Head(_ context.Context, n int) ([]models.Learner, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if n > len(r.db.rows) {
		n = len(r.db.rows)
	}
	out := make([]models.Learner, n)
	copy(out, r.db.rows[:n])
	return out, nil
}

// FindByID returns the learner with the given id.
func (r *LearnerRepository) FindByID(_ context.Context, id string) (*models.Learner, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, l := range r.db.rows {
		if l.ID == id {
			found := l
			return &found, nil
		}
	}
	return nil, ErrNotFound
}
