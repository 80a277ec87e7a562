package repository

import (
	"context"

	"github.com/Wekraft-001/admin-hub/internal/models"
)

// ModuleRepository manages the module working copy.
type ModuleRepository struct {
	db *moduleTable
}

// NewModuleRepository constructs the repository over the store.
func NewModuleRepository(store *Store) *ModuleRepository {
	return &ModuleRepository{db: store.modules}
}

// List returns modules in positional order.
func (r *ModuleRepository) List(_ context.Context) ([]models.Module, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.Module, len(r.db.rows))
	copy(out, r.db.rows)
	return out, nil
}

// Head returns at most n modules from the start of the list.
func (r *ModuleRepository) Head(_ context.Context, n int) ([]models.Module, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if n > len(r.db.rows) {
		n = len(r.db.rows)
	}
	out := make([]models.Module, n)
	copy(out, r.db.rows[:n])
	return out, nil
}

// FindByID returns the module with the given id.
func (r *ModuleRepository) FindByID(_ context.Context, id string) (*models.Module, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		found := r.db.rows[i]
		return &found, nil
	}
	return nil, ErrNotFound
}

// Create appends the module, setting Order to the new list length.
func (r *ModuleRepository) Create(_ context.Context, module *models.Module) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	module.Order = len(r.db.rows) + 1
	r.db.rows = append(r.db.rows, *module)
	return nil
}

// Update replaces the stored module with the same id, keeping its position.
func (r *ModuleRepository) Update(_ context.Context, module *models.Module) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	i := r.indexOf(module.ID)
	if i < 0 {
		return ErrNotFound
	}
	r.db.rows[i] = *module
	return nil
}

// Delete removes the module. Remaining Order values are left as they are.
func (r *ModuleRepository) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	rows := make([]models.Module, 0, len(r.db.rows)-1)
	rows = append(rows, r.db.rows[:i]...)
	rows = append(rows, r.db.rows[i+1:]...)
	r.db.rows = rows
	return nil
}

// Reorder rearranges modules to follow ids. ids must be a permutation of the
// current module ids, otherwise ErrOrderMismatch is returned and nothing changes.
func (r *ModuleRepository) Reorder(_ context.Context, ids []string) ([]models.Module, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if len(ids) != len(r.db.rows) {
		return nil, ErrOrderMismatch
	}
	byID := make(map[string]models.Module, len(r.db.rows))
	for _, m := range r.db.rows {
		byID[m.ID] = m
	}
	rows := make([]models.Module, 0, len(ids))
	for _, id := range ids {
		m, ok := byID[id]
		if !ok {
			return nil, ErrOrderMismatch
		}
		delete(byID, id)
		rows = append(rows, m)
	}
	r.db.rows = rows

	out := make([]models.Module, len(rows))
	copy(out, rows)
	return out, nil
}

func (r *ModuleRepository) indexOf(id string) int {
	for i, m := range r.db.rows {
		if m.ID == id {
			return i
		}
	}
	return -1
}
