package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/Wekraft-001/admin-hub/internal/models"
)

// TemplateRepository manages certificate templates.
type TemplateRepository struct {
	db *templateTable
}

// NewTemplateRepository constructs the repository over the store.
func NewTemplateRepository(store *Store) *TemplateRepository {
	return &TemplateRepository{db: store.templates}
}

// List returns all templates in creation order.
func (r *TemplateRepository) List(_ context.Context) ([]models.CertificateTemplate, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.CertificateTemplate, len(r.db.rows))
	copy(out, r.db.rows)
	return out, nil
}

// FindByID returns the template with the given id.
func (r *TemplateRepository) FindByID(_ context.Context, id string) (*models.CertificateTemplate, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		found := r.db.rows[i]
		return &found, nil
	}
	return nil, ErrNotFound
}

// Create assigns the next id and appends the template. The id starts at
// len+1 and advances past any id already in use.
func (r *TemplateRepository) Create(_ context.Context, tpl *models.CertificateTemplate) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	next := len(r.db.rows) + 1
	for r.indexOf(strconv.Itoa(next)) >= 0 {
		next++
	}
	tpl.ID = strconv.Itoa(next)
	r.db.rows = append(r.db.rows, *tpl)
	return nil
}

// Update replaces the template with the same id.
func (r *TemplateRepository) Update(_ context.Context, tpl *models.CertificateTemplate) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	i := r.indexOf(tpl.ID)
	if i < 0 {
		return ErrNotFound
	}
	r.db.rows[i] = *tpl
	return nil
}

// Delete removes exactly the template with id.
func (r *TemplateRepository) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	rows := make([]models.CertificateTemplate, 0, len(r.db.rows)-1)
	rows = append(rows, r.db.rows[:i]...)
	rows = append(rows, r.db.rows[i+1:]...)
	r.db.rows = rows
	return nil
}

func (r *TemplateRepository) indexOf(id string) int {
	for i, t := range r.db.rows {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// CertificateRepository reads issued certificates.
type CertificateRepository struct {
	db *certificateTable
}

// NewCertificateRepository constructs the repository over the store.
func NewCertificateRepository(store *Store) *CertificateRepository {
	return &CertificateRepository{db: store.certificates}
}

// Search returns certificates whose learner name or certificate number contains query, ignoring case.
func (r *CertificateRepository) Search(_ context.Context, query string) ([]models.Certificate, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]models.Certificate, 0, len(r.db.rows))
	for _, c := range r.db.rows {
		if q == "" ||
			strings.Contains(strings.ToLower(c.LearnerName), q) ||
			strings.Contains(strings.ToLower(c.CertificateNumber), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

// FindByID returns the certificate with the given id.
func (r *CertificateRepository) FindByID(_ context.Context, id string) (*models.Certificate, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, c := range r.db.rows {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, ErrNotFound
}
