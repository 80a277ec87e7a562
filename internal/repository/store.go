package repository

import (
	"errors"
	"sync"

	"github.com/Wekraft-001/admin-hub/internal/models"
)

// ErrNotFound is returned by in-memory repositories for unknown ids.
var ErrNotFound = errors.New("record not found")

// ErrOrderMismatch is returned when a new module order is not a permutation of the current ids.
var ErrOrderMismatch = errors.New("module order does not match current modules")

type learnerTable struct {
	mu   sync.RWMutex
	rows []models.Learner
}

type moduleTable struct {
	mu   sync.RWMutex
	rows []models.Module
}

type templateTable struct {
	mu   sync.RWMutex
	rows []models.CertificateTemplate
}

type certificateTable struct {
	mu   sync.RWMutex
	rows []models.Certificate
}

type mediaTable struct {
	mu   sync.RWMutex
	rows []models.MediaFile
}

// Store is the process-local working copy of every admin collection. It is
// seeded on construction and on Reset; writes never touch the seed itself.
type Store struct {
	learners     *learnerTable
	modules      *moduleTable
	templates    *templateTable
	certificates *certificateTable
	media        *mediaTable
}

// NewStore returns a freshly seeded store.
func NewStore() *Store {
	s := &Store{
		learners:     &learnerTable{},
		modules:      &moduleTable{},
		templates:    &templateTable{},
		certificates: &certificateTable{},
		media:        &mediaTable{},
	}
	s.Reset()
	return s
}

// Reset discards every change and restores the seed data.
func (s *Store) Reset() {
	s.learners.mu.Lock()
	s.learners.rows = seedLearners()
	s.learners.mu.Unlock()

	s.modules.mu.Lock()
	s.modules.rows = seedModules()
	s.modules.mu.Unlock()

	s.templates.mu.Lock()
	s.templates.rows = seedTemplates()
	s.templates.mu.Unlock()

	s.certificates.mu.Lock()
	s.certificates.rows = seedCertificates()
	s.certificates.mu.Unlock()

	s.media.mu.Lock()
	s.media.rows = seedMedia()
	s.media.mu.Unlock()
}
