package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Wekraft-001/admin-hub/internal/dto"
	"github.com/Wekraft-001/admin-hub/internal/models"
	"github.com/Wekraft-001/admin-hub/internal/repository"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
)

type learnerRepository interface {
	List(ctx context.Context, filter models.LearnerFilter) ([]models.Learner, error)
	FindByID(ctx context.Context, id string) (*models.Learner, error)
}

// LearnerService serves the learner roster.
type LearnerService struct {
	repo      learnerRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLearnerService constructs the learner service.
func NewLearnerService(repo learnerRepository, validate *validator.Validate, logger *zap.Logger) *LearnerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LearnerService{repo: repo, validator: validate, logger: logger}
}

// List returns the learners matching every supplied filter, recomputed from the full roster.
func (s *LearnerService) List(ctx context.Context, query dto.LearnerListQuery) ([]dto.LearnerView, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid learner filter")
	}
	learners, err := s.repo.List(ctx, query.Filter())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list learners")
	}
	views := make([]dto.LearnerView, 0, len(learners))
	for _, l := range learners {
		views = append(views, dto.NewLearnerView(l))
	}
	return views, nil
}

// Get returns a single learner.
func (s *LearnerService) Get(ctx context.Context, id string) (*dto.LearnerView, error) {
	learner, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "learner not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load learner")
	}
	view := dto.NewLearnerView(*learner)
	return &view, nil
}
