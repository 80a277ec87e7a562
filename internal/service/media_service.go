package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Wekraft-001/admin-hub/internal/dto"
	"github.com/Wekraft-001/admin-hub/internal/models"
	"github.com/Wekraft-001/admin-hub/internal/repository"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
)

type mediaRepository interface {
	List(ctx context.Context, filter models.MediaFilter) ([]models.MediaFile, error)
	FindByID(ctx context.Context, id string) (*models.MediaFile, error)
	Delete(ctx context.Context, id string) error
}

// MediaConfig bounds simulated uploads.
type MediaConfig struct {
	MaxFileSize  int64
	AllowedMIMEs []string
}

// MediaService serves the media library.
type MediaService struct {
	repo      mediaRepository
	activity  activityRecorder
	validator *validator.Validate
	logger    *zap.Logger
	cfg       MediaConfig
	allowed   map[string]struct{}
}

// NewMediaService constructs the media service.
func NewMediaService(repo mediaRepository, activity activityRecorder, validate *validator.Validate, logger *zap.Logger, cfg MediaConfig) *MediaService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = 100 * 1024 * 1024
	}
	allowed := make(map[string]struct{}, len(cfg.AllowedMIMEs))
	for _, m := range cfg.AllowedMIMEs {
		allowed[strings.ToLower(strings.TrimSpace(m))] = struct{}{}
	}
	return &MediaService{repo: repo, activity: activity, validator: validate, logger: logger, cfg: cfg, allowed: allowed}
}

// List returns files on the selected tab whose name or tags contain the query.
func (s *MediaService) List(ctx context.Context, query dto.MediaListQuery) ([]dto.MediaView, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid media filter")
	}
	files, err := s.repo.List(ctx, models.MediaFilter{Tab: query.Tab, Query: query.Query})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list media")
	}
	views := make([]dto.MediaView, 0, len(files))
	for _, f := range files {
		views = append(views, dto.MediaView{MediaFile: f, SizeText: models.FormatFileSize(f.Size)})
	}
	return views, nil
}

// Stats summarises the whole library.
func (s *MediaService) Stats(ctx context.Context) (*models.MediaStats, error) {
	files, err := s.repo.List(ctx, models.MediaFilter{})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load media")
	}
	stats := &models.MediaStats{TotalFiles: len(files)}
	for _, f := range files {
		switch f.Type {
		case models.MediaTypeImage:
			stats.Images++
		case models.MediaTypeVideo:
			stats.Videos++
		case models.MediaTypeDocument:
			stats.Documents++
		}
		stats.TotalSize += f.Size
	}
	stats.TotalSizeText = models.FormatFileSize(stats.TotalSize)
	return stats, nil
}

// Delete removes a file from the library.
func (s *MediaService) Delete(ctx context.Context, sessionID, id string) (models.Notification, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return models.Notification{}, mediaError(err, "failed to delete media file")
	}
	note := models.Notify("File Deleted", "The file has been removed from the media library.")
	record(ctx, s.activity, noteActivity(sessionID, models.ActivityDelete, "media", id, note))
	return note, nil
}

// Upload validates the declared files and acknowledges them. Nothing is stored.
func (s *MediaService) Upload(ctx context.Context, sessionID string, req dto.UploadRequest) (*dto.UploadResponse, models.Notification, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, models.Notification{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid upload payload")
	}
	for _, f := range req.Files {
		if _, ok := s.allowed[strings.ToLower(f.MimeType)]; !ok {
			return nil, models.Notification{}, appErrors.Clone(appErrors.ErrUnsupportedMedia, fmt.Sprintf("%s: %s is not an accepted file type", f.Name, f.MimeType))
		}
		if f.Size > s.cfg.MaxFileSize {
			return nil, models.Notification{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%s exceeds the maximum size of %s", f.Name, models.FormatFileSize(s.cfg.MaxFileSize)))
		}
	}

	note := models.Notify("Upload Started", "Your files are being uploaded.")
	record(ctx, s.activity, noteActivity(sessionID, models.ActivityUpload, "media", "", note))
	return &dto.UploadResponse{Accepted: len(req.Files), Files: req.Files}, note, nil
}

// CopyURL returns the file URL for the clipboard.
func (s *MediaService) CopyURL(ctx context.Context, sessionID, id string) (*dto.CopyURLResponse, models.Notification, error) {
	file, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, models.Notification{}, mediaError(err, "failed to load media file")
	}
	note := models.Notify("URL Copied", "File URL has been copied to clipboard.")
	record(ctx, s.activity, noteActivity(sessionID, models.ActivityCopyURL, "media", id, note))
	return &dto.CopyURLResponse{ID: file.ID, URL: file.URL}, note, nil
}

func mediaError(err error, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return appErrors.Clone(appErrors.ErrNotFound, "media file not found")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}
