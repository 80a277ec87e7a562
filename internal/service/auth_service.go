package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Wekraft-001/admin-hub/internal/dto"
	"github.com/Wekraft-001/admin-hub/internal/models"
	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
)

type sessionStore interface {
	Put(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// AuthConfig defines configuration for the session gate.
type AuthConfig struct {
	Secret     string
	LoginDelay time.Duration
}

// AuthService owns the admin session gate.
type AuthService struct {
	store     sessionStore
	activity  activityRecorder
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

var (
	adminHashOnce sync.Once
	adminHash     []byte
	adminHashErr  error
)

func adminPasswordHash() ([]byte, error) {
	adminHashOnce.Do(func() {
		adminHash, adminHashErr = bcrypt.GenerateFromPassword([]byte(models.AdminPassword), bcrypt.DefaultCost)
	})
	return adminHash, adminHashErr
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(store sessionStore, activity activityRecorder, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.LoginDelay < 0 {
		config.LoginDelay = 0
	}
	return &AuthService{store: store, activity: activity, metrics: metrics, validator: validate, logger: logger, config: config}
}

// Login waits the configured delay, checks the fixed admin credentials and opens a session.
// Wrong credentials leave the session store untouched.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, models.Notification, error) {
	failed := models.Warn("Authentication failed", "Invalid email or password.")
	if err := s.validator.Struct(req); err != nil {
		return nil, failed, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "email and password are required")
	}

	if s.config.LoginDelay > 0 {
		timer := time.NewTimer(s.config.LoginDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, models.Notification{}, ctx.Err()
		case <-timer.C:
		}
	}

	ok, err := s.checkCredentials(req.Email, req.Password)
	if err != nil {
		return nil, failed, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify credentials")
	}
	if !ok {
		s.metrics.RecordLogin(false)
		record(ctx, s.activity, noteActivity("", models.ActivityLoginFailed, "session", "", failed))
		return nil, failed, appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid email or password.")
	}

	sessionID := uuid.NewString()
	if err := s.store.Put(ctx, flagKey(sessionID), models.AuthFlagValue); err != nil {
		return nil, failed, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session")
	}
	token, err := s.signToken(sessionID)
	if err != nil {
		_ = s.store.Delete(ctx, flagKey(sessionID))
		return nil, failed, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign session token")
	}

	s.metrics.RecordLogin(true)
	note := models.Notify("Welcome back, Admin", "Let's make learning impactful.")
	record(ctx, s.activity, noteActivity(sessionID, models.ActivityLogin, "session", sessionID, note))
	s.logger.Info("admin signed in", zap.String("session_id", sessionID))

	return &dto.LoginResponse{Token: token, SessionID: sessionID, Authenticated: true}, note, nil
}

// Authenticate resolves a token to its session id. Only a stored flag equal to
// "true" counts as signed in.
func (s *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return "", err
	}
	value, err := s.store.Get(ctx, flagKey(claims.SessionID))
	if err != nil {
		if errors.Is(err, appErrors.ErrSessionNotFound) {
			return "", appErrors.Clone(appErrors.ErrUnauthorized, "session is not authenticated")
		}
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read session")
	}
	if value != models.AuthFlagValue {
		return "", appErrors.Clone(appErrors.ErrUnauthorized, "session is not authenticated")
	}
	return claims.SessionID, nil
}

// IsAuthenticated reports whether token belongs to a signed-in session.
func (s *AuthService) IsAuthenticated(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	_, err := s.Authenticate(ctx, token)
	return err == nil
}

// Logout clears the session flag. Unknown, malformed or already cleared tokens are not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := s.parseToken(token)
	if err != nil {
		return nil
	}
	if err := s.store.Delete(ctx, flagKey(claims.SessionID)); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear session")
	}
	record(ctx, s.activity, noteActivity(claims.SessionID, models.ActivityLogout, "session", claims.SessionID, models.Notify("Signed out", "")))
	return nil
}

func (s *AuthService) checkCredentials(email, password string) (bool, error) {
	hash, err := adminPasswordHash()
	if err != nil {
		return false, err
	}
	// the hash is checked regardless of the email
	pwErr := bcrypt.CompareHashAndPassword(hash, []byte(password))
	if pwErr != nil && !errors.Is(pwErr, bcrypt.ErrMismatchedHashAndPassword) {
		return false, pwErr
	}
	return email == models.AdminEmail && pwErr == nil, nil
}

func (s *AuthService) signToken(sessionID string) (string, error) {
	issuedAt := time.Now().UTC()
	claims := &models.SessionClaims{
		SessionID: sessionID,
		Email:     models.AdminEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       sessionID,
			Subject:  models.AdminEmail,
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}

func (s *AuthService) parseToken(tokenString string) (*models.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid session token")
	}
	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid session token")
	}
	return claims, nil
}

func flagKey(sessionID string) string {
	return models.AuthFlagKey + ":" + sessionID
}
