package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-directory/internal/auth"
	"github.com/spec-kit/employee-directory/internal/config"
	"github.com/spec-kit/employee-directory/internal/domain"
	"github.com/spec-kit/employee-directory/internal/events"
	"github.com/spec-kit/employee-directory/internal/repository"
	apperrors "github.com/spec-kit/employee-directory/pkg/util"
)

// AuthService owns the session state machine: anonymous to visitor via
// self-registration, anonymous (or any role) to admin via login, any role
// back to anonymous via logout.
type AuthService struct {
	users      repository.UserRepository
	visitors   repository.VisitorLogRepository
	sessions   auth.SessionStore
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.AuthConfig
}

// AuthDependencies encapsulates collaborator requirements for auth service.
type AuthDependencies struct {
	UserRepo       repository.UserRepository
	VisitorLogRepo repository.VisitorLogRepository
	Sessions       auth.SessionStore
	Dispatcher     events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		visitors:   deps.VisitorLogRepo,
		sessions:   deps.Sessions,
		tokens:     auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL()),
		dispatcher: deps.Dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterVisitor records the visit and opens a visitor session. It always
// succeeds given non-empty name, email, and phone.
func (s *AuthService) RegisterVisitor(ctx context.Context, name, email, phone string) (*domain.Session, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if name == "" || email == "" || phone == "" {
		return nil, "", apperrors.NewValidationError("name, email, phone required", nil)
	}

	entry := &domain.VisitorLogEntry{Name: name, Email: email, Phone: phone}
	if err := s.visitors.Append(ctx, entry); err != nil {
		s.logger.Error("append visitor log", zap.Error(err))
		return nil, "", apperrors.NewInternalError(err)
	}

	session, token, err := s.openSession(ctx, domain.RoleVisitor, name)
	if err != nil {
		return nil, "", err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:      events.EventVisitorRegistered,
			Actor:     events.Actor{Role: domain.RoleVisitor, Name: name},
			Timestamp: time.Now().UTC(),
			Payload:   events.VisitorRegisteredPayload{Name: name, Email: email},
		})
	}
	return session, token, nil
}

// Login authenticates against the configured credential source and opens a
// session with the derived role. In static mode the email must match the
// configured admin identity exactly and the secret is bcrypt-compared; in
// table mode the user is looked up by case-insensitive email plus phone and
// the role follows the stored admin flag.
func (s *AuthService) Login(ctx context.Context, email, password, phone string) (*domain.Session, string, error) {
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if email == "" {
		return nil, "", apperrors.NewValidationError("email required", nil)
	}

	switch s.cfg.Mode {
	case config.AuthModeStatic:
		if password == "" {
			return nil, "", apperrors.NewValidationError("password required", nil)
		}
		if s.cfg.AdminPasswordHash == "" || email != s.cfg.AdminEmail {
			return nil, "", apperrors.NewUnauthorized("invalid credentials")
		}
		if err := auth.ComparePassword(s.cfg.AdminPasswordHash, password); err != nil {
			return nil, "", apperrors.NewUnauthorized("invalid credentials")
		}
		return s.openSession(ctx, domain.RoleAdmin, s.cfg.AdminEmail)

	case config.AuthModeTable:
		if phone == "" {
			return nil, "", apperrors.NewValidationError("phone required", nil)
		}
		user, err := s.users.GetByEmailAndPhone(ctx, email, phone)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, "", apperrors.NewUnauthorized("invalid credentials")
			}
			s.logger.Error("lookup user", zap.Error(err))
			return nil, "", apperrors.NewInternalError(err)
		}
		role := domain.RoleVisitor
		if user.Admin {
			role = domain.RoleAdmin
		}
		return s.openSession(ctx, role, user.Name)

	default:
		return nil, "", apperrors.NewInternalError(errors.New("unknown auth mode"))
	}
}

// Logout invalidates the session unconditionally.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Error("delete session", zap.Error(err))
		return apperrors.NewInternalError(err)
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

func (s *AuthService) openSession(ctx context.Context, role domain.Role, name string) (*domain.Session, string, error) {
	session, err := s.sessions.Create(ctx, role, name)
	if err != nil {
		s.logger.Error("create session", zap.Error(err))
		return nil, "", apperrors.NewInternalError(err)
	}

	token, _, err := s.tokens.GenerateToken(session.ID)
	if err != nil {
		return nil, "", apperrors.NewInternalError(err)
	}
	return session, token, nil
}
