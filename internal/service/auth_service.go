package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/pet-adoption/internal/auth"
	"github.com/spec-kit/pet-adoption/internal/domain"
	"github.com/spec-kit/pet-adoption/internal/repository"
	apperrors "github.com/spec-kit/pet-adoption/pkg/util"
)

// InvalidCredentialsMessage is the single message for every failed login.
const InvalidCredentialsMessage = "invalid email or password"

// LoginResult is what a successful login hands back to the transport.
type LoginResult struct {
	Responsible *domain.Responsible
	Token       string
	ExpiresAt   time.Time
}

// AuthService coordinates the login flow.
type AuthService struct {
	responsibles repository.ResponsibleRepository
	tokens       *auth.TokenManager
	logger       *zap.Logger
	dummyHash    string
}

// NewAuthService builds the service. The dummy hash is computed once at the
// configured cost so unknown emails spend the same bcrypt time as real ones.
func NewAuthService(responsibles repository.ResponsibleRepository, tokens *auth.TokenManager, bcryptCost int, logger *zap.Logger) (*AuthService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	dummy, err := auth.HashPassword("pet-adoption-dummy-password", bcryptCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		responsibles: responsibles,
		tokens:       tokens,
		logger:       logger,
		dummyHash:    dummy,
	}, nil
}

// Login authenticates a responsible and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password are required", nil)
	}

	responsible, err := s.responsibles.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		_ = auth.ComparePassword(s.dummyHash, password)
		return nil, apperrors.NewUnauthorized(InvalidCredentialsMessage)
	}
	if err := auth.ComparePassword(responsible.PasswordHash, password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Warn("stored password hash unreadable", zap.String("responsible_id", responsible.ID), zap.Error(err))
		}
		return nil, apperrors.NewUnauthorized(InvalidCredentialsMessage)
	}

	token, expiresAt, err := s.tokens.GenerateToken(domain.Identity{
		SubjectID: responsible.ID,
		Email:     responsible.Email,
		Role:      responsible.Type,
	})
	if err != nil {
		if errors.Is(err, auth.ErrMissingSecret) {
			return nil, apperrors.NewConfigurationError(err)
		}
		return nil, err
	}

	s.logger.Info("responsible logged in", zap.String("responsible_id", responsible.ID))
	return &LoginResult{Responsible: responsible, Token: token, ExpiresAt: expiresAt}, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
