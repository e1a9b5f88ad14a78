package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"filedrive/internal/auth"
	"filedrive/internal/config"
	"filedrive/internal/domain"
	"filedrive/internal/domain/models"
	"filedrive/internal/domain/repositories"
	"filedrive/internal/domain/services"
)

var (
	usernameChars  = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	hasLowercase   = regexp.MustCompile(`[a-z]`)
	hasUppercase   = regexp.MustCompile(`[A-Z]`)
	hasDigit       = regexp.MustCompile(`[0-9]`)
	hasSpecialChar = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

type authService struct {
	userRepo repositories.UserRepository
	tokens   auth.TokenManager
	logger   *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	tokens auth.TokenManager,
	logger *slog.Logger,
) services.AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a new account. No token is issued; users log in after
// registering.
func (s *authService) Register(ctx context.Context, req *services.RegisterRequest) (*models.User, error) {
	if err := s.validateRegisterRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	existing, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.ConflictError{
			Message:      "Username already exists",
			ResourceType: "user",
			ResourceID:   existing.ID,
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "id", user.ID, "username", user.Username)

	return user, nil
}

// Login verifies credentials and issues a signed token.
func (s *authService) Login(ctx context.Context, req *services.LoginRequest) (*services.LoginResult, error) {
	err := validation.Errors{
		"username": validation.Validate(req.Username, validation.Required),
		"password": validation.Validate(req.Password, validation.Required),
	}.Filter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same answer as a bad password so usernames are not probeable.
			return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user logged in", "id", user.ID, "username", user.Username)

	return &services.LoginResult{User: user, Token: token}, nil
}

// GetUser retrieves the account behind an authenticated request.
func (s *authService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// validateRegisterRequest applies the username and password policy.
func (s *authService) validateRegisterRequest(req *services.RegisterRequest) error {
	return validation.Errors{
		"username": validation.Validate(req.Username,
			validation.Required,
			validation.Length(config.MinUsernameLength, config.MaxUsernameLength),
			validation.Match(usernameChars).Error("username can only contain letters, numbers, and underscores"),
		),
		"password": validation.Validate(req.Password,
			validation.Required,
			validation.Length(config.MinPasswordLength, config.MaxPasswordLength),
			validation.Match(hasLowercase).Error("password must contain at least one lowercase letter"),
			validation.Match(hasUppercase).Error("password must contain at least one uppercase letter"),
			validation.Match(hasDigit).Error("password must contain at least one number"),
			validation.Match(hasSpecialChar).Error("password must contain at least one special character"),
		),
	}.Filter()
}
