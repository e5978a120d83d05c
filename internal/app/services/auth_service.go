package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yosefd/rollbook/internal/app/models"
	"github.com/yosefd/rollbook/internal/app/models/dto"
	"github.com/yosefd/rollbook/internal/app/repositories"
	"github.com/yosefd/rollbook/internal/config"
	"github.com/yosefd/rollbook/internal/pkg/apperrors"
	"github.com/yosefd/rollbook/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles staff accounts and authentication. The bootstrap
// system admin is matched against configured credentials and never
// stored in the users table.
type AuthService struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
	adminEmail string
	adminPass  string
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService, cfg *config.Config, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		adminEmail: strings.ToLower(cfg.Admin.Email),
		adminPass:  cfg.Admin.Password,
		logger:     logger,
	}
}

// CreateUser registers a staff account
func (s *AuthService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid role %q", req.Role))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.EmailExists(ctx, email, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		Password:     string(hashedPassword),
		Role:         req.Role,
		SchoolID:     req.SchoolID,
		DepartmentID: req.DepartmentID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("Staff account created")
	return user, nil
}

// Login authenticates a staff account and issues a token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.LoginResponse{
		Success:   true,
		Token:     token,
		ExpiresIn: expiresIn,
		User: dto.LoginUser{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     user.Role,
		},
	}, nil
}

// AdminLogin authenticates the bootstrap system admin against configured
// credentials and issues a token with the admin role.
func (s *AuthService) AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.adminEmail == "" || s.adminPass == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	emailOK := subtle.ConstantTimeCompare([]byte(strings.ToLower(req.Email)), []byte(s.adminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.adminPass)) == 1
	if !emailOK || !passOK {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(0, s.adminEmail, string(models.RoleAdmin))
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.LoginResponse{
		Success:   true,
		Token:     token,
		ExpiresIn: expiresIn,
		User: dto.LoginUser{
			ID:       0,
			Email:    s.adminEmail,
			FullName: "System Admin",
			Role:     models.RoleAdmin,
		},
	}, nil
}

// GetProfile retrieves the authenticated user's account
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// GetAllUsers retrieves all staff accounts
func (s *AuthService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// UpdateUser updates a staff account's profile fields
func (s *AuthService) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		user.FullName = strings.TrimSpace(req.FullName)
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		exists, err := s.userRepo.EmailExists(ctx, email, id)
		if err != nil {
			return nil, fmt.Errorf("error checking email: %w", err)
		}
		if exists {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		user.Email = email
	}
	if req.Role != "" {
		if !req.Role.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid role %q", req.Role))
		}
		user.Role = req.Role
	}
	if req.SchoolID != nil {
		user.SchoolID = req.SchoolID
	}
	if req.DepartmentID != nil {
		user.DepartmentID = req.DepartmentID
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdatePassword replaces a staff account's password
func (s *AuthService) UpdatePassword(ctx context.Context, id int64, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, id, string(hashedPassword))
}
