package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ethos-training/ethos/internal/app/models"
	"github.com/ethos-training/ethos/internal/app/models/dto"
	"github.com/ethos-training/ethos/internal/app/repositories"
	"github.com/ethos-training/ethos/internal/pkg/apperrors"
	"github.com/ethos-training/ethos/internal/pkg/auth"
	"github.com/ethos-training/ethos/internal/pkg/helpers"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo     *repositories.UserRepository
	jwtService   *auth.JWTService
	bcryptRounds int
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	jwtService *auth.JWTService,
	bcryptRounds int,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		bcryptRounds: bcryptRounds,
		logger:       logger,
	}
}

// Register creates a new employee account. Duplicate email or employee ID
// surface as conflicts.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	hashed, err := auth.HashPassword(req.Password, s.bcryptRounds)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:      req.Email,
		Password:   hashed,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Role:       models.RoleEmployee, // self-registration never grants admin
		Department: req.Department,
		EmployeeID: req.EmployeeID,
		IsActive:   true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", user.Email).Int64("userId", user.ID).Msg("User registered")
	return user, nil
}

// Login verifies credentials and issues an access token. Unknown emails and
// wrong passwords both collapse to invalid credentials; inactive accounts
// are rejected separately.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountInactive
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	// Best-effort, off the response path
	go func() {
		if err := s.userRepo.UpdateLastLogin(context.Background(), user.ID); err != nil {
			s.logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to update last login")
		}
	}()

	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      dto.FromUser(user),
	}, nil
}

// ListUsers returns a page of user accounts for the admin dashboard.
func (s *AuthService) ListUsers(ctx context.Context, page, size int) ([]*models.User, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting users: %w", err)
	}

	users, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing users: %w", err)
	}

	return users, helpers.NewPaginationInfo(total, page, limit), nil
}

// GetCurrentUser loads the authenticated user's profile.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}
