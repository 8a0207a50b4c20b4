package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ecesahin/registrar/internal/app/models"
	"github.com/ecesahin/registrar/internal/app/models/dto"
	"github.com/ecesahin/registrar/internal/pkg/apperrors"
	"github.com/ecesahin/registrar/internal/pkg/auth"
)

// UserReader is the subset of the user repository the auth service needs
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// StudentByUserReader resolves the student linked to a login account
type StudentByUserReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
}

// AuthService handles authentication operations
type AuthService struct {
	userRepo    UserReader
	studentRepo StudentByUserReader
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo UserReader,
	studentRepo StudentByUserReader,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Login verifies credentials and issues a signed token carrying the user's
// email and role. For STUDENT users the linked student's business key is
// included in the response when one exists; its absence is not an error.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		// An unknown email is indistinguishable from a wrong password
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	response := &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
		Email:     user.Email,
		Role:      string(user.Role),
	}

	if user.Role == models.RoleStudent {
		student, err := s.studentRepo.GetByUserID(ctx, user.ID)
		if err == nil {
			response.StudentID = student.StudentID
		} else {
			s.logger.Debug().Err(err).Int64("userID", user.ID).Msg("No student record linked to user")
		}
	}

	return response, nil
}

// ValidateToken reports whether the token is valid and was issued for the
// given email.
func (s *AuthService) ValidateToken(token, email string) bool {
	return s.jwtService.ValidateForEmail(token, email)
}
