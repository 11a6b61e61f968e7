package services

import (
	"database/sql"
	"errors"
	"fmt"

	"gasgestor_backend/internal/models"
	"gasgestor_backend/internal/repositories"
	"gasgestor_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors ---
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserInactive       = errors.New("user account is inactive")
)

// --- DTOs ---

// RegisterRequest defines the structure for user registration input.
type RegisterRequest struct {
	Username string  `json:"username" binding:"required,min=3"`
	Password string  `json:"password" binding:"required,min=6"`
	FullName *string `json:"full_name"`
}

// LoginRequest defines the structure for user login input.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse defines the structure returned on successful login.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user"`
}

// --- AuthService Interface ---
type AuthService interface {
	Register(req RegisterRequest) (*models.User, error)
	Login(req LoginRequest) (*LoginResponse, error)
	GetUserProfile(userID int64) (*models.User, error)
}

type authService struct {
	authRepo repositories.AuthRepository
	db       *sql.DB
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(ar repositories.AuthRepository, db *sql.DB) AuthService {
	return &authService{authRepo: ar, db: db}
}

func (s *authService) Register(req RegisterRequest) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		FullName: req.FullName,
		IsActive: true,
	}

	userID, err := s.authRepo.CreateUser(s.db, user, string(hashedPassword))
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrUsernameExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = userID
	return user, nil
}

func (s *authService) Login(req LoginRequest) (*LoginResponse, error) {
	user, hashedPassword, err := s.authRepo.FindUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	token, err := utils.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &LoginResponse{AccessToken: token, User: user}, nil
}

func (s *authService) GetUserProfile(userID int64) (*models.User, error) {
	user, err := s.authRepo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	return user, nil
}
