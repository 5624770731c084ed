package user

import (
	"context"
	"errors"
	"strings"
	"time"

	userRepo "hotelier/database/repository/user"
	"hotelier/models"
	"hotelier/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Token lifetime for issued JWTs.
const tokenTTL = 72 * time.Hour

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

func (s *DefaultUserService) Register(ctx context.Context, input models.RegisterInput) (*models.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, utils.ValidationError("An account with this email already exists.")
	} else if err != nil && !errors.Is(err, userRepo.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	usr := &models.User{
		ID:           uuid.New().String(),
		Username:     input.Username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, usr); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, tokenTTL)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("User registered", zap.String("userID", usr.ID), zap.String("email", usr.Email))
	return &models.AuthResult{Token: token, User: *usr}, nil
}

func (s *DefaultUserService) Authenticate(ctx context.Context, input models.LoginInput) (*models.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	usr, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, utils.UnauthorizedError("Invalid email or password.")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(input.Password)); err != nil {
		return nil, utils.UnauthorizedError("Invalid email or password.")
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, tokenTTL)
	if err != nil {
		return nil, err
	}
	return &models.AuthResult{Token: token, User: *usr}, nil
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, utils.NotFoundError("User not found")
		}
		return nil, err
	}
	return usr, nil
}
