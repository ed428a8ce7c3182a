package services

import (
	"context"
	"strings"

	"forklift-backend/internal/apperrors"
	"forklift-backend/internal/models"
)

type UserService struct {
	Repo UserStore
}

func NewUserService(repo UserStore) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if len(username) < 3 {
		return nil, apperrors.Validation("username must be at least 3 characters")
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, apperrors.Validation("full name is required")
	}
	if !req.Role.Valid() {
		return nil, apperrors.Validation("role must be operator, mechanic or supervisor")
	}

	user := &models.User{
		Username: username,
		FullName: req.FullName,
		Role:     req.Role,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id int) (*models.User, error) {
	return s.Repo.Get(ctx, id)
}

// ListUsers returns all users
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.Repo.List(ctx)
}

// Login resolves a trusted role selection: look the user up and hand back
// the capability set for its role. No credentials are involved.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.Repo.Get(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{
		User:         user,
		Capabilities: user.Role.Capabilities(),
	}, nil
}
