package user

import (
	"context"
	"errors"

	"gymdesk/internal/auth"
	"gymdesk/internal/gym"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, string, string, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, string, error)
	GetByID(ctx context.Context, userID int) (*User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *User, error)
}

type service struct {
	repo          Repository
	gymRepo       gym.Repository
	accessSecret  string
	refreshSecret string
}

func NewService(repo Repository, gymRepo gym.Repository, accessSecret, refreshSecret string) Service {
	return &service{
		repo:          repo,
		gymRepo:       gymRepo,
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
	}
}

// Register creates the tenant gym and its owning admin user.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, string, string, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, "", "", err
	}
	if exists {
		return nil, "", "", ErrEmailExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", err
	}

	g, err := s.gymRepo.Create(ctx, req.GymName)
	if err != nil {
		return nil, "", "", err
	}

	u, err := s.repo.Create(ctx, g.ID, req.Name, req.Email, hash, "admin")
	if err != nil {
		return nil, "", "", err
	}

	access, refresh, err := auth.GenerateTokens(u.ID, u.GymID, u.Email, u.Role, s.accessSecret, s.refreshSecret)
	if err != nil {
		return nil, "", "", err
	}

	return u, access, refresh, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*User, string, string, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	access, refresh, err := auth.GenerateTokens(u.ID, u.GymID, u.Email, u.Role, s.accessSecret, s.refreshSecret)
	if err != nil {
		return nil, "", "", err
	}

	return u, access, refresh, nil
}

func (s *service) GetByID(ctx context.Context, userID int) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *User, error) {
	newAccess, claims, err := auth.RefreshAccessToken(refreshToken, s.refreshSecret, s.accessSecret)
	if err != nil {
		return "", nil, err
	}

	u, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", nil, err
	}

	return newAccess, u, nil
}
