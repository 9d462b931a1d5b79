package service

import (
	"errors"

	"go-labstock/internal/apperror"
	"go-labstock/internal/model"
	"go-labstock/internal/repository"
	"go-labstock/pkg/jwt"

	"gorm.io/gorm"
)

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Login verifies credentials and issues a signed token embedding
// {id, role}. A missing user and a wrong password are indistinguishable
// to the caller.
func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.InvalidCredentials("invalid email or password")
		}
		return nil, err
	}

	if !user.CheckPassword(password) {
		return nil, apperror.InvalidCredentials("invalid email or password")
	}

	token, err := jwt.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}
