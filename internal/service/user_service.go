package service

import (
	"errors"

	"go-labstock/internal/apperror"
	"go-labstock/internal/model"
	"go-labstock/internal/repository"
	"go-labstock/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateUserInput carries validated signup fields
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type UserService interface {
	Create(input CreateUserInput) (*model.User, error)
	List() ([]model.User, error)
	Delete(actingUserID, targetID uuid.UUID) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(input CreateUserInput) (*model.User, error) {
	if len(input.Password) < 6 {
		return nil, apperror.Validation("password must be at least 6 characters")
	}
	if input.Role == "" {
		input.Role = model.RoleResearcher
	}

	user := &model.User{
		Name:  input.Name,
		Email: input.Email,
		Role:  input.Role,
	}
	if errs := validator.ValidateStruct(user); len(errs) > 0 {
		return nil, apperror.Validation(errs[0].String())
	}

	if existing, err := s.userRepo.FindByEmail(input.Email); err == nil && existing != nil {
		return nil, apperror.Conflict("email already registered")
	}

	if err := user.SetPassword(input.Password); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) List() ([]model.User, error) {
	return s.userRepo.FindAll()
}

// Delete removes a user, refusing to let admins delete their own account
func (s *userService) Delete(actingUserID, targetID uuid.UUID) error {
	if actingUserID == targetID {
		return apperror.Conflict("cannot delete your own account")
	}
	if _, err := s.userRepo.FindByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("user not found")
		}
		return err
	}
	return s.userRepo.Delete(targetID)
}
