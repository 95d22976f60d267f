package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bizdesk/internal/auth"
	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/model"
	"bizdesk/internal/rbac"
	"bizdesk/internal/repository"
)

const bcryptCost = 10

// ErrUserAlreadyExists is returned when creating a user with a taken email.
var ErrUserAlreadyExists = errors.New("user already exists")

// UserService exposes directory user operations.
type UserService interface {
	Create(ctx context.Context, actor *auth.Session, user *model.User, password string) (*model.User, error)
	Update(ctx context.Context, actor *auth.Session, id uint, user *model.User) (*model.User, error)
	Delete(ctx context.Context, actor *auth.Session, id uint) error
	SetPassword(ctx context.Context, actor *auth.Session, id uint, password string) error
	Get(ctx context.Context, id uint) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo     repository.UserRepository
	activity ActivityService
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository, activity ActivityService) UserService {
	return &userService{repo: repo, activity: activity}
}

func (s *userService) Create(ctx context.Context, actor *auth.Session, user *model.User, password string) (*model.User, error) {
	if _, err := rbac.Normalize(user.Role); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		return nil, ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hashed)

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.activity.Record(ctx, actor, rbac.ModuleUsers, "create", user.Name)
	return user, nil
}

func (s *userService) Update(ctx context.Context, actor *auth.Session, id uint, user *model.User) (*model.User, error) {
	if _, err := rbac.Normalize(user.Role); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	existing.Name = user.Name
	existing.Email = user.Email
	existing.Role = user.Role
	existing.Department = user.Department
	existing.Phone = user.Phone

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.activity.Record(ctx, actor, rbac.ModuleUsers, "edit", existing.Name)
	return existing, nil
}

func (s *userService) Delete(ctx context.Context, actor *auth.Session, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.activity.Record(ctx, actor, rbac.ModuleUsers, "delete", existing.Name)
	return nil
}

func (s *userService) SetPassword(ctx context.Context, actor *auth.Session, id uint, password string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	existing.PasswordHash = string(hashed)

	if err := s.repo.Update(ctx, existing); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.activity.Record(ctx, actor, rbac.ModuleUsers, "edit", existing.Name+" password")
	return nil
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}
