package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bizdesk/internal/model"
	"bizdesk/internal/rbac"
)

func TestUserCreateHashesPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	activity := new(MockActivityService)
	svc := NewUserService(userRepo, activity)

	userRepo.On("FindByEmail", mock.Anything, "blerim@bizdesk.local").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
	activity.On("Record", mock.Anything, mock.Anything, "users", "create", mock.AnythingOfType("string")).Return()

	user := &model.User{Name: "Blerim Gashi", Email: "blerim@bizdesk.local", Role: "agent"}
	created, err := svc.Create(context.Background(), actorSession(), user, "sekret-123")

	assert.NoError(t, err)
	assert.NotEqual(t, "sekret-123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("sekret-123")))
	userRepo.AssertExpectations(t)
}

// A role outside the permission matrix is rejected before the directory is
// touched.
func TestUserCreateUnknownRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewUserService(userRepo, new(MockActivityService))

	user := &model.User{Name: "Blerim Gashi", Email: "blerim@bizdesk.local", Role: "superuser"}
	_, err := svc.Create(context.Background(), actorSession(), user, "sekret-123")

	assert.ErrorIs(t, err, rbac.ErrUnknownRole)
	userRepo.AssertNotCalled(t, "FindByEmail")
	userRepo.AssertNotCalled(t, "Create")
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewUserService(userRepo, new(MockActivityService))

	userRepo.On("FindByEmail", mock.Anything, "blerim@bizdesk.local").Return(&model.User{ID: 2}, nil)

	user := &model.User{Name: "Blerim Gashi", Email: "blerim@bizdesk.local", Role: "agent"}
	_, err := svc.Create(context.Background(), actorSession(), user, "sekret-123")

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	userRepo.AssertNotCalled(t, "Create")
}

func TestUserUpdateUnknownRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewUserService(userRepo, new(MockActivityService))

	_, err := svc.Update(context.Background(), actorSession(), 2, &model.User{Role: "superuser"})

	assert.ErrorIs(t, err, rbac.ErrUnknownRole)
	userRepo.AssertNotCalled(t, "FindByID")
}
