package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bizdesk/internal/auth"
	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/model"
	"bizdesk/internal/rbac"
	"bizdesk/internal/repository"
)

func validTaskStatus(status string) bool {
	switch status {
	case model.TaskStatusOpen, model.TaskStatusInProgress, model.TaskStatusDone:
		return true
	}
	return false
}

// TaskService exposes task operations.
type TaskService interface {
	Create(ctx context.Context, actor *auth.Session, task *model.Task) (*model.Task, error)
	Update(ctx context.Context, actor *auth.Session, id uint, task *model.Task) (*model.Task, error)
	Delete(ctx context.Context, actor *auth.Session, id uint) error
	Get(ctx context.Context, id uint) (*model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	ListByAssignee(ctx context.Context, assigneeID uint) ([]model.Task, error)
}

type taskService struct {
	repo     repository.TaskRepository
	userRepo repository.UserRepository
	activity ActivityService
}

// NewTaskService builds a TaskService.
func NewTaskService(repo repository.TaskRepository, userRepo repository.UserRepository, activity ActivityService) TaskService {
	return &taskService{repo: repo, userRepo: userRepo, activity: activity}
}

func (s *taskService) checkAssignee(ctx context.Context, assigneeID *uint) error {
	if assigneeID == nil {
		return nil
	}
	if _, err := s.userRepo.FindByID(ctx, *assigneeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *taskService) Create(ctx context.Context, actor *auth.Session, task *model.Task) (*model.Task, error) {
	if err := s.checkAssignee(ctx, task.AssigneeID); err != nil {
		return nil, err
	}
	if task.Status == "" {
		task.Status = model.TaskStatusOpen
	}
	if !validTaskStatus(task.Status) {
		return nil, apperrors.ErrInvalidStatus
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.activity.Record(ctx, actor, rbac.ModuleTasks, "create", task.Title)
	return task, nil
}

func (s *taskService) Update(ctx context.Context, actor *auth.Session, id uint, task *model.Task) (*model.Task, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	if err := s.checkAssignee(ctx, task.AssigneeID); err != nil {
		return nil, err
	}
	if !validTaskStatus(task.Status) {
		return nil, apperrors.ErrInvalidStatus
	}

	existing.Title = task.Title
	existing.Description = task.Description
	existing.AssigneeID = task.AssigneeID
	existing.Status = task.Status
	existing.DueDate = task.DueDate

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	s.activity.Record(ctx, actor, rbac.ModuleTasks, "edit", existing.Title)
	return existing, nil
}

func (s *taskService) Delete(ctx context.Context, actor *auth.Session, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	s.activity.Record(ctx, actor, rbac.ModuleTasks, "delete", existing.Title)
	return nil
}

func (s *taskService) Get(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *taskService) ListByAssignee(ctx context.Context, assigneeID uint) ([]model.Task, error) {
	return s.repo.ListByAssignee(ctx, assigneeID)
}
