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

// CatalogService exposes service catalog operations.
type CatalogService interface {
	Create(ctx context.Context, actor *auth.Session, svc *model.Service) (*model.Service, error)
	Update(ctx context.Context, actor *auth.Session, id uint, svc *model.Service) (*model.Service, error)
	Delete(ctx context.Context, actor *auth.Session, id uint) error
	Get(ctx context.Context, id uint) (*model.Service, error)
	List(ctx context.Context) ([]model.Service, error)
}

type catalogService struct {
	repo     repository.ServiceRepository
	activity ActivityService
}

// NewCatalogService builds a CatalogService.
func NewCatalogService(repo repository.ServiceRepository, activity ActivityService) CatalogService {
	return &catalogService{repo: repo, activity: activity}
}

func (s *catalogService) Create(ctx context.Context, actor *auth.Session, svc *model.Service) (*model.Service, error) {
	svc.Active = true
	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	s.activity.Record(ctx, actor, rbac.ModuleServices, "create", svc.Name)
	return svc, nil
}

func (s *catalogService) Update(ctx context.Context, actor *auth.Session, id uint, svc *model.Service) (*model.Service, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, err
	}

	existing.Name = svc.Name
	existing.Description = svc.Description
	existing.Price = svc.Price
	existing.DurationMin = svc.DurationMin
	existing.Active = svc.Active

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}

	s.activity.Record(ctx, actor, rbac.ModuleServices, "edit", existing.Name)
	return existing, nil
}

func (s *catalogService) Delete(ctx context.Context, actor *auth.Session, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrServiceNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete service: %w", err)
	}

	s.activity.Record(ctx, actor, rbac.ModuleServices, "delete", existing.Name)
	return nil
}

func (s *catalogService) Get(ctx context.Context, id uint) (*model.Service, error) {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *catalogService) List(ctx context.Context) ([]model.Service, error) {
	return s.repo.List(ctx)
}
