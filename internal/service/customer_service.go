package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"bizdesk/internal/auth"
	"bizdesk/internal/cache"
	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/model"
	"bizdesk/internal/rbac"
	"bizdesk/internal/repository"
)

const customerCacheTTL = 5 * time.Minute

// CustomerService exposes customer operations.
type CustomerService interface {
	Create(ctx context.Context, actor *auth.Session, customer *model.Customer) (*model.Customer, error)
	Update(ctx context.Context, actor *auth.Session, id uint, customer *model.Customer) (*model.Customer, error)
	Delete(ctx context.Context, actor *auth.Session, id uint) error
	Get(ctx context.Context, id uint) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

type customerService struct {
	repo     repository.CustomerRepository
	cache    *cache.Client
	activity ActivityService
}

// NewCustomerService builds a CustomerService with repository and cache.
func NewCustomerService(repo repository.CustomerRepository, cache *cache.Client, activity ActivityService) CustomerService {
	return &customerService{repo: repo, cache: cache, activity: activity}
}

func (s *customerService) cacheKey(id uint) string {
	return fmt.Sprintf("customer:%d", id)
}

func (s *customerService) Create(ctx context.Context, actor *auth.Session, customer *model.Customer) (*model.Customer, error) {
	customer.Active = true
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	s.activity.Record(ctx, actor, rbac.ModuleCustomers, "create", customer.Name)
	return customer, nil
}

func (s *customerService) Update(ctx context.Context, actor *auth.Session, id uint, customer *model.Customer) (*model.Customer, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, err
	}

	existing.Name = customer.Name
	existing.Email = customer.Email
	existing.Phone = customer.Phone
	existing.Company = customer.Company
	existing.Address = customer.Address
	existing.City = customer.City
	existing.Notes = customer.Notes
	existing.Active = customer.Active

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	s.activity.Record(ctx, actor, rbac.ModuleCustomers, "edit", existing.Name)
	return existing, nil
}

func (s *customerService) Delete(ctx context.Context, actor *auth.Session, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCustomerNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	s.activity.Record(ctx, actor, rbac.ModuleCustomers, "delete", existing.Name)
	return nil
}

func (s *customerService) Get(ctx context.Context, id uint) (*model.Customer, error) {
	if data, err := s.cache.Get(ctx, s.cacheKey(id)); err == nil && data != nil {
		var cached model.Customer
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(customer); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, customerCacheTTL)
	}
	return customer, nil
}

func (s *customerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.repo.List(ctx)
}

// ExportCSV renders all customers as a CSV document.
func (s *customerService) ExportCSV(ctx context.Context) ([]byte, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "name", "email", "phone", "company", "city", "active"}); err != nil {
		return nil, err
	}
	for _, c := range customers {
		record := []string{
			strconv.FormatUint(uint64(c.ID), 10),
			c.Name,
			c.Email,
			c.Phone,
			c.Company,
			c.City,
			strconv.FormatBool(c.Active),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
