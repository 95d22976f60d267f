package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bizdesk/internal/auth"
	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/model"
	"bizdesk/internal/rbac"
	"bizdesk/internal/repository"
)

// orderTransitions lists the allowed status moves. Completed and cancelled
// are terminal.
var orderTransitions = map[string][]string{
	model.OrderStatusPending:    {model.OrderStatusProcessing, model.OrderStatusCancelled},
	model.OrderStatusProcessing: {model.OrderStatusCompleted, model.OrderStatusCancelled},
	model.OrderStatusCompleted:  {},
	model.OrderStatusCancelled:  {},
}

// OrderService exposes order operations.
type OrderService interface {
	Create(ctx context.Context, actor *auth.Session, order *model.Order) (*model.Order, error)
	Update(ctx context.Context, actor *auth.Session, id uint, order *model.Order) (*model.Order, error)
	UpdateStatus(ctx context.Context, actor *auth.Session, id uint, status string) (*model.Order, error)
	Delete(ctx context.Context, actor *auth.Session, id uint) error
	Get(ctx context.Context, id uint) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]model.Order, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

type orderService struct {
	repo         repository.OrderRepository
	customerRepo repository.CustomerRepository
	serviceRepo  repository.ServiceRepository
	activity     ActivityService
}

// NewOrderService builds an OrderService.
func NewOrderService(repo repository.OrderRepository, customerRepo repository.CustomerRepository, serviceRepo repository.ServiceRepository, activity ActivityService) OrderService {
	return &orderService{
		repo:         repo,
		customerRepo: customerRepo,
		serviceRepo:  serviceRepo,
		activity:     activity,
	}
}

// Create validates the customer and optional catalog service, derives the
// total from the catalog price when none is given, and assigns a reference.
func (s *orderService) Create(ctx context.Context, actor *auth.Session, order *model.Order) (*model.Order, error) {
	if _, err := s.customerRepo.FindByID(ctx, order.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, err
	}

	if order.Quantity < 1 {
		order.Quantity = 1
	}

	if order.ServiceID != nil {
		svc, err := s.serviceRepo.FindByID(ctx, *order.ServiceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrServiceNotFound
			}
			return nil, err
		}
		if order.Total.IsZero() {
			order.Total = svc.Price.Mul(decimal.NewFromInt(int64(order.Quantity)))
		}
	}

	order.Reference = "ORD-" + uuid.New().String()[:8]
	order.Status = model.OrderStatusPending

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.activity.Record(ctx, actor, rbac.ModuleOrders, "create", order.Reference)
	return order, nil
}

func (s *orderService) Update(ctx context.Context, actor *auth.Session, id uint, order *model.Order) (*model.Order, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}

	existing.ServiceID = order.ServiceID
	existing.Quantity = order.Quantity
	existing.Total = order.Total
	existing.Notes = order.Notes

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	s.activity.Record(ctx, actor, rbac.ModuleOrders, "edit", existing.Reference)
	return existing, nil
}

// UpdateStatus moves the order through its lifecycle, rejecting transitions
// out of a terminal state or to an unknown status.
func (s *orderService) UpdateStatus(ctx context.Context, actor *auth.Session, id uint, status string) (*model.Order, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}

	allowed, ok := orderTransitions[existing.Status]
	if !ok {
		return nil, apperrors.ErrInvalidStatus
	}
	valid := false
	for _, next := range allowed {
		if next == status {
			valid = true
			break
		}
	}
	if !valid {
		return nil, apperrors.ErrInvalidStatus
	}

	existing.Status = status
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	s.activity.Record(ctx, actor, rbac.ModuleOrders, "edit", existing.Reference+" -> "+status)
	return existing, nil
}

func (s *orderService) Delete(ctx context.Context, actor *auth.Session, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrderNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	s.activity.Record(ctx, actor, rbac.ModuleOrders, "delete", existing.Reference)
	return nil
}

func (s *orderService) Get(ctx context.Context, id uint) (*model.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	return s.repo.List(ctx)
}

func (s *orderService) ListByCustomer(ctx context.Context, customerID uint) ([]model.Order, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

// ExportCSV renders all orders as a CSV document.
func (s *orderService) ExportCSV(ctx context.Context) ([]byte, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "reference", "customer_id", "quantity", "total", "status"}); err != nil {
		return nil, err
	}
	for _, o := range orders {
		record := []string{
			strconv.FormatUint(uint64(o.ID), 10),
			o.Reference,
			strconv.FormatUint(uint64(o.CustomerID), 10),
			strconv.Itoa(o.Quantity),
			o.Total.StringFixed(2),
			o.Status,
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
