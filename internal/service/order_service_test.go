package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"bizdesk/internal/auth"
	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/model"
)

func actorSession() *auth.Session {
	return &auth.Session{UserID: 3, Role: "manager", Name: "Ana Krasniqi"}
}

func newOrderService() (*orderService, *MockOrderRepository, *MockCustomerRepository, *MockServiceRepository, *MockActivityService) {
	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	serviceRepo := new(MockServiceRepository)
	activity := new(MockActivityService)
	svc := NewOrderService(orderRepo, customerRepo, serviceRepo, activity).(*orderService)
	return svc, orderRepo, customerRepo, serviceRepo, activity
}

func TestOrderCreateDerivesTotalFromCatalog(t *testing.T) {
	svc, orderRepo, customerRepo, serviceRepo, activity := newOrderService()

	serviceID := uint(5)
	customerRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Customer{ID: 1}, nil)
	serviceRepo.On("FindByID", mock.Anything, serviceID).Return(&model.Service{
		ID:    serviceID,
		Price: decimal.NewFromFloat(19.90),
	}, nil)
	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
	activity.On("Record", mock.Anything, mock.Anything, "orders", "create", mock.AnythingOfType("string")).Return()

	order := &model.Order{CustomerID: 1, ServiceID: &serviceID, Quantity: 3}
	created, err := svc.Create(context.Background(), actorSession(), order)

	assert.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(59.70).Equal(created.Total), "total %s", created.Total)
	assert.Equal(t, model.OrderStatusPending, created.Status)
	assert.Regexp(t, `^ORD-[0-9a-f]{8}$`, created.Reference)
	orderRepo.AssertExpectations(t)
	activity.AssertExpectations(t)
}

func TestOrderCreateUnknownCustomer(t *testing.T) {
	svc, orderRepo, customerRepo, _, _ := newOrderService()

	customerRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), actorSession(), &model.Order{CustomerID: 9})

	assert.ErrorIs(t, err, apperrors.ErrCustomerNotFound)
	orderRepo.AssertNotCalled(t, "Create")
}

func TestOrderCreateKeepsExplicitTotal(t *testing.T) {
	svc, orderRepo, customerRepo, serviceRepo, activity := newOrderService()

	serviceID := uint(5)
	customerRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Customer{ID: 1}, nil)
	serviceRepo.On("FindByID", mock.Anything, serviceID).Return(&model.Service{
		ID:    serviceID,
		Price: decimal.NewFromFloat(19.90),
	}, nil)
	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
	activity.On("Record", mock.Anything, mock.Anything, "orders", "create", mock.AnythingOfType("string")).Return()

	order := &model.Order{CustomerID: 1, ServiceID: &serviceID, Quantity: 2, Total: decimal.NewFromInt(30)}
	created, err := svc.Create(context.Background(), actorSession(), order)

	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(30).Equal(created.Total))
}

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{"pending to processing", model.OrderStatusPending, model.OrderStatusProcessing, nil},
		{"pending to cancelled", model.OrderStatusPending, model.OrderStatusCancelled, nil},
		{"processing to completed", model.OrderStatusProcessing, model.OrderStatusCompleted, nil},
		{"pending to completed skips processing", model.OrderStatusPending, model.OrderStatusCompleted, apperrors.ErrInvalidStatus},
		{"completed is terminal", model.OrderStatusCompleted, model.OrderStatusPending, apperrors.ErrInvalidStatus},
		{"cancelled is terminal", model.OrderStatusCancelled, model.OrderStatusProcessing, apperrors.ErrInvalidStatus},
		{"unknown target", model.OrderStatusPending, "shipped", apperrors.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, orderRepo, _, _, activity := newOrderService()
			orderRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Order{ID: 1, Reference: "ORD-abc12345", Status: tt.from}, nil)
			orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
			activity.On("Record", mock.Anything, mock.Anything, "orders", "edit", mock.AnythingOfType("string")).Return()

			updated, err := svc.UpdateStatus(context.Background(), actorSession(), 1, tt.to)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				orderRepo.AssertNotCalled(t, "Update")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.to, updated.Status)
		})
	}
}

func TestOrderUpdateStatusNotFound(t *testing.T) {
	svc, orderRepo, _, _, _ := newOrderService()
	orderRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UpdateStatus(context.Background(), actorSession(), 99, model.OrderStatusProcessing)

	assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)
}

func TestOrderExportCSV(t *testing.T) {
	svc, orderRepo, _, _, _ := newOrderService()
	orderRepo.On("List", mock.Anything).Return([]model.Order{
		{ID: 1, Reference: "ORD-aaaa1111", CustomerID: 2, Quantity: 1, Total: decimal.NewFromFloat(19.90), Status: model.OrderStatusPending},
	}, nil)

	data, err := svc.ExportCSV(context.Background())

	assert.NoError(t, err)
	assert.Contains(t, string(data), "id,reference,customer_id,quantity,total,status\n")
	assert.Contains(t, string(data), "1,ORD-aaaa1111,2,1,19.90,pending\n")
}
