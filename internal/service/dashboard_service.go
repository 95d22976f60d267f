package service

import (
	"context"
	"fmt"

	"bizdesk/internal/model"
	"bizdesk/internal/repository"
)

// DashboardSummary aggregates display tallies from several repositories.
type DashboardSummary struct {
	Customers       int64               `json:"customers"`
	OpenOrders      int64               `json:"open_orders"`
	CompletedOrders int64               `json:"completed_orders"`
	OpenTasks       int64               `json:"open_tasks"`
	OpenTickets     int64               `json:"open_tickets"`
	RecentActivity  []model.ActivityLog `json:"recent_activity"`
}

// DashboardService produces the landing-view summary.
type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}

type dashboardService struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	taskRepo     repository.TaskRepository
	ticketRepo   repository.TicketRepository
	activityRepo repository.ActivityRepository
}

// NewDashboardService builds a DashboardService.
func NewDashboardService(
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	taskRepo repository.TaskRepository,
	ticketRepo repository.TicketRepository,
	activityRepo repository.ActivityRepository,
) DashboardService {
	return &dashboardService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		taskRepo:     taskRepo,
		ticketRepo:   ticketRepo,
		activityRepo: activityRepo,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	var err error
	if summary.Customers, err = s.customerRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	pending, err := s.orderRepo.CountByStatus(ctx, model.OrderStatusPending)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	processing, err := s.orderRepo.CountByStatus(ctx, model.OrderStatusProcessing)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	summary.OpenOrders = pending + processing

	if summary.CompletedOrders, err = s.orderRepo.CountByStatus(ctx, model.OrderStatusCompleted); err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	open, err := s.taskRepo.CountByStatus(ctx, model.TaskStatusOpen)
	if err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}
	inProgress, err := s.taskRepo.CountByStatus(ctx, model.TaskStatusInProgress)
	if err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}
	summary.OpenTasks = open + inProgress

	ticketsOpen, err := s.ticketRepo.CountByStatus(ctx, model.TicketStatusOpen)
	if err != nil {
		return nil, fmt.Errorf("count tickets: %w", err)
	}
	ticketsPending, err := s.ticketRepo.CountByStatus(ctx, model.TicketStatusPending)
	if err != nil {
		return nil, fmt.Errorf("count tickets: %w", err)
	}
	summary.OpenTickets = ticketsOpen + ticketsPending

	if summary.RecentActivity, err = s.activityRepo.ListRecent(ctx, 10); err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}

	return summary, nil
}
