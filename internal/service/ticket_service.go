package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bizdesk/internal/auth"
	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/model"
	"bizdesk/internal/rbac"
	"bizdesk/internal/repository"
)

func validTicketStatus(status string) bool {
	switch status {
	case model.TicketStatusOpen, model.TicketStatusPending, model.TicketStatusResolved, model.TicketStatusClosed:
		return true
	}
	return false
}

func validTicketPriority(priority string) bool {
	switch priority {
	case model.TicketPriorityLow, model.TicketPriorityMedium, model.TicketPriorityHigh:
		return true
	}
	return false
}

// TicketService exposes support ticket operations.
type TicketService interface {
	Create(ctx context.Context, actor *auth.Session, ticket *model.Ticket) (*model.Ticket, error)
	Update(ctx context.Context, actor *auth.Session, id uint, ticket *model.Ticket) (*model.Ticket, error)
	Delete(ctx context.Context, actor *auth.Session, id uint) error
	Get(ctx context.Context, id uint) (*model.Ticket, error)
	List(ctx context.Context) ([]model.Ticket, error)
}

type ticketService struct {
	repo         repository.TicketRepository
	customerRepo repository.CustomerRepository
	activity     ActivityService
}

// NewTicketService builds a TicketService.
func NewTicketService(repo repository.TicketRepository, customerRepo repository.CustomerRepository, activity ActivityService) TicketService {
	return &ticketService{repo: repo, customerRepo: customerRepo, activity: activity}
}

func (s *ticketService) Create(ctx context.Context, actor *auth.Session, ticket *model.Ticket) (*model.Ticket, error) {
	if ticket.CustomerID != nil {
		if _, err := s.customerRepo.FindByID(ctx, *ticket.CustomerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCustomerNotFound
			}
			return nil, err
		}
	}

	if ticket.Status == "" {
		ticket.Status = model.TicketStatusOpen
	}
	if ticket.Priority == "" {
		ticket.Priority = model.TicketPriorityMedium
	}
	if !validTicketStatus(ticket.Status) || !validTicketPriority(ticket.Priority) {
		return nil, apperrors.ErrInvalidStatus
	}

	ticket.Reference = "TCK-" + uuid.New().String()[:8]

	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	s.activity.Record(ctx, actor, rbac.ModuleTickets, "create", ticket.Reference)
	return ticket, nil
}

func (s *ticketService) Update(ctx context.Context, actor *auth.Session, id uint, ticket *model.Ticket) (*model.Ticket, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	if !validTicketStatus(ticket.Status) || !validTicketPriority(ticket.Priority) {
		return nil, apperrors.ErrInvalidStatus
	}

	existing.Subject = ticket.Subject
	existing.Body = ticket.Body
	existing.Status = ticket.Status
	existing.Priority = ticket.Priority
	existing.AssigneeID = ticket.AssigneeID

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update ticket: %w", err)
	}

	s.activity.Record(ctx, actor, rbac.ModuleTickets, "edit", existing.Reference)
	return existing, nil
}

func (s *ticketService) Delete(ctx context.Context, actor *auth.Session, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTicketNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}

	s.activity.Record(ctx, actor, rbac.ModuleTickets, "delete", existing.Reference)
	return nil
}

func (s *ticketService) Get(ctx context.Context, id uint) (*model.Ticket, error) {
	ticket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}
	return ticket, nil
}

func (s *ticketService) List(ctx context.Context) ([]model.Ticket, error) {
	return s.repo.List(ctx)
}
