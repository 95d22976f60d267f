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

// ErrReplyMismatch is returned when a reply's parent belongs to another ticket.
var ErrReplyMismatch = errors.New("parent comment belongs to another ticket")

// CommentService exposes ticket comment operations.
type CommentService interface {
	// Create adds a comment authored by the actor. A non-nil ParentID makes
	// it a reply; the parent must exist on the same ticket.
	Create(ctx context.Context, actor *auth.Session, comment *model.Comment) (*model.Comment, error)
	Vote(ctx context.Context, actor *auth.Session, id uint, up bool) (*model.Comment, error)
	Delete(ctx context.Context, actor *auth.Session, id uint) error
	ListByTicket(ctx context.Context, ticketID uint) ([]model.Comment, error)
}

type commentService struct {
	repo       repository.CommentRepository
	ticketRepo repository.TicketRepository
	activity   ActivityService
}

// NewCommentService builds a CommentService.
func NewCommentService(repo repository.CommentRepository, ticketRepo repository.TicketRepository, activity ActivityService) CommentService {
	return &commentService{repo: repo, ticketRepo: ticketRepo, activity: activity}
}

func (s *commentService) Create(ctx context.Context, actor *auth.Session, comment *model.Comment) (*model.Comment, error) {
	if _, err := s.ticketRepo.FindByID(ctx, comment.TicketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	if comment.ParentID != nil {
		parent, err := s.repo.FindByID(ctx, *comment.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCommentNotFound
			}
			return nil, err
		}
		if parent.TicketID != comment.TicketID {
			return nil, ErrReplyMismatch
		}
	}

	if actor != nil {
		comment.AuthorID = actor.UserID
		comment.AuthorName = actor.Name
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.activity.Record(ctx, actor, rbac.ModuleComments, "create", fmt.Sprintf("ticket %d", comment.TicketID))
	return comment, nil
}

func (s *commentService) Vote(ctx context.Context, actor *auth.Session, id uint, up bool) (*model.Comment, error) {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, err
	}

	if up {
		comment.Upvotes++
	} else {
		comment.Downvotes++
	}

	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("vote comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, actor *auth.Session, id uint) error {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	s.activity.Record(ctx, actor, rbac.ModuleComments, "delete", fmt.Sprintf("ticket %d", comment.TicketID))
	return nil
}

func (s *commentService) ListByTicket(ctx context.Context, ticketID uint) ([]model.Comment, error) {
	return s.repo.ListByTicket(ctx, ticketID)
}
