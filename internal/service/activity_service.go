package service

import (
	"context"
	"log"

	"bizdesk/internal/auth"
	"bizdesk/internal/model"
	"bizdesk/internal/repository"
)

// ActivityService records and lists the activity log.
type ActivityService interface {
	// Record appends a log entry attributed to the actor. Failures are
	// logged and swallowed so an unavailable log never fails the operation
	// it describes.
	Record(ctx context.Context, actor *auth.Session, module, action, detail string)
	List(ctx context.Context, filter repository.ActivityFilter) ([]model.ActivityLog, int64, error)
}

type activityService struct {
	repo repository.ActivityRepository
}

// NewActivityService builds an ActivityService.
func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &activityService{repo: repo}
}

func (s *activityService) Record(ctx context.Context, actor *auth.Session, module, action, detail string) {
	if actor == nil {
		return
	}
	entry := &model.ActivityLog{
		UserID:   actor.UserID,
		UserName: actor.Name,
		Module:   module,
		Action:   action,
		Detail:   detail,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		log.Printf("activity log write failed: %v", err)
	}
}

func (s *activityService) List(ctx context.Context, filter repository.ActivityFilter) ([]model.ActivityLog, int64, error) {
	return s.repo.List(ctx, filter)
}
