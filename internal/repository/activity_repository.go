package repository

import (
	"context"

	"gorm.io/gorm"

	"bizdesk/internal/model"
)

// ActivityFilter narrows and pages an activity log listing.
type ActivityFilter struct {
	Module  string
	UserID  uint
	Page    int
	PerPage int
}

// ActivityRepository defines activity log persistence operations. The log is
// append-only: there is no update or delete.
type ActivityRepository interface {
	Create(ctx context.Context, entry *model.ActivityLog) error
	List(ctx context.Context, filter ActivityFilter) ([]model.ActivityLog, int64, error)
	ListRecent(ctx context.Context, limit int) ([]model.ActivityLog, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity log repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, entry *model.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns a page of entries newest-first plus the total match count.
func (r *activityRepository) List(ctx context.Context, filter ActivityFilter) ([]model.ActivityLog, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.ActivityLog{})
	if filter.Module != "" {
		q = q.Where("module = ?", filter.Module)
	}
	if filter.UserID != 0 {
		q = q.Where("user_id = ?", filter.UserID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	var entries []model.ActivityLog
	if err := q.Order("created_at desc").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *activityRepository) ListRecent(ctx context.Context, limit int) ([]model.ActivityLog, error) {
	var entries []model.ActivityLog
	if err := r.db.WithContext(ctx).Order("created_at desc").
		Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
