package postgres

import (
	"context"
	"fmt"

	"smartMenu/business/bandit"
	"smartMenu/domain"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

var _ bandit.EventRepository = (*EventRepository)(nil)

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) SaveEvent(ctx context.Context, event domain.FeedbackEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("save feedback event: %w", err)
	}

	return nil
}
