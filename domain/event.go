package domain

import (
	"time"

	"gorm.io/datatypes"
)

// FeedbackEvent is the raw audit log of click feedback, kept alongside the
// aggregated counters for offline analysis.
type FeedbackEvent struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	TenantID   string    `gorm:"column:tenant_id;size:50;not null" json:"tenant_id"`
	ContextKey string    `gorm:"column:context_key;size:100;not null" json:"context_key"`
	ArmID      string    `gorm:"column:arm_id;size:50;not null" json:"arm_id"`
	Position   int       `gorm:"column:position;not null;default:0" json:"position"`
	Clicked    bool      `gorm:"column:clicked;not null" json:"clicked"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Context datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
}

func (FeedbackEvent) TableName() string {
	return "feedback_events"
}
