package domain

import "time"

// Arm is a selectable option a tenant offers (a menu item, a content card).
// Immutable from the bandit's point of view during a request.
type Arm struct {
	ID        string    `gorm:"column:id;primaryKey;size:50" json:"arm_id"`
	TenantID  string    `gorm:"column:tenant_id;primaryKey;size:50" json:"tenant_id"`
	Name      string    `gorm:"column:name;size:100" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Arm) TableName() string {
	return "arms"
}
