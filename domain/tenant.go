package domain

import "time"

// Tenant is the isolation boundary. Every arm and every stat row belongs
// to exactly one tenant.
type Tenant struct {
	ID        string    `gorm:"column:id;primaryKey;size:50" json:"tenant_id"`
	Name      string    `gorm:"column:name;size:100" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}
