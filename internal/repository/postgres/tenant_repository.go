package postgres

import (
	"context"
	"errors"
	"fmt"

	"smartMenu/business/tenant"
	"smartMenu/domain"

	"gorm.io/gorm"
)

type TenantRepository struct {
	DB *gorm.DB
}

var _ tenant.TenantRepository = (*TenantRepository)(nil)

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{DB: db}
}

func (r *TenantRepository) Create(ctx context.Context, t *domain.Tenant) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(t).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrTenantExists
		}
		return fmt.Errorf("create tenant: %w", err)
	}

	return nil
}

func (r *TenantRepository) Exists(ctx context.Context, tenantID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).
		Model(&domain.Tenant{}).
		Where("id = ?", tenantID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count tenants: %w", err)
	}

	return count > 0, nil
}
