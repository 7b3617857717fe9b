package postgres

import (
	"context"
	"errors"
	"fmt"

	"smartMenu/business/bandit"
	"smartMenu/business/tenant"
	"smartMenu/domain"

	"gorm.io/gorm"
)

type ArmRepository struct {
	DB *gorm.DB
}

var (
	_ bandit.ArmRepository = (*ArmRepository)(nil)
	_ tenant.ArmRepository = (*ArmRepository)(nil)
)

func NewArmRepository(db *gorm.DB) *ArmRepository {
	return &ArmRepository{DB: db}
}

func (r *ArmRepository) Create(ctx context.Context, arm *domain.Arm) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(arm).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrArmExists
		}
		return fmt.Errorf("create arm: %w", err)
	}

	return nil
}

func (r *ArmRepository) Exists(ctx context.Context, tenantID, armID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).
		Model(&domain.Arm{}).
		Where("tenant_id = ? AND id = ?", tenantID, armID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count arms: %w", err)
	}

	return count > 0, nil
}

// FindByTenant returns the tenant's arms in registration order. The selector
// breaks sampling ties by candidate order, so the ordering is pinned here.
func (r *ArmRepository) FindByTenant(ctx context.Context, tenantID string) ([]domain.Arm, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var arms []domain.Arm
	err := r.DB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at, id").
		Find(&arms).Error
	if err != nil {
		return nil, fmt.Errorf("query arms: %w", err)
	}

	return arms, nil
}
