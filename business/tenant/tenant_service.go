package tenant

import (
	"context"
	"fmt"

	"smartMenu/domain"
	"smartMenu/pkg/logger"
)

// TenantRepository contract interface
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	Exists(ctx context.Context, tenantID string) (bool, error)
}

// ArmRepository contract interface
type ArmRepository interface {
	Create(ctx context.Context, arm *domain.Arm) error
	Exists(ctx context.Context, tenantID, armID string) (bool, error)
	FindByTenant(ctx context.Context, tenantID string) ([]domain.Arm, error)
}

// ArmCacheInvalidator drops any cached arm list for a tenant after its
// registry changes. Optional; nil disables invalidation.
type ArmCacheInvalidator interface {
	Invalidate(ctx context.Context, tenantID string) error
}

type TenantService struct {
	tenantRepo TenantRepository
	armRepo    ArmRepository
	armCache   ArmCacheInvalidator
}

func NewTenantService(tenantRepo TenantRepository, armRepo ArmRepository, armCache ArmCacheInvalidator) *TenantService {
	return &TenantService{
		tenantRepo: tenantRepo,
		armRepo:    armRepo,
		armCache:   armCache,
	}
}

func (s *TenantService) CreateTenant(ctx context.Context, t *domain.Tenant) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if t == nil || t.ID == "" {
		return domain.ErrInvalidRequest
	}

	exists, err := s.tenantRepo.Exists(ctx, t.ID)
	if err != nil {
		return fmt.Errorf("check tenant: %w", err)
	}
	if exists {
		return domain.ErrTenantExists
	}

	if err := s.tenantRepo.Create(ctx, t); err != nil {
		logger.Error("failed to create tenant", "tenant_id", t.ID, "error", err)
		return fmt.Errorf("create tenant: %w", err)
	}

	return nil
}

func (s *TenantService) CreateArm(ctx context.Context, arm *domain.Arm) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if arm == nil || arm.ID == "" || arm.TenantID == "" || arm.Name == "" {
		return domain.ErrInvalidRequest
	}

	tenantExists, err := s.tenantRepo.Exists(ctx, arm.TenantID)
	if err != nil {
		return fmt.Errorf("check tenant: %w", err)
	}
	if !tenantExists {
		return domain.ErrTenantNotFound
	}

	armExists, err := s.armRepo.Exists(ctx, arm.TenantID, arm.ID)
	if err != nil {
		return fmt.Errorf("check arm: %w", err)
	}
	if armExists {
		return domain.ErrArmExists
	}

	if err := s.armRepo.Create(ctx, arm); err != nil {
		logger.Error("failed to create arm", "tenant_id", arm.TenantID, "arm_id", arm.ID, "error", err)
		return fmt.Errorf("create arm: %w", err)
	}

	if s.armCache != nil {
		if err := s.armCache.Invalidate(ctx, arm.TenantID); err != nil {
			logger.Warn("failed to invalidate arm cache", "tenant_id", arm.TenantID, "error", err)
		}
	}

	return nil
}

func (s *TenantService) ListArms(ctx context.Context, tenantID string) ([]domain.Arm, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if tenantID == "" {
		return nil, domain.ErrInvalidRequest
	}

	return s.armRepo.FindByTenant(ctx, tenantID)
}
