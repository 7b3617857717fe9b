package tenant_test

import (
	"context"
	"errors"
	"testing"

	"smartMenu/business/tenant"
	"smartMenu/domain"
	"smartMenu/internal/repository/memory"
)

type spyInvalidator struct {
	tenants []string
}

func (s *spyInvalidator) Invalidate(ctx context.Context, tenantID string) error {
	s.tenants = append(s.tenants, tenantID)
	return nil
}

func TestCreateTenant(t *testing.T) {
	store := memory.NewStore()
	svc := tenant.NewTenantService(store, store.Arms(), nil)
	ctx := context.Background()

	if err := svc.CreateTenant(ctx, &domain.Tenant{ID: "t1", Name: "Cafe One"}); err != nil {
		t.Fatalf("create tenant failed: %v", err)
	}
	if err := svc.CreateTenant(ctx, &domain.Tenant{ID: "t1"}); !errors.Is(err, domain.ErrTenantExists) {
		t.Errorf("duplicate tenant: got %v", err)
	}
	if err := svc.CreateTenant(ctx, &domain.Tenant{}); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("empty tenant id: got %v", err)
	}
}

func TestCreateArm(t *testing.T) {
	store := memory.NewStore()
	cache := &spyInvalidator{}
	svc := tenant.NewTenantService(store, store.Arms(), cache)
	ctx := context.Background()

	if err := svc.CreateTenant(ctx, &domain.Tenant{ID: "t1"}); err != nil {
		t.Fatalf("create tenant failed: %v", err)
	}

	arm := domain.Arm{ID: "espresso", TenantID: "t1", Name: "Espresso"}
	if err := svc.CreateArm(ctx, &arm); err != nil {
		t.Fatalf("create arm failed: %v", err)
	}
	if err := svc.CreateArm(ctx, &arm); !errors.Is(err, domain.ErrArmExists) {
		t.Errorf("duplicate arm: got %v", err)
	}

	unknown := domain.Arm{ID: "latte", TenantID: "nope", Name: "Latte"}
	if err := svc.CreateArm(ctx, &unknown); !errors.Is(err, domain.ErrTenantNotFound) {
		t.Errorf("unknown tenant: got %v", err)
	}

	// Only the successful create invalidates the cached arm list.
	if len(cache.tenants) != 1 || cache.tenants[0] != "t1" {
		t.Errorf("invalidations = %v, want [t1]", cache.tenants)
	}
}

func TestListArms(t *testing.T) {
	store := memory.NewStore()
	svc := tenant.NewTenantService(store, store.Arms(), nil)
	ctx := context.Background()

	if err := svc.CreateTenant(ctx, &domain.Tenant{ID: "t1"}); err != nil {
		t.Fatalf("create tenant failed: %v", err)
	}
	for _, id := range []string{"a", "b"} {
		if err := svc.CreateArm(ctx, &domain.Arm{ID: id, TenantID: "t1", Name: id}); err != nil {
			t.Fatalf("create arm %q failed: %v", id, err)
		}
	}

	arms, err := svc.ListArms(ctx, "t1")
	if err != nil {
		t.Fatalf("list arms failed: %v", err)
	}
	if len(arms) != 2 {
		t.Errorf("arms = %d, want 2", len(arms))
	}

	if _, err := svc.ListArms(ctx, ""); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("empty tenant id: got %v", err)
	}
}
