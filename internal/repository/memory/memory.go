// Package memory provides a mutex-guarded in-memory implementation of the
// repository ports. It backs the test suite and DB-less local runs; the
// get-or-create and increment semantics match the Postgres repositories.
package memory

import (
	"context"
	"sync"

	"smartMenu/business/bandit"
	"smartMenu/business/tenant"
	"smartMenu/domain"
)

type Store struct {
	mu      sync.Mutex
	tenants map[string]domain.Tenant
	arms    map[string][]domain.Arm // tenantID -> arms in creation order
	stats   map[domain.StatKey]*domain.ArmStats
	events  []domain.FeedbackEvent
}

var (
	_ bandit.StatsRepository  = (*Store)(nil)
	_ bandit.ArmRepository    = (*Store)(nil)
	_ bandit.EventRepository  = (*Store)(nil)
	_ tenant.TenantRepository = (*Store)(nil)
	_ tenant.ArmRepository    = (*ArmStore)(nil)
)

func NewStore() *Store {
	return &Store{
		tenants: make(map[string]domain.Tenant),
		arms:    make(map[string][]domain.Arm),
		stats:   make(map[domain.StatKey]*domain.ArmStats),
	}
}

// ---- tenant.TenantRepository ----

func (s *Store) Create(ctx context.Context, t *domain.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tenants[t.ID]; ok {
		return domain.ErrTenantExists
	}
	s.tenants[t.ID] = *t
	return nil
}

func (s *Store) Exists(ctx context.Context, tenantID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.tenants[tenantID]
	return ok, nil
}

// ---- bandit.ArmRepository ----

// Arms adapts the store to the tenant service's arm port; Create would
// otherwise collide with the tenant Create above.
func (s *Store) Arms() *ArmStore {
	return &ArmStore{store: s}
}

type ArmStore struct {
	store *Store
}

func (a *ArmStore) Create(ctx context.Context, arm *domain.Arm) error {
	return a.store.CreateArm(ctx, arm)
}

func (a *ArmStore) Exists(ctx context.Context, tenantID, armID string) (bool, error) {
	return a.store.ArmExists(ctx, tenantID, armID)
}

func (a *ArmStore) FindByTenant(ctx context.Context, tenantID string) ([]domain.Arm, error) {
	return a.store.FindByTenant(ctx, tenantID)
}

func (s *Store) CreateArm(ctx context.Context, arm *domain.Arm) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.arms[arm.TenantID] {
		if existing.ID == arm.ID {
			return domain.ErrArmExists
		}
	}
	s.arms[arm.TenantID] = append(s.arms[arm.TenantID], *arm)
	return nil
}

func (s *Store) ArmExists(ctx context.Context, tenantID, armID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.arms[tenantID] {
		if existing.ID == armID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) FindByTenant(ctx context.Context, tenantID string) ([]domain.Arm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	arms := make([]domain.Arm, len(s.arms[tenantID]))
	copy(arms, s.arms[tenantID])
	return arms, nil
}

// ---- bandit.StatsRepository ----

func (s *Store) GetOrCreate(ctx context.Context, key domain.StatKey) (domain.ArmStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return *s.getOrCreateLocked(key), nil
}

func (s *Store) Find(ctx context.Context, key domain.StatKey) (domain.ArmStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stats[key]
	if !ok {
		return domain.ArmStats{}, domain.ErrStatsNotFound
	}
	return *st, nil
}

func (s *Store) IncrementPulls(ctx context.Context, key domain.StatKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stats[key]
	if !ok {
		return domain.ErrStatsNotFound
	}
	st.Pulls++
	return nil
}

func (s *Store) IncrementPullsBatch(ctx context.Context, keys []domain.StatKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate first so a missing key leaves nothing incremented.
	for _, key := range keys {
		if _, ok := s.stats[key]; !ok {
			return domain.ErrStatsNotFound
		}
	}
	for _, key := range keys {
		s.stats[key].Pulls++
	}
	return nil
}

func (s *Store) IncrementRewards(ctx context.Context, key domain.StatKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stats[key]
	if !ok {
		return domain.ErrStatsNotFound
	}
	st.Rewards++
	return nil
}

func (s *Store) getOrCreateLocked(key domain.StatKey) *domain.ArmStats {
	if st, ok := s.stats[key]; ok {
		return st
	}
	st := &domain.ArmStats{
		TenantID:   key.TenantID,
		ContextKey: key.ContextKey,
		ArmID:      key.ArmID,
		Position:   key.Position,
	}
	s.stats[key] = st
	return st
}

// ---- bandit.EventRepository ----

func (s *Store) SaveEvent(ctx context.Context, event domain.FeedbackEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of the recorded feedback log.
func (s *Store) Events() []domain.FeedbackEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]domain.FeedbackEvent, len(s.events))
	copy(events, s.events)
	return events
}

// StatCount reports how many stat rows exist, for uniqueness assertions.
func (s *Store) StatCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.stats)
}
