package bandit

import (
	"context"
	"errors"
	"testing"

	"smartMenu/domain"
)

func TestRecommendRankedDuplicateFree(t *testing.T) {
	store := newFakeStore()
	seedArms(store, "t1", "a", "b", "c", "d", "e")
	svc := newTestService(store, 42)

	ranked, err := svc.RecommendRanked(context.Background(), "t1", "u1", 3)
	if err != nil {
		t.Fatalf("ranked recommend failed: %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("list length = %d, want 3", len(ranked))
	}

	seen := make(map[string]bool)
	for i, rec := range ranked {
		if rec.Position != i+1 {
			t.Errorf("position at index %d = %d, want %d", i, rec.Position, i+1)
		}
		if seen[rec.ArmID] {
			t.Errorf("arm %q appears more than once", rec.ArmID)
		}
		seen[rec.ArmID] = true
	}
}

func TestRecommendRankedDefaultK(t *testing.T) {
	store := newFakeStore()
	seedArms(store, "t1", "a", "b", "c", "d")
	svc := newTestService(store, 1)

	ranked, err := svc.RecommendRanked(context.Background(), "t1", "u1", 0)
	if err != nil {
		t.Fatalf("ranked recommend failed: %v", err)
	}
	if len(ranked) != DefaultRankedK {
		t.Errorf("list length = %d, want default %d", len(ranked), DefaultRankedK)
	}
}

func TestRecommendRankedKExceedsArms(t *testing.T) {
	store := newFakeStore()
	seedArms(store, "t1", "a", "b")
	svc := newTestService(store, 1)

	ranked, err := svc.RecommendRanked(context.Background(), "t1", "u1", 5)
	if err != nil {
		t.Fatalf("ranked recommend failed: %v", err)
	}
	if len(ranked) != 2 {
		t.Errorf("list length = %d, want 2", len(ranked))
	}
}

func TestRecommendRankedPerPositionStats(t *testing.T) {
	store := newFakeStore()
	seedArms(store, "t1", "a", "b", "c")
	svc := newTestService(store, 7)

	ranked, err := svc.RecommendRanked(context.Background(), "t1", "u1", 2)
	if err != nil {
		t.Fatalf("ranked recommend failed: %v", err)
	}

	// Each placed (arm, position) pair carries exactly one pull; nothing
	// lands on position 0, which belongs to the single mode.
	for _, rec := range ranked {
		key := domain.StatKey{
			TenantID:   "t1",
			ContextKey: "u1_morning",
			ArmID:      rec.ArmID,
			Position:   rec.Position,
		}
		st, ok := store.stats[key]
		if !ok {
			t.Fatalf("no stat row for arm %q position %d", rec.ArmID, rec.Position)
		}
		if st.Pulls != 1 {
			t.Errorf("pulls for arm %q position %d = %d, want 1", rec.ArmID, rec.Position, st.Pulls)
		}
	}
	for key := range store.stats {
		if key.Position == 0 {
			t.Errorf("ranked mode wrote single-mode key for arm %q", key.ArmID)
		}
	}
}

func TestRecommendRankedNoArms(t *testing.T) {
	svc := newTestService(newFakeStore(), 1)

	_, err := svc.RecommendRanked(context.Background(), "empty-tenant", "u1", 3)
	if !errors.Is(err, domain.ErrNoArms) {
		t.Fatalf("expected ErrNoArms, got %v", err)
	}
}

func TestLogRankedClick(t *testing.T) {
	store := newFakeStore()
	seedArms(store, "t1", "a", "b", "c")
	svc := newTestService(store, 7)

	ranked, err := svc.RecommendRanked(context.Background(), "t1", "u1", 2)
	if err != nil {
		t.Fatalf("ranked recommend failed: %v", err)
	}
	target := ranked[1]

	if err := svc.LogRankedClick(context.Background(), "t1", "u1", target.ArmID, target.Position); err != nil {
		t.Fatalf("ranked click failed: %v", err)
	}

	for key, st := range store.stats {
		want := int64(0)
		if key.ArmID == target.ArmID && key.Position == target.Position {
			want = 1
		}
		if st.Rewards != want {
			t.Errorf("rewards for arm %q position %d = %d, want %d", key.ArmID, key.Position, st.Rewards, want)
		}
	}
}

func TestLogRankedClickValidation(t *testing.T) {
	store := newFakeStore()
	seedArms(store, "t1", "a")
	svc := newTestService(store, 1)

	if err := svc.LogRankedClick(context.Background(), "t1", "u1", "a", 0); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("position 0: got %v", err)
	}
	if err := svc.LogRankedClick(context.Background(), "t1", "u1", "a", 1); !errors.Is(err, domain.ErrStatsNotFound) {
		t.Errorf("never-served exposure: got %v", err)
	}
}
