package bandit

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"smartMenu/domain"
	"smartMenu/pkg/logger"
)

// RecommendRanked builds a duplicate-free top-K list. Each position keeps
// its own posterior per arm, so position 1 performance is learned
// independently from position 2.
//
// All pull increments for the request commit in one transaction: either the
// whole exposure is recorded or none of it is.
func (s *Service) RecommendRanked(ctx context.Context, tenantID, profileHash string, k int) ([]domain.RankedRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if tenantID == "" || profileHash == "" {
		return nil, domain.ErrInvalidRequest
	}
	if k <= 0 {
		k = s.defaultK
	}

	contextKey := ComposeContextKey(profileHash, s.now())

	arms, err := s.armRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("load arms: %w", err)
	}
	if len(arms) == 0 {
		return nil, domain.ErrNoArms
	}

	kActual := min(k, len(arms))

	ranked := make([]domain.RankedRecommendation, 0, kActual)
	chosen := make(map[string]struct{}, kActual)

	for position := 1; position <= kActual; position++ {
		candidates := make([]domain.Arm, 0, len(arms)-len(chosen))
		for _, arm := range arms {
			if _, ok := chosen[arm.ID]; !ok {
				candidates = append(candidates, arm)
			}
		}
		if len(candidates) == 0 {
			// Partial list is a success, not an error.
			break
		}

		stats := make(map[string]domain.ArmStats, len(candidates))
		for _, arm := range candidates {
			st, err := s.statsRepo.GetOrCreate(ctx, domain.StatKey{
				TenantID:   tenantID,
				ContextKey: contextKey,
				ArmID:      arm.ID,
				Position:   position,
			})
			if err != nil {
				return nil, fmt.Errorf("get or create stats for arm %s position %d: %w", arm.ID, position, err)
			}
			stats[arm.ID] = st
		}

		winner, err := s.selector.Pick(candidates, stats)
		if err != nil {
			return nil, fmt.Errorf("select for position %d: %w", position, err)
		}

		ranked = append(ranked, domain.RankedRecommendation{
			ArmID:    winner.ID,
			Name:     winner.Name,
			Position: position,
		})
		chosen[winner.ID] = struct{}{}
	}

	if len(ranked) == 0 {
		return nil, domain.ErrNoSelection
	}

	keys := make([]domain.StatKey, 0, len(ranked))
	for _, rec := range ranked {
		keys = append(keys, domain.StatKey{
			TenantID:   tenantID,
			ContextKey: contextKey,
			ArmID:      rec.ArmID,
			Position:   rec.Position,
		})
	}
	if err := s.statsRepo.IncrementPullsBatch(ctx, keys); err != nil {
		return nil, fmt.Errorf("commit exposure counts: %w", err)
	}

	logger.Debug("bandit_recommend_ranked",
		"trace_id", TraceIDFromContext(ctx),
		"tenant_id", tenantID,
		"context_key", contextKey,
		"k_requested", strconv.Itoa(k),
		"k_served", strconv.Itoa(len(ranked)),
	)
	RecommendationsTotal.WithLabelValues(tenantID, "ranked").Inc()

	return ranked, nil
}

// LogRankedClick records a click on a ranked exposure. The call itself is
// the positive signal; there is no "seen but not clicked" variant here.
func (s *Service) LogRankedClick(ctx context.Context, tenantID, profileHash, armID string, position int) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if tenantID == "" || profileHash == "" || armID == "" || position < 1 {
		return domain.ErrInvalidRequest
	}

	now := s.now()
	key := domain.StatKey{
		TenantID:   tenantID,
		ContextKey: ComposeContextKey(profileHash, now),
		ArmID:      armID,
		Position:   position,
	}

	if _, err := s.statsRepo.Find(ctx, key); err != nil {
		if errors.Is(err, domain.ErrStatsNotFound) {
			return err
		}
		return fmt.Errorf("load stats: %w", err)
	}

	if err := s.statsRepo.IncrementRewards(ctx, key); err != nil {
		return fmt.Errorf("record reward: %w", err)
	}

	s.saveFeedbackEvent(ctx, key, true, now)
	FeedbackEventsTotal.WithLabelValues(tenantID, "ranked", "click").Inc()

	return nil
}
