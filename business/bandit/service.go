package bandit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartMenu/domain"
	"smartMenu/pkg/logger"

	"gorm.io/datatypes"
)

// DefaultRankedK is the list length used when the caller does not ask for a
// specific K (or asks for a non-positive one).
const DefaultRankedK = 3

// ---- Repository ports ----

// StatsRepository is the statistics store: one pulls/rewards pair per key.
// GetOrCreate must be effectively atomic per key: two concurrent callers
// racing on a fresh key must end up with exactly one row and no error.
type StatsRepository interface {
	GetOrCreate(ctx context.Context, key domain.StatKey) (domain.ArmStats, error)
	Find(ctx context.Context, key domain.StatKey) (domain.ArmStats, error)
	IncrementPulls(ctx context.Context, key domain.StatKey) error
	// IncrementPullsBatch applies all increments in a single transaction;
	// a failure leaves no key incremented.
	IncrementPullsBatch(ctx context.Context, keys []domain.StatKey) error
	IncrementRewards(ctx context.Context, key domain.StatKey) error
}

type ArmRepository interface {
	FindByTenant(ctx context.Context, tenantID string) ([]domain.Arm, error)
}

type EventRepository interface {
	SaveEvent(ctx context.Context, event domain.FeedbackEvent) error
}

// ---- Service ----

// Service orchestrates both serving modes over one selector and one stats
// store. The single mode is the ranked mode with k=1 and position 0; the
// position keeps the two modes' key spaces disjoint.
type Service struct {
	armRepo   ArmRepository
	statsRepo StatsRepository
	eventRepo EventRepository
	selector  *Selector
	defaultK  int

	now func() time.Time
}

func NewService(
	armRepo ArmRepository,
	statsRepo StatsRepository,
	eventRepo EventRepository,
	selector *Selector,
	defaultK int,
) *Service {
	if defaultK <= 0 {
		defaultK = DefaultRankedK
	}
	return &Service{
		armRepo:   armRepo,
		statsRepo: statsRepo,
		eventRepo: eventRepo,
		selector:  selector,
		defaultK:  defaultK,
		now:       time.Now,
	}
}

// Recommend picks exactly one arm for (tenant, profile) and records the
// exposure.
func (s *Service) Recommend(ctx context.Context, tenantID, profileHash string) (domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return domain.Recommendation{}, fmt.Errorf("context error: %w", err)
	}
	if tenantID == "" || profileHash == "" {
		return domain.Recommendation{}, domain.ErrInvalidRequest
	}

	contextKey := ComposeContextKey(profileHash, s.now())

	arms, err := s.armRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("load arms: %w", err)
	}
	if len(arms) == 0 {
		return domain.Recommendation{}, domain.ErrNoArms
	}

	// Ensure every arm has a posterior for this context; fresh arms get a
	// neutral Beta(1,1).
	stats := make(map[string]domain.ArmStats, len(arms))
	for _, arm := range arms {
		st, err := s.statsRepo.GetOrCreate(ctx, domain.StatKey{
			TenantID:   tenantID,
			ContextKey: contextKey,
			ArmID:      arm.ID,
		})
		if err != nil {
			return domain.Recommendation{}, fmt.Errorf("get or create stats for arm %s: %w", arm.ID, err)
		}
		stats[arm.ID] = st
	}

	winner, err := s.selector.Pick(arms, stats)
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("%w: %v", domain.ErrNoSelection, err)
	}

	if err := s.statsRepo.IncrementPulls(ctx, domain.StatKey{
		TenantID:   tenantID,
		ContextKey: contextKey,
		ArmID:      winner.ID,
	}); err != nil {
		return domain.Recommendation{}, fmt.Errorf("record exposure for arm %s: %w", winner.ID, err)
	}

	logger.Debug("bandit_recommend",
		"trace_id", TraceIDFromContext(ctx),
		"tenant_id", tenantID,
		"context_key", contextKey,
		"arm_id", winner.ID,
	)
	RecommendationsTotal.WithLabelValues(tenantID, "single").Inc()

	return domain.Recommendation{ArmID: winner.ID, Name: winner.Name}, nil
}

// LogClick records click feedback for a previously served single-mode
// exposure. A false clicked value acknowledges the exposure without reward.
func (s *Service) LogClick(ctx context.Context, tenantID, profileHash, armID string, clicked bool) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if tenantID == "" || profileHash == "" || armID == "" {
		return domain.ErrInvalidRequest
	}

	now := s.now()
	key := domain.StatKey{
		TenantID:   tenantID,
		ContextKey: ComposeContextKey(profileHash, now),
		ArmID:      armID,
	}

	// Never fabricate a reward-only entry for an exposure we have not seen.
	if _, err := s.statsRepo.Find(ctx, key); err != nil {
		if errors.Is(err, domain.ErrStatsNotFound) {
			return err
		}
		return fmt.Errorf("load stats: %w", err)
	}

	if clicked {
		if err := s.statsRepo.IncrementRewards(ctx, key); err != nil {
			return fmt.Errorf("record reward: %w", err)
		}
	}

	s.saveFeedbackEvent(ctx, key, clicked, now)
	FeedbackEventsTotal.WithLabelValues(tenantID, "single", clickedLabel(clicked)).Inc()

	return nil
}

// saveFeedbackEvent appends to the raw feedback log. The log is advisory:
// a write failure must not fail feedback that already updated the counters.
func (s *Service) saveFeedbackEvent(ctx context.Context, key domain.StatKey, clicked bool, now time.Time) {
	if s.eventRepo == nil {
		return
	}

	event := domain.FeedbackEvent{
		TenantID:   key.TenantID,
		ContextKey: key.ContextKey,
		ArmID:      key.ArmID,
		Position:   key.Position,
		Clicked:    clicked,
		Context: datatypes.JSONMap{
			"time_bucket": TimeBucket(now),
			"trace_id":    TraceIDFromContext(ctx),
			"event_time":  now.Format(time.RFC3339),
		},
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		logger.Warn("failed to save feedback event",
			"tenant_id", key.TenantID,
			"arm_id", key.ArmID,
			"error", err,
		)
	}
}

func clickedLabel(clicked bool) string {
	if clicked {
		return "click"
	}
	return "impression"
}
