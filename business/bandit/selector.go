package bandit

import (
	"smartMenu/domain"
)

// Selector implements Thompson Sampling: one Beta draw per candidate from
// its reward-rate posterior, highest sample wins.
type Selector struct {
	sampler *Sampler
}

func NewSelector(sampler *Sampler) *Selector {
	return &Selector{sampler: sampler}
}

// shapeParams derives the Beta posterior shape from a counter pair.
// The max(0, ...) clamp keeps beta positive even if spurious feedback has
// pushed rewards above pulls.
func shapeParams(st domain.ArmStats) (alpha, beta float64) {
	failures := st.Pulls - st.Rewards
	if failures < 0 {
		failures = 0
	}
	return float64(st.Rewards) + 1, float64(failures) + 1
}

// Pick selects one arm among candidates given their stats, keyed by arm id.
// Ties break in candidate order: the first arm with the maximal sample wins.
// A candidate with no stats entry gets a neutral Beta(1,1) posterior.
func (s *Selector) Pick(candidates []domain.Arm, stats map[string]domain.ArmStats) (domain.Arm, error) {
	if len(candidates) == 0 {
		return domain.Arm{}, domain.ErrNoCandidates
	}

	var best domain.Arm
	bestSample := -1.0

	for _, arm := range candidates {
		alpha, beta := shapeParams(stats[arm.ID])
		sample := s.sampler.Beta(alpha, beta)

		if sample > bestSample {
			bestSample = sample
			best = arm
		}
	}

	return best, nil
}
