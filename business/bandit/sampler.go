package bandit

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Sampler draws Beta-distributed samples from a seeded PRNG. rand.Rand is
// not safe for concurrent use, so draws are serialized behind a mutex.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSampler(seed int64) *Sampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Beta draws one sample from Beta(alpha, beta) as
// Gamma(alpha,1) / (Gamma(alpha,1) + Gamma(beta,1)).
func (s *Sampler) Beta(alpha, beta float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	ga := s.gamma(alpha)
	gb := s.gamma(beta)
	return ga / (ga + gb)
}

// gamma samples Gamma(shape, 1) with Marsaglia and Tsang's method.
// Caller must hold s.mu.
func (s *Sampler) gamma(shape float64) float64 {
	if shape < 1 {
		// Boost: Gamma(a) = Gamma(a+1) * U^(1/a)
		return s.gamma(shape+1) * math.Pow(s.rng.Float64(), 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)

	for {
		x := s.rng.NormFloat64()
		v := 1.0 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v

		u := s.rng.Float64()
		x2 := x * x

		if u < 1.0-0.0331*x2*x2 {
			return d * v
		}
		if math.Log(u) < 0.5*x2+d*(1.0-v+math.Log(v)) {
			return d * v
		}
	}
}
