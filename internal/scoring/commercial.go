package scoring

import (
	"math/rand"
	"time"

	"alfredoptarigan/tender-evaluator/internal/models"
)

// CommercialWeight is the commercial stage's share of the 100-point total.
const CommercialWeight = 20.0

// JitterSource supplies the per-vendor random perturbation applied on each
// negotiation round. Production uses a PRNG seeded fresh per advance; tests
// inject a fixed source for reproducibility.
type JitterSource interface {
	// Factor returns a perturbation in [0, max).
	Factor(max float64) float64
}

type randJitter struct {
	rng *rand.Rand
}

func (j *randJitter) Factor(max float64) float64 {
	if max <= 0 {
		return 0
	}
	return j.rng.Float64() * max
}

// NewRandomJitter returns a freshly seeded jitter source. Each round advance
// creates its own, so repeated advances never share a stream.
func NewRandomJitter() JitterSource {
	return &randJitter{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// ReductionSchedule holds the per-round base reduction fractions and the
// jitter bound. The percentages come from the negotiation policy in force
// for the sourcing event.
type ReductionSchedule struct {
	Rounds    [models.MaxNegotiationRounds]float64 `yaml:"rounds"`
	JitterMax float64                              `yaml:"jitter_max"`
}

// DefaultReductionSchedule returns the documented policy: 2%, 4%, 5.5% base
// reduction with up to 0.5% jitter.
func DefaultReductionSchedule() ReductionSchedule {
	return ReductionSchedule{
		Rounds:    [models.MaxNegotiationRounds]float64{0.02, 0.04, 0.055},
		JitterMax: 0.005,
	}
}

// BaseReduction returns the base reduction fraction for round 1..3, 0
// otherwise.
func (s ReductionSchedule) BaseReduction(round int) float64 {
	if round < 1 || round > models.MaxNegotiationRounds {
		return 0
	}
	return s.Rounds[round-1]
}

// SimulateOffer computes the revised offer a vendor would concede at the
// given round: initial * (1 - base_reduction - jitter).
func SimulateOffer(initial float64, round int, schedule ReductionSchedule, jitter JitterSource) float64 {
	reduction := schedule.BaseReduction(round)
	if jitter != nil {
		reduction += jitter.Factor(schedule.JitterMax)
	}
	return initial * (1 - reduction)
}

// NormalizeCommercial rescales a raw 0-100 commercial score to its 0-20
// contribution to the total.
func NormalizeCommercial(raw float64) float64 {
	return RoundScore(raw * CommercialWeight / 100)
}
