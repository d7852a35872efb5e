package search

import (
	"errors"

	"github.com/katalvlaran/seedmin/seeds"
)

// Sentinel errors for search algorithms.
var (
	// ErrNilOracle is returned when an algorithm receives a nil Oracle.
	ErrNilOracle = errors.New("search: oracle is nil")

	// ErrNilSeeds is returned when Refine or Anneal receives a nil start set.
	ErrNilSeeds = errors.New("search: seed set is nil")

	// ErrInvalidOptimality is returned when the optimality fraction is outside (0,1].
	ErrInvalidOptimality = errors.New("search: optimality must be in (0,1]")

	// ErrUnknownRanking, ErrUnknownPolicy, ErrUnknownCriterion, ErrUnknownMove
	// and ErrUnknownAcceptance report an enum value outside its declared set.
	ErrUnknownRanking    = errors.New("search: unknown ranking")
	ErrUnknownPolicy     = errors.New("search: unknown policy")
	ErrUnknownCriterion  = errors.New("search: unknown acceptance criterion")
	ErrUnknownMove       = errors.New("search: unknown move")
	ErrUnknownAcceptance = errors.New("search: unknown acceptance rule")

	// ErrInvalidSchedule is returned for a negative iteration count or
	// temperature, a cooling factor outside (0,1], or a removal probability
	// outside [0,1].
	ErrInvalidSchedule = errors.New("search: invalid annealing schedule")

	// ErrNeedRandSource is returned when Anneal receives a nil RNG.
	ErrNeedRandSource = errors.New("search: rng is required")

	// ErrSeedOutOfRange is returned when a start set names a node outside the graph.
	ErrSeedOutOfRange = errors.New("search: seed out of range")
)

// Outcome is one oracle evaluation.
type Outcome struct {
	// Spread is the (expected) number of activated nodes.
	Spread float64

	// Active holds per-node final flags, or nil when the model cannot
	// provide them (Monte Carlo estimates).
	Active []bool
}

// Ranking selects the order in which Greedy considers nodes.
type Ranking int

const (
	// MarginalGain ranks nodes by the spread of the singleton set {v}.
	MarginalGain Ranking = iota
	// Degree ranks nodes by degree and needs no oracle calls.
	Degree
)

func (r Ranking) String() string {
	switch r {
	case MarginalGain:
		return "marginal-gain"
	case Degree:
		return "degree"
	default:
		return "unknown"
	}
}

// Policy selects how Refine applies removals within a pass.
type Policy int

const (
	// FirstImprovement applies the first accepted removal and restarts the pass.
	FirstImprovement Policy = iota
	// BestImprovement scans every removal and applies the best accepted one.
	BestImprovement
)

func (p Policy) String() string {
	switch p {
	case FirstImprovement:
		return "first"
	case BestImprovement:
		return "best"
	default:
		return "unknown"
	}
}

// Criterion decides whether Refine accepts a removal trial.
type Criterion int

const (
	// RetainCoverage accepts when the trial spread does not drop and still
	// meets the target.
	RetainCoverage Criterion = iota
	// RetainExact accepts only when the trial spread equals the current one.
	RetainExact
)

func (c Criterion) String() string {
	switch c {
	case RetainCoverage:
		return "retain-coverage"
	case RetainExact:
		return "retain-exact"
	default:
		return "unknown"
	}
}

// Move selects the neighborhood Anneal samples from.
type Move int

const (
	// MoveToggle flips membership of a uniformly random node.
	MoveToggle Move = iota
	// MoveBiasedRemoval removes a random member with RemoveProbability,
	// otherwise adds a random non-member.
	MoveBiasedRemoval
)

func (m Move) String() string {
	switch m {
	case MoveToggle:
		return "toggle"
	case MoveBiasedRemoval:
		return "biased-removal"
	default:
		return "unknown"
	}
}

// Acceptance selects the probability of taking a non-improving move.
type Acceptance int

const (
	// Boltzmann accepts with exp(Δ/T).
	Boltzmann Acceptance = iota
	// InverseBoltzmann accepts with 1/exp(Δ/T). Worsening moves then always
	// pass; kept for comparison runs.
	InverseBoltzmann
)

func (a Acceptance) String() string {
	switch a {
	case Boltzmann:
		return "boltzmann"
	case InverseBoltzmann:
		return "inverse-boltzmann"
	default:
		return "unknown"
	}
}

// GreedyOptions configures Greedy.
type GreedyOptions struct {
	Ranking Ranking

	// SkipActive skips candidates already active in the last evaluation of
	// the current set. Only effective with oracles that report flags.
	SkipActive bool

	// Optimality is the target spread as a fraction of the node count.
	Optimality float64
}

// GreedyResult is the set Greedy stopped at.
type GreedyResult struct {
	Seeds       *seeds.Set
	Outcome     Outcome
	Feasible    bool // Outcome.Spread reached the target
	Evaluations int
}

// RefineOptions configures Refine.
type RefineOptions struct {
	Policy     Policy
	Criterion  Criterion
	Optimality float64
}

// RefineResult is the local optimum Refine reached.
type RefineResult struct {
	Seeds       *seeds.Set
	Outcome     Outcome
	Feasible    bool
	Passes      int
	Removed     int
	Evaluations int
}

// AnnealOptions configures Anneal.
type AnnealOptions struct {
	MaxIter     int
	Temperature float64 // initial temperature
	Cooling     float64 // multiplicative factor in (0,1]

	Move              Move
	RemoveProbability float64 // MoveBiasedRemoval only
	Acceptance        Acceptance

	// RequireFeasible discards candidates whose spread is below the target.
	RequireFeasible bool
	Optimality      float64

	// HaltAtZero stops once the temperature reaches zero.
	HaltAtZero bool

	// Hook, when set, is called after every iteration.
	Hook func(Step)
}

// Step describes one finished annealing iteration.
type Step struct {
	Iteration      int
	Temperature    float64 // before cooling
	Size           int     // current set size after the step
	Efficiency     float64 // current set efficiency after the step
	BestEfficiency float64
	Moved          bool // a candidate was generated
	Accepted       bool
	Discarded      bool // candidate failed the feasibility gate
}

// AnnealResult is the best set Anneal saw.
type AnnealResult struct {
	Seeds            *seeds.Set
	Outcome          Outcome // evaluation that produced BestEfficiency
	Iterations       int
	Accepted         int
	Discarded        int
	Evaluations      int
	BestEfficiency   float64
	FinalTemperature float64
}

// Default annealing constants.
const (
	DefaultRemoveProbability = 0.75
	DefaultCooling           = 0.99
	DefaultTemperature       = 100.0
)
