package solver

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/seedmin/search"
)

// Sentinel errors for the solver.
var (
	// ErrGraphNil is returned when Solve receives a nil graph.
	ErrGraphNil = errors.New("solver: graph is nil")

	// ErrUnknownModel is returned for a Model outside the declared set.
	ErrUnknownModel = errors.New("solver: unknown diffusion model")

	// ErrUnknownStrategy is returned for a Strategy outside the declared set.
	ErrUnknownStrategy = errors.New("solver: unknown strategy")

	// ErrInvalidOptions is returned when a numeric option is out of range.
	ErrInvalidOptions = errors.New("solver: invalid options")
)

// Model selects the diffusion family.
type Model int

const (
	// IndependentCascade estimates spread by Monte Carlo IC simulation.
	IndependentCascade Model = iota
	// LinearThreshold computes spread with the deterministic LT process.
	LinearThreshold
)

func (m Model) String() string {
	switch m {
	case IndependentCascade:
		return "ic"
	case LinearThreshold:
		return "lt"
	default:
		return "unknown"
	}
}

// Strategy selects the phases Solve runs after greedy construction.
type Strategy int

const (
	// GreedyOnly stops after greedy construction.
	GreedyOnly Strategy = iota
	// LocalSearch refines the greedy set by seed removal.
	LocalSearch
	// Annealing improves the greedy set with simulated annealing.
	Annealing
)

func (s Strategy) String() string {
	switch s {
	case GreedyOnly:
		return "greedy"
	case LocalSearch:
		return "local-search"
	case Annealing:
		return "annealing"
	default:
		return "unknown"
	}
}

// Phase names as reported in Result.
const (
	PhaseGreedy      = "greedy"
	PhaseLocalSearch = "local-search"
	PhaseAnnealing   = "annealing"
)

// Options configures Solve. Start from DefaultOptions.
type Options struct {
	Model    Model
	Strategy Strategy

	Probability    float64 // IC edge probability
	Threshold      float64 // LT activation threshold
	MonteCarloRuns int     // IC only

	Optimality float64 // target spread as a fraction of the node count
	Ranking    search.Ranking
	SkipActive bool

	Policy    search.Policy
	Criterion search.Criterion

	MaxIter           int
	Temperature       float64
	Cooling           float64
	Move              search.Move
	RemoveProbability float64
	Acceptance        search.Acceptance
	RequireFeasible   bool
	HaltAtZero        bool

	// Seed feeds diffusion.NewRand; 0 selects the library default seed.
	Seed int64

	// ProgressEvery sets how many annealing iterations pass between trace
	// log lines. 0 disables progress logging.
	ProgressEvery int

	Logger zerolog.Logger
}

// Phase reports one pipeline stage.
type Phase struct {
	Name        string        `yaml:"name"`
	Seeds       []int         `yaml:"seeds"`
	Size        int           `yaml:"size"`
	Spread      float64       `yaml:"spread"`
	Feasible    bool          `yaml:"feasible"`
	Evaluations int           `yaml:"evaluations"`
	Elapsed     time.Duration `yaml:"elapsed"`
}

// Result is the outcome of Solve. Final is the last phase run.
type Result struct {
	Model      string  `yaml:"model"`
	Strategy   string  `yaml:"strategy"`
	Nodes      int     `yaml:"nodes"`
	Edges      int     `yaml:"edges"`
	Components int     `yaml:"components"`
	Target     float64 `yaml:"target"`
	Phases     []Phase `yaml:"phases"`
	Final      Phase   `yaml:"final"`
}
