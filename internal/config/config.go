// Package config layers seedmin settings from defaults, a config file,
// SEEDMIN_* environment variables and command-line flags using viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/seedmin/search"
	"github.com/katalvlaran/seedmin/solver"
)

// ErrUnknownValue is returned when an enumerated setting has an unknown name.
var ErrUnknownValue = errors.New("config: unknown value")

// Setting keys.
const (
	KeyModel             = "model"
	KeyStrategy          = "strategy"
	KeyProbability       = "diffusion.probability"
	KeyThreshold         = "diffusion.threshold"
	KeyRuns              = "montecarlo.runs"
	KeyOptimality        = "search.optimality"
	KeyRanking           = "search.ranking"
	KeySkipActive        = "search.skip_active"
	KeyPolicy            = "search.policy"
	KeyCriterion         = "search.criterion"
	KeyMaxIter           = "anneal.max_iter"
	KeyTemperature       = "anneal.temperature"
	KeyCooling           = "anneal.cooling"
	KeyAcceptance        = "anneal.acceptance"
	KeyMove              = "anneal.move"
	KeyRemoveProbability = "anneal.remove_probability"
	KeyRequireFeasible   = "anneal.require_feasible"
	KeyHaltAtZero        = "anneal.halt_at_zero"
	KeySeed              = "random.seed"
	KeyLogLevel          = "logging.level"
	KeyProgressEvery     = "logging.progress_every"

	envPrefix = "SEEDMIN"
)

// Config manages seedmin configuration using Viper.
type Config struct {
	v *viper.Viper
}

// New creates a configuration with defaults. Settings whose default depends
// on the diffusion model get no viper default; SolverOptions fills them from
// solver.DefaultOptions unless they were set.
func New() *Config {
	v := viper.New()

	v.SetDefault(KeyModel, solver.LinearThreshold.String())
	v.SetDefault(KeyStrategy, solver.LocalSearch.String())

	v.SetDefault(KeyProbability, solver.DefaultProbability)
	v.SetDefault(KeyThreshold, solver.DefaultThreshold)
	v.SetDefault(KeyRuns, solver.DefaultMonteCarloRuns)
	v.SetDefault(KeyOptimality, solver.DefaultOptimality)

	v.SetDefault(KeyTemperature, search.DefaultTemperature)
	v.SetDefault(KeyCooling, search.DefaultCooling)
	v.SetDefault(KeyAcceptance, search.Boltzmann.String())
	v.SetDefault(KeyRemoveProbability, search.DefaultRemoveProbability)

	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyProgressEvery, solver.DefaultProgressEvery)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile loads configuration from a YAML, TOML or JSON file.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}

	return nil
}

// BindPFlag makes flag override key when the user set it.
func (c *Config) BindPFlag(key string, flag *pflag.Flag) error {
	return c.v.BindPFlag(key, flag)
}

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

func (c *Config) Model() string { return c.v.GetString(KeyModel) }
func (c *Config) Strategy() string { return c.v.GetString(KeyStrategy) }
func (c *Config) Seed() int64 { return c.v.GetInt64(KeySeed) }
func (c *Config) LogLevel() string { return c.v.GetString(KeyLogLevel) }

// SolverOptions translates the configuration into solver options, starting
// from the defaults of the configured model.
func (c *Config) SolverOptions() (solver.Options, error) {
	model, err := lookup(KeyModel, c.Model(), modelNames)
	if err != nil {
		return solver.Options{}, err
	}
	opts := solver.DefaultOptions(model)

	if opts.Strategy, err = lookup(KeyStrategy, c.Strategy(), strategyNames); err != nil {
		return solver.Options{}, err
	}
	opts.Probability = c.v.GetFloat64(KeyProbability)
	opts.Threshold = c.v.GetFloat64(KeyThreshold)
	opts.MonteCarloRuns = c.v.GetInt(KeyRuns)
	opts.Optimality = c.v.GetFloat64(KeyOptimality)
	opts.Temperature = c.v.GetFloat64(KeyTemperature)
	opts.Cooling = c.v.GetFloat64(KeyCooling)
	opts.RemoveProbability = c.v.GetFloat64(KeyRemoveProbability)
	opts.Seed = c.Seed()
	opts.ProgressEvery = c.v.GetInt(KeyProgressEvery)
	if opts.Acceptance, err = lookup(KeyAcceptance, c.v.GetString(KeyAcceptance), acceptanceNames); err != nil {
		return solver.Options{}, err
	}

	if c.v.IsSet(KeyRanking) {
		if opts.Ranking, err = lookup(KeyRanking, c.v.GetString(KeyRanking), rankingNames); err != nil {
			return solver.Options{}, err
		}
	}
	if c.v.IsSet(KeyPolicy) {
		if opts.Policy, err = lookup(KeyPolicy, c.v.GetString(KeyPolicy), policyNames); err != nil {
			return solver.Options{}, err
		}
	}
	if c.v.IsSet(KeyCriterion) {
		if opts.Criterion, err = lookup(KeyCriterion, c.v.GetString(KeyCriterion), criterionNames); err != nil {
			return solver.Options{}, err
		}
	}
	if c.v.IsSet(KeyMove) {
		if opts.Move, err = lookup(KeyMove, c.v.GetString(KeyMove), moveNames); err != nil {
			return solver.Options{}, err
		}
	}
	if c.v.IsSet(KeyMaxIter) {
		opts.MaxIter = c.v.GetInt(KeyMaxIter)
	}
	if c.v.IsSet(KeySkipActive) {
		opts.SkipActive = c.v.GetBool(KeySkipActive)
	}
	if c.v.IsSet(KeyRequireFeasible) {
		opts.RequireFeasible = c.v.GetBool(KeyRequireFeasible)
	}
	if c.v.IsSet(KeyHaltAtZero) {
		opts.HaltAtZero = c.v.GetBool(KeyHaltAtZero)
	}

	return opts, nil
}

// ParseModel resolves a model name as accepted in configuration.
func ParseModel(name string) (solver.Model, error) {
	return lookup(KeyModel, name, modelNames)
}

var (
	modelNames      = names(solver.IndependentCascade, solver.LinearThreshold)
	strategyNames   = names(solver.GreedyOnly, solver.LocalSearch, solver.Annealing)
	rankingNames    = names(search.MarginalGain, search.Degree)
	policyNames     = names(search.FirstImprovement, search.BestImprovement)
	criterionNames  = names(search.RetainCoverage, search.RetainExact)
	moveNames       = names(search.MoveToggle, search.MoveBiasedRemoval)
	acceptanceNames = names(search.Boltzmann, search.InverseBoltzmann)
)

// names indexes enum values by their String form.
func names[T fmt.Stringer](values ...T) map[string]T {
	m := make(map[string]T, len(values))
	for _, v := range values {
		m[v.String()] = v
	}

	return m
}

func lookup[T any](key, name string, table map[string]T) (T, error) {
	v, ok := table[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		var zero T
		return zero, fmt.Errorf("config: %s=%q: %w", key, name, ErrUnknownValue)
	}

	return v, nil
}
