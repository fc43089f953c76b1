// Package pipeline runs the batch job end to end: config, data, rolling
// mean, signals, and the final result record.
package pipeline

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"SignalPipe/internal/calculator"
	"SignalPipe/internal/config"
	"SignalPipe/internal/loader"
	"SignalPipe/internal/model"
	"SignalPipe/internal/strategy"
)

// Runner executes the pipeline once per process lifetime. Every anticipated
// failure is converted into the error result shape; Run never panics on bad
// config or bad input.
type Runner struct {
	inputPath  string
	configPath string
	log        zerolog.Logger

	// rng is seeded from the config and scoped to this run. The rolling-mean
	// computation is deterministic and never draws from it; any randomness
	// added later must come from here rather than a package-level generator.
	rng *rand.Rand
}

// New builds a runner for one invocation.
func New(inputPath, configPath string, log zerolog.Logger) *Runner {
	return &Runner{
		inputPath:  inputPath,
		configPath: configPath,
		log:        log,
	}
}

// Run executes every stage in order, gating each on the success of the
// previous, and always returns a result record. The latency reported covers
// the computational stages only, not file loading.
func (r *Runner) Run() *model.RunResult {
	r.log.Info().Msg("job started")

	cfg, err := config.Load(r.configPath)
	if err != nil {
		return r.fail(model.DefaultVersion, &ConfigError{Err: err})
	}
	if err := cfg.Validate(); err != nil {
		return r.fail(model.DefaultVersion, &ConfigError{Err: err})
	}
	seed, window, version := *cfg.Seed, *cfg.Window, *cfg.Version
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		r.log = r.log.Level(lvl)
	}
	r.log.Info().
		Int64("seed", seed).
		Int("window", window).
		Str("version", version).
		Msg("config loaded")

	r.rng = rand.New(rand.NewSource(seed))
	r.log.Info().Int64("seed", seed).Msg("random seed set")

	series, err := loader.LoadCSV(r.inputPath)
	if err != nil {
		return r.fail(version, &InputError{Err: err})
	}
	r.log.Info().Int("rows", series.Rows()).Msg("data loaded")

	start := time.Now()

	means, err := calculator.RollingMean(series.Closes, window)
	if err != nil {
		// Unreachable after Validate, kept as a gate for direct callers.
		return r.fail(version, &ConfigError{Err: err})
	}
	r.log.Info().Int("window", window).Msg("rolling mean calculated")

	signals := strategy.Signals(series.Closes, means)
	r.log.Info().Int("total", len(signals)).Msg("signals generated")

	rate := strategy.Rate(signals)
	latency := time.Since(start).Milliseconds()

	r.log.Info().
		Int("rows_processed", series.Rows()).
		Float64("signal_rate", rate).
		Int64("latency_ms", latency).
		Msg("metrics computed")

	return model.SuccessResult(version, series.Rows(), rate, latency, seed)
}

func (r *Runner) fail(version string, err error) *model.RunResult {
	r.log.Error().Err(err).Msg("pipeline failed")
	return model.ErrorResult(version, err.Error())
}
