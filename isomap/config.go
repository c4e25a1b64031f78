// SPDX-License-Identifier: MIT

package isomap

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/isomap/geodesic"
	"github.com/katalvlaran/isomap/mds"
)

var (
	// ErrInvalidConfig is returned when Config fails validation. The pipeline
	// does not run.
	ErrInvalidConfig = errors.New("isomap: invalid config")

	// ErrRaggedInput is returned by RunSlices when rows differ in length.
	ErrRaggedInput = errors.New("isomap: ragged input rows")
)

// Config controls an ISOMAP run.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// NNeighbors is k for k-NN neighborhood graphs. Ignored when Radius is
	// set. Must be >= 1 otherwise. Default: 7.
	NNeighbors int

	// NComponents is the embedding dimension. Must be in [1, N]. Default: 2.
	NComponents int

	// Radius, when non-nil, switches to radius neighborhoods: every pair
	// within this distance is linked. Must be positive and finite.
	Radius *float64

	// Workers parallelizes the distance and shortest-path row passes.
	// 0 means 1 (sequential). Must be >= 0. Results do not depend on it.
	Workers int

	// PathMethod selects the shortest-path algorithm for geodesic distances.
	// Default: geodesic.MethodFloydWarshall.
	PathMethod geodesic.Method

	// Solver selects the symmetric eigen-solver. Default: mds.SolverLAPACK.
	Solver mds.Solver

	// LogEigenvalues is how many leading eigenvalues are logged at info
	// level. 0 means 5. Must be >= 0.
	LogEigenvalues int

	// Logger receives stage progress (debug), the spectrum (info) and
	// disconnection warnings. Nil discards everything.
	Logger *log.Logger
}

// Defaults.
const (
	DefaultNeighbors      = 7
	DefaultComponents     = 2
	DefaultLogEigenvalues = 5
)

// DefaultConfig returns a Config with k-NN neighborhoods (k=7) and a 2-D
// embedding.
func DefaultConfig() Config {
	return Config{
		NNeighbors:     DefaultNeighbors,
		NComponents:    DefaultComponents,
		Workers:        1,
		PathMethod:     geodesic.MethodFloydWarshall,
		Solver:         mds.SolverLAPACK,
		LogEigenvalues: DefaultLogEigenvalues,
	}
}

// Float64 returns a pointer to v, for Config.Radius literals.
func Float64(v float64) *float64 { return &v }

// validateConfig checks everything that does not depend on the data.
func validateConfig(cfg *Config) error {
	if cfg.Radius != nil {
		r := *cfg.Radius
		if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
			return fmt.Errorf("%w: Radius must be positive and finite, got %v", ErrInvalidConfig, r)
		}
	} else if cfg.NNeighbors < 1 {
		return fmt.Errorf("%w: NNeighbors must be >= 1 when Radius is unset, got %d", ErrInvalidConfig, cfg.NNeighbors)
	}
	if cfg.NComponents < 1 {
		return fmt.Errorf("%w: NComponents must be >= 1, got %d", ErrInvalidConfig, cfg.NComponents)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: Workers must be >= 0, got %d", ErrInvalidConfig, cfg.Workers)
	}
	if cfg.PathMethod != geodesic.MethodFloydWarshall && cfg.PathMethod != geodesic.MethodDijkstra {
		return fmt.Errorf("%w: unknown PathMethod %v", ErrInvalidConfig, cfg.PathMethod)
	}
	if cfg.Solver != mds.SolverLAPACK && cfg.Solver != mds.SolverJacobi {
		return fmt.Errorf("%w: unknown Solver %v", ErrInvalidConfig, cfg.Solver)
	}
	if cfg.LogEigenvalues < 0 {
		return fmt.Errorf("%w: LogEigenvalues must be >= 0, got %d", ErrInvalidConfig, cfg.LogEigenvalues)
	}

	return nil
}

// applyDefaults fills zero values after validation.
func applyDefaults(cfg *Config) {
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	if cfg.LogEigenvalues == 0 {
		cfg.LogEigenvalues = DefaultLogEigenvalues
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
}
