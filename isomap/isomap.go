// SPDX-License-Identifier: MIT

package isomap

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/isomap/connectivity"
	"github.com/katalvlaran/isomap/distance"
	"github.com/katalvlaran/isomap/geodesic"
	"github.com/katalvlaran/isomap/matrix"
	"github.com/katalvlaran/isomap/mds"
	"github.com/katalvlaran/isomap/mst"
	"github.com/katalvlaran/isomap/neighbors"
)

// Result is the outcome of Run.
type Result struct {
	// Embedding is N×NComponents, rows aligned with the input samples.
	Embedding *matrix.Dense

	// Eigenvalues is the full spectrum of the centered Gram matrix, length N,
	// descending.
	Eigenvalues []float64

	// ExplainedVariance is each embedding dimension's share of the positive
	// spectrum.
	ExplainedVariance []float64

	// Connectivity reports how much of the neighborhood graph node 0 reaches.
	Connectivity connectivity.Report

	// Stress is Kruskal's stress-1 of the embedding against the geodesic
	// distances.
	Stress float64
}

// Run embeds the rows of x with ISOMAP.
//
// Stages, in order: pairwise distances → neighborhood graph → connectivity
// check → geodesic distances → classical MDS. A disconnected graph is logged
// as a warning. Unreachable pairs have no finite geodesic distance, so the run
// then fails in the MDS stage with a *DisconnectedError carrying the
// connectivity report and a radius hint; it matches mds.ErrNonFinite.
//
// ctx is checked between stages and inside the shortest-path stage.
//
// Errors:
//   - ErrInvalidConfig (including NComponents > N).
//   - matrix.ErrNilMatrix, matrix.ErrBadShape, matrix.ErrNaNInf (input).
//   - *DisconnectedError wrapping *mds.UnreachableError (disconnected graph).
//   - Stage errors, wrapped with the stage name.
//   - ctx.Err() on cancellation.
func Run(ctx context.Context, x matrix.Matrix, cfg Config) (*Result, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if err := matrix.ValidateNonEmpty(x); err != nil {
		return nil, fmt.Errorf("isomap: samples: %w", err)
	}
	n := x.Rows()
	if cfg.NComponents > n {
		return nil, fmt.Errorf("%w: NComponents %d exceeds sample count %d", ErrInvalidConfig, cfg.NComponents, n)
	}
	applyDefaults(&cfg)
	logger := cfg.Logger

	start := time.Now()
	d, err := stage(ctx, "distances", func() (*matrix.Dense, error) {
		return distance.Pairwise(x, distance.WithWorkers(cfg.Workers))
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("distances", "samples", n, "features", x.Cols(), "elapsed", since(start))

	start = time.Now()
	g, err := stage(ctx, "neighborhood graph", func() (*neighbors.Graph, error) {
		opts := []neighbors.Option{neighbors.WithNeighbors(cfg.NNeighbors)}
		if cfg.Radius != nil {
			opts = []neighbors.Option{neighbors.WithRadius(*cfg.Radius)}
		}
		return neighbors.Build(d, opts...)
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("neighborhood graph", "mode", g.Mode(), "edges", g.EdgeCount(), "elapsed", since(start))

	rep, err := stage(ctx, "connectivity", func() (connectivity.Report, error) {
		return connectivity.Check(ctx, g)
	})
	if err != nil {
		return nil, err
	}
	var hint float64
	if rep.Connected {
		logger.Debug("neighborhood graph is connected", "reached", rep.Reached, "total", rep.Total, "hops", rep.Hops)
	} else {
		logger.Warn("neighborhood graph is disconnected",
			"reached", rep.Reached, "total", rep.Total, "components", rep.Components)
		if tree, err := mst.Prim(d); err == nil {
			hint = tree.Longest()
			logger.Warn("smallest connecting radius", "radius_hint", hint)
		}
	}

	start = time.Now()
	geo, err := stage(ctx, "geodesic distances", func() (*matrix.Dense, error) {
		return geodesic.Solve(g,
			geodesic.WithMethod(cfg.PathMethod),
			geodesic.WithWorkers(cfg.Workers),
			geodesic.WithContext(ctx))
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("geodesic distances", "method", cfg.PathMethod, "unreachable", geodesic.UnreachablePairs(geo), "elapsed", since(start))

	start = time.Now()
	emb, err := stage(ctx, "mds", func() (*mds.Result, error) {
		return mds.Embed(geo, cfg.NComponents, mds.WithSolver(cfg.Solver))
	})
	if err != nil && !rep.Connected {
		return nil, &DisconnectedError{Report: rep, RadiusHint: hint, Err: err}
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("mds", "solver", emb.Solver, "components", cfg.NComponents, "elapsed", since(start))

	top := min(cfg.LogEigenvalues, len(emb.Eigenvalues))
	logger.Info("leading eigenvalues", "values", emb.Eigenvalues[:top])

	stress, err := emb.Stress(geo)
	if err != nil {
		return nil, fmt.Errorf("isomap: stress: %w", err)
	}

	return &Result{
		Embedding:         emb.Embedding,
		Eigenvalues:       emb.Eigenvalues,
		ExplainedVariance: emb.ExplainedVariance(),
		Connectivity:      rep,
		Stress:            stress,
	}, nil
}

// RunSlices is Run over a [][]float64 sample table.
// Errors: ErrRaggedInput (also matching matrix.ErrBadShape), plus Run's errors.
func RunSlices(ctx context.Context, rows [][]float64, cfg Config) (*Result, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("isomap: samples: %w", matrix.ErrBadShape)
	}
	for i, r := range rows {
		if len(r) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %d has %d features, row 0 has %d: %w",
				ErrRaggedInput, i, len(r), len(rows[0]), matrix.ErrBadShape)
		}
	}
	x, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("isomap: samples: %w", err)
	}

	return Run(ctx, x, cfg)
}

// stage checks for cancellation, runs fn and tags its error with name.
func stage[T any](ctx context.Context, name string, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("isomap: before %s: %w", name, err)
	}
	out, err := fn()
	if err != nil {
		return zero, fmt.Errorf("isomap: %s: %w", name, err)
	}

	return out, nil
}

func since(t time.Time) time.Duration {
	return time.Since(t).Round(time.Microsecond)
}
