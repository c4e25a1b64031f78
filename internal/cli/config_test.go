// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomap/geodesic"
	"github.com/katalvlaran/isomap/isomap"
	"github.com/katalvlaran/isomap/mds"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "isomap.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func parseEmbedFlags(t *testing.T, args ...string) (*embedOpts, *pflag.FlagSet) {
	t.Helper()
	var opts embedOpts
	fs := pflag.NewFlagSet("embed", pflag.ContinueOnError)
	opts.bind(fs)
	require.NoError(t, fs.Parse(args))
	return &opts, fs
}

func TestResolve_Defaults(t *testing.T) {
	opts, fs := parseEmbedFlags(t)
	s, err := opts.resolve(fs, "")
	require.NoError(t, err)
	require.Equal(t, defaultSettings(), s)
	require.Equal(t, isomap.DefaultNeighbors, s.NNeighbors)
	require.Nil(t, s.Radius)
	require.Equal(t, "lapack", s.Solver)
}

func TestResolve_Precedence(t *testing.T) {
	path := writeConfig(t, `
n_neighbors = 4
n_components = 3
radius = 0.5
solver = "jacobi"
path_method = "dijkstra"
image_height = 32
image_width = 16
`)

	// File over defaults.
	opts, fs := parseEmbedFlags(t)
	s, err := opts.resolve(fs, path)
	require.NoError(t, err)
	require.Equal(t, 4, s.NNeighbors)
	require.Equal(t, 3, s.NComponents)
	require.NotNil(t, s.Radius)
	require.Equal(t, 0.5, *s.Radius)
	require.Equal(t, "jacobi", s.Solver)
	require.Equal(t, "dijkstra", s.PathMethod)
	require.Equal(t, 32, s.ImageHeight)
	require.Equal(t, 16, s.ImageWidth)
	require.Equal(t, isomap.DefaultLogEigenvalues, s.LogEigenvalues)

	// Flags over file; untouched flags leave file values alone.
	opts, fs = parseEmbedFlags(t, "-k", "9", "--solver", "lapack", "--path-method", "fw", "-r", "1.5", "--eigenvalues", "3")
	s, err = opts.resolve(fs, path)
	require.NoError(t, err)
	require.Equal(t, 9, s.NNeighbors)
	require.Equal(t, "lapack", s.Solver)
	require.Equal(t, "fw", s.PathMethod)
	require.Equal(t, 1.5, *s.Radius)
	require.Equal(t, 3, s.LogEigenvalues)
	require.Equal(t, 3, s.NComponents)
	require.Equal(t, 32, s.ImageHeight)
}

func TestResolve_ConfigErrors(t *testing.T) {
	opts, fs := parseEmbedFlags(t)

	_, err := opts.resolve(fs, writeConfig(t, "n_neigbors = 3\n"))
	require.ErrorIs(t, err, errUnknownKey)
	require.Contains(t, err.Error(), "n_neigbors")

	_, err = opts.resolve(fs, writeConfig(t, "n_neighbors = \"seven\"\n"))
	require.Error(t, err)

	_, err = opts.resolve(fs, filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSettings_IsomapConfig(t *testing.T) {
	s := defaultSettings()
	s.Solver = "Jacobi"
	s.PathMethod = "dijkstra"
	s.Workers = 3
	logger := log.New(io.Discard)

	cfg, err := s.isomapConfig(logger)
	require.NoError(t, err)
	require.Equal(t, mds.SolverJacobi, cfg.Solver)
	require.Equal(t, geodesic.MethodDijkstra, cfg.PathMethod)
	require.Equal(t, 3, cfg.Workers)
	require.Same(t, logger, cfg.Logger)

	s.Solver = "power"
	_, err = s.isomapConfig(logger)
	require.ErrorIs(t, err, mds.ErrOptionViolation)

	s.Solver = "lapack"
	s.PathMethod = "bellman-ford"
	_, err = s.isomapConfig(logger)
	require.ErrorIs(t, err, geodesic.ErrOptionViolation)
}
