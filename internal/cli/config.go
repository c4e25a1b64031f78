// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/isomap/dataset"
	"github.com/katalvlaran/isomap/geodesic"
	"github.com/katalvlaran/isomap/isomap"
	"github.com/katalvlaran/isomap/mds"
)

// errUnknownKey is returned for settings files with keys we do not read.
var errUnknownKey = errors.New("unknown settings key")

// settings is the merged run configuration: defaults, then the TOML file,
// then explicitly set flags.
type settings struct {
	NNeighbors     int      `toml:"n_neighbors"`
	NComponents    int      `toml:"n_components"`
	Radius         *float64 `toml:"radius"`
	Workers        int      `toml:"workers"`
	Solver         string   `toml:"solver"`
	PathMethod     string   `toml:"path_method"`
	ImageHeight    int      `toml:"image_height"`
	ImageWidth     int      `toml:"image_width"`
	LogEigenvalues int      `toml:"eigenvalues"`
}

func defaultSettings() settings {
	d := isomap.DefaultConfig()
	return settings{
		NNeighbors:     d.NNeighbors,
		NComponents:    d.NComponents,
		Workers:        d.Workers,
		Solver:         d.Solver.String(),
		PathMethod:     d.PathMethod.String(),
		ImageHeight:    dataset.DefaultHeight,
		ImageWidth:     dataset.DefaultWidth,
		LogEigenvalues: d.LogEigenvalues,
	}
}

// loadSettings decodes path over s. Keys absent from the file keep their
// current values.
func loadSettings(path string, s *settings) error {
	md, err := toml.DecodeFile(path, s)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		keys := make([]string, len(extra))
		for i, k := range extra {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: %w: %s", path, errUnknownKey, strings.Join(keys, ", "))
	}

	return nil
}

// flagValues are the embed flags as parsed; only those marked Changed
// override the settings.
type flagValues struct {
	neighbors   int
	components  int
	radius      float64
	workers     int
	solver      string
	pathMethod  string
	imageHeight int
	imageWidth  int
	eigenvalues int
}

func (f flagValues) apply(fs *pflag.FlagSet, s *settings) {
	if fs.Changed("neighbors") {
		s.NNeighbors = f.neighbors
	}
	if fs.Changed("components") {
		s.NComponents = f.components
	}
	if fs.Changed("radius") {
		r := f.radius
		s.Radius = &r
	}
	if fs.Changed("workers") {
		s.Workers = f.workers
	}
	if fs.Changed("solver") {
		s.Solver = f.solver
	}
	if fs.Changed("path-method") {
		s.PathMethod = f.pathMethod
	}
	if fs.Changed("height") {
		s.ImageHeight = f.imageHeight
	}
	if fs.Changed("width") {
		s.ImageWidth = f.imageWidth
	}
	if fs.Changed("eigenvalues") {
		s.LogEigenvalues = f.eigenvalues
	}
}

// isomapConfig converts s into a pipeline Config logging to logger.
func (s settings) isomapConfig(logger *log.Logger) (isomap.Config, error) {
	solver, err := mds.ParseSolver(s.Solver)
	if err != nil {
		return isomap.Config{}, err
	}
	method, err := geodesic.ParseMethod(s.PathMethod)
	if err != nil {
		return isomap.Config{}, err
	}

	cfg := isomap.DefaultConfig()
	cfg.NNeighbors = s.NNeighbors
	cfg.NComponents = s.NComponents
	cfg.Radius = s.Radius
	cfg.Workers = s.Workers
	cfg.Solver = solver
	cfg.PathMethod = method
	cfg.LogEigenvalues = s.LogEigenvalues
	cfg.Logger = logger

	return cfg, nil
}
