// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/isomap/dataset"
	"github.com/katalvlaran/isomap/isomap"
)

// embedOpts holds the embed flags that are not pipeline settings.
type embedOpts struct {
	output string
	format string
	flags  flagValues
}

// newEmbedCmd creates the embed command. Without a data-file argument the
// file is located with dataset.Find from the working directory.
func newEmbedCmd(root *rootOpts) *cobra.Command {
	var opts embedOpts

	cmd := &cobra.Command{
		Use:   "embed [data-file]",
		Short: "Embed an image stack with ISOMAP",
		Long: `Embed loads little-endian uint16 images (raw, .zst or .lz4), builds the
neighborhood graph, computes geodesic distances and writes the classical MDS
embedding. Flags override values from --config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.resolve(cmd.Flags(), root.configPath)
			if err != nil {
				return err
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return runEmbed(cmd, s, path, opts)
		},
	}
	opts.bind(cmd.Flags())

	return cmd
}

func (o *embedOpts) bind(f *pflag.FlagSet) {
	d := defaultSettings()
	f.IntVarP(&o.flags.neighbors, "neighbors", "k", d.NNeighbors, "neighbors per sample in the k-NN graph")
	f.IntVarP(&o.flags.components, "components", "d", d.NComponents, "embedding dimension")
	f.Float64VarP(&o.flags.radius, "radius", "r", 0, "link all pairs within this distance instead of k-NN")
	f.IntVar(&o.flags.workers, "workers", d.Workers, "goroutines for distance and shortest-path passes")
	f.StringVar(&o.flags.solver, "solver", d.Solver, "eigen-solver: lapack or jacobi")
	f.StringVar(&o.flags.pathMethod, "path-method", d.PathMethod, "shortest paths: fw or dijkstra")
	f.IntVar(&o.flags.imageHeight, "height", d.ImageHeight, "image height in pixels")
	f.IntVar(&o.flags.imageWidth, "width", d.ImageWidth, "image width in pixels")
	f.IntVar(&o.flags.eigenvalues, "eigenvalues", d.LogEigenvalues, "leading eigenvalues to log")
	f.StringVarP(&o.output, "output", "o", "", "output file (default stdout)")
	f.StringVar(&o.format, "format", formatCSV, "output format: csv or json")
}

// resolve merges defaults, the settings file at configPath (if any) and the
// flags the user set, in that order.
func (o *embedOpts) resolve(f *pflag.FlagSet, configPath string) (settings, error) {
	s := defaultSettings()
	if configPath != "" {
		if err := loadSettings(configPath, &s); err != nil {
			return settings{}, err
		}
	}
	o.flags.apply(f, &s)

	return s, nil
}

func runEmbed(cmd *cobra.Command, s settings, path string, opts embedOpts) error {
	if opts.format != formatCSV && opts.format != formatJSON {
		return fmt.Errorf("unknown format %q (want %s or %s)", opts.format, formatCSV, formatJSON)
	}

	ctx := cmd.Context()
	runID := uuid.NewString()
	logger := loggerFromContext(ctx).WithPrefix(runID[:8])

	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		if path, err = dataset.Find(wd); err != nil {
			return err
		}
	}

	x, err := dataset.Load(path, dataset.WithImageSize(s.ImageHeight, s.ImageWidth))
	if err != nil {
		return err
	}
	logger.Info("loaded samples", "path", path, "samples", x.Rows(), "features", x.Cols())

	cfg, err := s.isomapConfig(logger)
	if err != nil {
		return err
	}
	res, err := isomap.Run(ctx, x, cfg)
	var de *isomap.DisconnectedError
	if errors.As(err, &de) && de.RadiusHint > 0 {
		return fmt.Errorf("%w (try --radius %v or a larger --neighbors)", err, de.RadiusHint)
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		return writeEmbedding(cmd.OutOrStdout(), opts.format, runID, path, res)
	}
	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	err = writeAndClose(f, func(w io.Writer) error {
		return writeEmbedding(w, opts.format, runID, path, res)
	})
	if err != nil {
		return err
	}
	logger.Info("wrote embedding", "path", opts.output, "format", opts.format, "stress", res.Stress)

	return nil
}

func writeEmbedding(w io.Writer, format, runID, source string, res *isomap.Result) error {
	var err error
	switch format {
	case formatJSON:
		err = writeJSON(w, newReport(runID, source, res))
	default:
		err = writeCSV(w, res)
	}
	if err != nil {
		return fmt.Errorf("write embedding: %w", err)
	}

	return nil
}

// writeAndClose runs write against wc and then closes it. The write error
// takes precedence over the close error.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	werr := write(wc)
	cerr := wc.Close()
	if werr != nil {
		return werr
	}
	if cerr != nil {
		return fmt.Errorf("close output: %w", cerr)
	}

	return nil
}
