// SPDX-License-Identifier: MIT

package dataset_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/isomap/dataset"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
)

// pixels encodes vs as little-endian uint16.
func pixels(vs ...uint16) []byte {
	buf := make([]byte, 2*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint16(buf[2*i:], v)
	}

	return buf
}

// twoImages is two 2×3 images with peak 600.
var twoImages = []uint16{0, 150, 300, 600, 60, 30, 600, 0, 0, 300, 300, 150}

func requireTwoImages(t *testing.T, rows [][]float64) {
	t.Helper()
	require.Len(t, rows, 2)
	require.Equal(t, []float64{0, 0.25, 0.5, 1, 0.1, 0.05}, rows[0])
	require.Equal(t, []float64{1, 0, 0, 0.5, 0.5, 0.25}, rows[1])
}

func TestDecode(t *testing.T) {
	t.Parallel()

	x, err := dataset.Decode(bytes.NewReader(pixels(twoImages...)), 2, 3)
	require.NoError(t, err)
	requireTwoImages(t, x.ToRows())
}

func TestDecode_AllZero(t *testing.T) {
	t.Parallel()

	x, err := dataset.Decode(bytes.NewReader(pixels(0, 0, 0, 0)), 1, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0}, {0, 0}}, x.ToRows())
}

func TestDecode_BadLength(t *testing.T) {
	t.Parallel()

	for name, raw := range map[string][]byte{
		"empty":         nil,
		"odd byte":      {1, 2, 3},
		"partial image": pixels(1, 2, 3, 4, 5),
	} {
		_, err := dataset.Decode(bytes.NewReader(raw), 2, 2)
		require.ErrorIs(t, err, dataset.ErrBadLength, name)
	}

	_, err := dataset.Decode(bytes.NewReader(pixels(1)), 0, 1)
	require.ErrorIs(t, err, dataset.ErrOptionViolation)
}

func writeFile(t *testing.T, name string, compress func(io.Writer) io.WriteCloser) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	var w io.WriteCloser = f
	if compress != nil {
		w = compress(f)
	}
	_, err = w.Write(pixels(twoImages...))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	if compress != nil {
		require.NoError(t, f.Close())
	}

	return path
}

func TestLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := map[string]func(io.Writer) io.WriteCloser{
		"faces.dat": nil,
		"faces.zst": func(w io.Writer) io.WriteCloser {
			enc, err := zstd.NewWriter(w)
			require.NoError(t, err)
			return enc
		},
		"faces.lz4": func(w io.Writer) io.WriteCloser {
			return lz4.NewWriter(w)
		},
	}
	for name, compress := range cases {
		path := writeFile(t, name, compress)
		x, err := dataset.Load(path, dataset.WithImageSize(2, 3))
		require.NoError(t, err, name)
		requireTwoImages(t, x.ToRows())
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "faces.dat", nil)

	// 12 values do not split into 64×64 images.
	_, err := dataset.Load(path)
	require.ErrorIs(t, err, dataset.ErrBadLength)
	require.Contains(t, err.Error(), path)

	_, err = dataset.Load(path, dataset.WithImageSize(-1, 3))
	require.ErrorIs(t, err, dataset.ErrOptionViolation)

	_, err = dataset.Load(filepath.Join(t.TempDir(), "missing.dat"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFind_Order(t *testing.T) {
	root := t.TempDir()
	base := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(base, 0o755))
	t.Setenv(dataset.EnvPath, "")

	_, err := dataset.Find(base)
	require.ErrorIs(t, err, dataset.ErrNotFound)

	touch := func(p string) string {
		require.NoError(t, os.WriteFile(p, pixels(1), 0o644))
		return p
	}

	grand := touch(filepath.Join(root, dataset.FileName))
	got, err := dataset.Find(base)
	require.NoError(t, err)
	require.Equal(t, grand, got)

	parent := touch(filepath.Join(root, "a", dataset.FileName))
	got, err = dataset.Find(base)
	require.NoError(t, err)
	require.Equal(t, parent, got)

	local := touch(filepath.Join(base, dataset.FileName))
	got, err = dataset.Find(base)
	require.NoError(t, err)
	require.Equal(t, local, got)

	env := touch(filepath.Join(root, "elsewhere.dat"))
	t.Setenv(dataset.EnvPath, env)
	got, err = dataset.Find(base)
	require.NoError(t, err)
	require.Equal(t, env, got)

	// A directory named like the data file is skipped.
	t.Setenv(dataset.EnvPath, root)
	got, err = dataset.Find(base)
	require.NoError(t, err)
	require.Equal(t, local, got)
}

func TestCandidates(t *testing.T) {
	t.Setenv(dataset.EnvPath, "/data/faces.dat")

	got := dataset.Candidates(filepath.Join("/srv", "app", "bin"))
	require.Equal(t, []string{
		"/data/faces.dat",
		filepath.Join("/srv", "app", "bin", dataset.FileName),
		filepath.Join("/srv", "app", dataset.FileName),
		filepath.Join("/srv", dataset.FileName),
	}, got)
}
