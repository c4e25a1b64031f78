// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/isomap/matrix"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

var (
	// ErrBadLength is returned when the pixel stream does not split into
	// whole images, or is empty.
	ErrBadLength = errors.New("dataset: pixel count is not a multiple of the image size")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dataset: invalid option supplied")
)

// Default image geometry.
const (
	DefaultHeight = 64
	DefaultWidth  = 64
)

const bytesPerPixel = 2

// Option configures Load.
type Option func(*Options)

// Options holds the resolved Load parameters.
type Options struct {
	height, width int
	err           error
}

// WithImageSize sets the image geometry. Both sides must be positive.
func WithImageSize(height, width int) Option {
	return func(o *Options) {
		if height < 1 || width < 1 {
			o.err = fmt.Errorf("%w: image size %dx%d", ErrOptionViolation, height, width)
			return
		}
		o.height, o.width = height, width
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{height: DefaultHeight, width: DefaultWidth}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// Load reads the image stack at path, decompressing by extension
// (".zst" zstd, ".lz4" lz4 frames, anything else raw).
//
// Errors: ErrOptionViolation, ErrBadLength, I/O and decompression errors
// wrapped with the path.
func Load(path string, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("dataset: %s: %w", path, err)
		}
		defer dec.Close()
		r = dec
	case ".lz4":
		r = lz4.NewReader(r)
	}

	x, err := Decode(r, o.height, o.width)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return x, nil
}

// Decode reads height×width uint16 images from r until EOF.
// Row i of the result is image i in row-major pixel order, divided by the
// largest pixel in the whole stream (left as is when that is 0).
func Decode(r io.Reader, height, width int) (*matrix.Dense, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrOptionViolation, height, width)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	pixels := height * width
	if len(raw)%bytesPerPixel != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of uint16 values", ErrBadLength, len(raw))
	}
	count := len(raw) / bytesPerPixel
	if count == 0 || count%pixels != 0 {
		return nil, fmt.Errorf("%w: %d values, image size %dx%d", ErrBadLength, count, height, width)
	}

	data := make([]float64, count)
	var peak uint16
	for i := range data {
		v := binary.LittleEndian.Uint16(raw[i*bytesPerPixel:])
		if v > peak {
			peak = v
		}
		data[i] = float64(v)
	}
	if peak > 0 {
		for i := range data {
			data[i] /= float64(peak)
		}
	}

	x, err := matrix.NewDense(count/pixels, pixels)
	if err != nil {
		return nil, err
	}
	if err = x.Fill(data); err != nil {
		return nil, err
	}

	return x, nil
}
