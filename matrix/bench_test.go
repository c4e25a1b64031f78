// Package matrix_test provides benchmarks for the kernels used by the
// embedding pipeline, using deterministic random fill for Dense matrices.
package matrix_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/isomap/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV []float64
)

func BenchmarkDoubleCenter(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randomSymmetric(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.DoubleCenter(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkFloydWarshall(b *testing.B) {
	for _, workers := range []int{1, 4} {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("n=%d/workers=%d", n, workers), func(b *testing.B) {
				src := MustDense(b, n, n)
				fillDenseRand(b, src, 99)
				for i := 0; i < n; i++ {
					row := src.RawRow(i)
					for j := range row {
						if row[j] < 0 {
							row[j] = -row[j]
						}
					}
					row[i] = 0
				}
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					d := src.Clone().(*matrix.Dense)
					if err := matrix.FloydWarshallParallel(context.Background(), d, workers); err != nil {
						b.Fatal(err)
					}
					sinkM = d
				}
			})
		}
	}
}

func BenchmarkEigen(b *testing.B) {
	for _, n := range []int{32, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomSymmetric(b, n, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				vals, _, err := matrix.Eigen(a, 1e-10, 100)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = vals
			}
		})
	}
}
