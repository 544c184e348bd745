// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvstats/matrix"
)

var (
	sinkVec []float64
	sinkMat matrix.Matrix
)

func BenchmarkColumnMeans(b *testing.B) {
	for _, shape := range [][2]int{{150, 4}, {2000, 64}} {
		X := RandFilledDense(b, shape[0], shape[1], 1)
		b.Run(fmt.Sprintf("%dx%d/fast", shape[0], shape[1]), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkVec, _ = matrix.ColumnMeans(X)
			}
		})
		b.Run(fmt.Sprintf("%dx%d/fallback", shape[0], shape[1]), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkVec, _ = matrix.ColumnMeans(hide{X})
			}
		})
	}
}

func BenchmarkCenterColumns(b *testing.B) {
	X := RandFilledDense(b, 2000, 64, 1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkMat, _, _ = matrix.CenterColumns(X)
	}
}

func BenchmarkColumn(b *testing.B) {
	X := RandFilledDense(b, 2000, 64, 1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkVec, _ = X.Column(i % 64)
	}
}
