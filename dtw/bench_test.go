package dtw_test

import (
	"testing"

	"github.com/katalvlaran/tswarp/dtw"
	"github.com/katalvlaran/tswarp/signal"
)

// benchmarkDTW runs Align or Distance on chirps of lengths n and m.
func benchmarkDTW(b *testing.B, n, m int, full bool, opts ...dtw.Option) {
	x := dtw.Univariate(signal.Chirp(n, 1))
	y := dtw.Univariate(signal.Chirp(m, 2))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		if full {
			_, err = dtw.Align(x, y, dtw.SquaredEuclidean, opts...)
		} else {
			_, err = dtw.Distance(x, y, dtw.SquaredEuclidean, opts...)
		}
		if err != nil {
			b.Fatalf("dtw failed: %v", err)
		}
	}
}

func BenchmarkAlign_100(b *testing.B)    { benchmarkDTW(b, 100, 100, true) }
func BenchmarkAlign_500(b *testing.B)    { benchmarkDTW(b, 500, 500, true) }
func BenchmarkDistance_100(b *testing.B) { benchmarkDTW(b, 100, 100, false) }
func BenchmarkDistance_500(b *testing.B) { benchmarkDTW(b, 500, 500, false) }

// BenchmarkDistance_500Window10 shows the O(n·w) banded fill.
func BenchmarkDistance_500Window10(b *testing.B) {
	benchmarkDTW(b, 500, 500, false, dtw.WithWindow(10))
}

// BenchmarkAlign_Multivariate3 aligns three-channel sequences.
func BenchmarkAlign_Multivariate3(b *testing.B) {
	x, _ := dtw.Stack(signal.Chirp(200, 1), signal.Pulse(200, 1), signal.RandomWalk(200, 1))
	y, _ := dtw.Stack(signal.Chirp(220, 2), signal.Pulse(220, 2), signal.RandomWalk(220, 2))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dtw.Align(x, y, dtw.Euclidean); err != nil {
			b.Fatal(err)
		}
	}
}
