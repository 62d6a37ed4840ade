package stats

import (
	"testing"

	"github.com/quantpipe/ta/series"
)

/*
   Windowed-primitive benchmarks
   -----------------------------
   Each primitive is benchmarked over a 10k-sample series for a small (5),
   medium (20) and large (200) window, measuring one full batch pass.
*/

func benchmarkPrimitive(b *testing.B, period int, fn func(series.Series, int) (series.Series, error)) {
	s := randomSeries(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fn(s, period); err != nil {
			b.Fatalf("primitive failed: %v", err)
		}
	}
}

func BenchmarkRollingMean_5(b *testing.B)   { benchmarkPrimitive(b, 5, RollingMean) }
func BenchmarkRollingMean_20(b *testing.B)  { benchmarkPrimitive(b, 20, RollingMean) }
func BenchmarkRollingMean_200(b *testing.B) { benchmarkPrimitive(b, 200, RollingMean) }

func BenchmarkRollingStd_20(b *testing.B)  { benchmarkPrimitive(b, 20, RollingStd) }
func BenchmarkRollingStd_200(b *testing.B) { benchmarkPrimitive(b, 200, RollingStd) }

func BenchmarkRollingMin_20(b *testing.B) { benchmarkPrimitive(b, 20, RollingMin) }
func BenchmarkRollingMax_20(b *testing.B) { benchmarkPrimitive(b, 20, RollingMax) }

func BenchmarkEWM_20(b *testing.B)  { benchmarkPrimitive(b, 20, EWM) }
func BenchmarkEWM_200(b *testing.B) { benchmarkPrimitive(b, 200, EWM) }
