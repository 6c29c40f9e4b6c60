package stats

import "testing"

func BenchmarkStdDev(b *testing.B) {
	values := []int{72, 69, 78, 73, 74, 72, 76, 69, 70, 69, 68, 65, 63, 72, 68}

	b.ReportAllocs()
	for b.Loop() {
		_, _ = StdDev(values)
	}
}

func BenchmarkGeometricMean(b *testing.B) {
	values := []int{72, 69, 78, 73, 74, 72, 76, 69, 70, 69, 68, 65, 63, 72, 68}

	b.ReportAllocs()
	for b.Loop() {
		_, _ = GeometricMean(values)
	}
}
