package regression

import "testing"

func BenchmarkFitLinear(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = FitLinear(referencePoints)
	}
}

func BenchmarkFit(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Fit(referencePoints)
	}
}
