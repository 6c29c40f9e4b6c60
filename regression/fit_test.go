package regression

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/arloliu/rssifit/errs"
)

var referencePoints = []Point{
	{X: 7.5, Y: 6.7},
	{X: 7.8, Y: 7.0},
	{X: 8.1, Y: 7.4},
	{X: 8.6, Y: 7.7},
	{X: 8.6, Y: 7.6},
}

// TestFitLinear tests the closed-form fit against known coefficients.
func TestFitLinear(t *testing.T) {
	line, err := FitLinear(referencePoints)
	if err != nil {
		t.Fatalf("FitLinear failed: %v", err)
	}

	if math.Abs(line.Intercept-0.411) > 0.001 {
		t.Errorf("Intercept = %f, want 0.411 ± 0.001", line.Intercept)
	}
	if math.Abs(line.Slope-0.846) > 0.001 {
		t.Errorf("Slope = %f, want 0.846 ± 0.001", line.Slope)
	}
}

// TestFitLinearExactLine tests that points on a line are recovered exactly.
func TestFitLinearExactLine(t *testing.T) {
	tests := []struct {
		name      string
		intercept float64
		slope     float64
		xs        []float64
	}{
		{name: "positive slope", intercept: 1, slope: 2, xs: []float64{0, 1, 2, 3}},
		{name: "negative slope", intercept: -40, slope: -20, xs: []float64{0, 0.30103, 0.69897, 1}},
		{name: "two points", intercept: 5, slope: 0.5, xs: []float64{-2, 2}},
		{name: "flat", intercept: 3, slope: 0, xs: []float64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := make([]Point, len(tt.xs))
			for i, x := range tt.xs {
				points[i] = Point{X: x, Y: tt.slope*x + tt.intercept}
			}

			line, err := FitLinear(points)
			if err != nil {
				t.Fatalf("FitLinear failed: %v", err)
			}
			if math.Abs(line.Intercept-tt.intercept) > 1e-9 {
				t.Errorf("Intercept = %v, want %v", line.Intercept, tt.intercept)
			}
			if math.Abs(line.Slope-tt.slope) > 1e-9 {
				t.Errorf("Slope = %v, want %v", line.Slope, tt.slope)
			}
		})
	}
}

// TestFitLinearErrors tests the failure modes.
func TestFitLinearErrors(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   error
	}{
		{name: "nil", points: nil, want: errs.ErrEmptyInput},
		{name: "empty", points: []Point{}, want: errs.ErrEmptyInput},
		{name: "single point", points: []Point{{X: 1, Y: 2}}, want: errs.ErrDegenerateInput},
		{name: "all x zero", points: []Point{{X: 0, Y: 1}, {X: 0, Y: 2}}, want: errs.ErrDegenerateInput},
		{
			name:   "repeated log distance",
			points: []Point{{X: math.Log10(5), Y: 60}, {X: math.Log10(5), Y: 61}, {X: math.Log10(5), Y: 62}},
			want:   errs.ErrDegenerateInput,
		},
		{name: "NaN", points: []Point{{X: 0, Y: 1}, {X: math.NaN(), Y: 2}}, want: errs.ErrInvalidInput},
		{name: "Inf", points: []Point{{X: 0, Y: math.Inf(1)}, {X: 1, Y: 2}}, want: errs.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FitLinear(tt.points)
			if !errors.Is(err, tt.want) {
				t.Errorf("FitLinear error = %v, want %v", err, tt.want)
			}
		})
	}
}

// TestFitLinearNearlyEqualX tests that distinct but nearly equal x values are
// rejected without claiming the points share an x value.
func TestFitLinearNearlyEqualX(t *testing.T) {
	points := []Point{{X: math.Log10(100), Y: 60}, {X: math.Log10(100.0001), Y: 61}}

	_, err := FitLinear(points)
	if !errors.Is(err, errs.ErrDegenerateInput) {
		t.Fatalf("FitLinear error = %v, want %v", err, errs.ErrDegenerateInput)
	}
	if !strings.Contains(err.Error(), "too close to fit a slope") {
		t.Errorf("FitLinear error = %q, want a too-close message", err)
	}
	if strings.Contains(err.Error(), "share") {
		t.Errorf("FitLinear error = %q claims the x values are equal", err)
	}
}

// TestFitLinearDeterministic tests that repeated fits are bit-identical.
func TestFitLinearDeterministic(t *testing.T) {
	first, err := FitLinear(referencePoints)
	if err != nil {
		t.Fatalf("FitLinear failed: %v", err)
	}

	for range 10 {
		again, err := FitLinear(referencePoints)
		if err != nil {
			t.Fatalf("FitLinear failed: %v", err)
		}
		if math.Float64bits(again.Intercept) != math.Float64bits(first.Intercept) ||
			math.Float64bits(again.Slope) != math.Float64bits(first.Slope) {
			t.Fatalf("FitLinear not deterministic: %v vs %v", again, first)
		}
	}
}

// TestFit tests goodness-of-fit reporting.
func TestFit(t *testing.T) {
	model, err := Fit(referencePoints)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if model.N != len(referencePoints) {
		t.Errorf("N = %d, want %d", model.N, len(referencePoints))
	}
	if math.Abs(model.RSquared-0.9583) > 0.0001 {
		t.Errorf("RSquared = %f, want 0.9583", model.RSquared)
	}
	if math.Abs(model.RMSE-0.0768) > 0.0001 {
		t.Errorf("RMSE = %f, want 0.0768", model.RMSE)
	}
	if model.Formula != "y = 0.8460*x + 0.4105" {
		t.Errorf("Formula = %q", model.Formula)
	}
}

// TestFitPerfectLine tests R² and RMSE on noise-free data.
func TestFitPerfectLine(t *testing.T) {
	model, err := Fit([]Point{{X: 0, Y: -40}, {X: 1, Y: -60}, {X: 2, Y: -80}})
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if math.Abs(model.RSquared-1) > 1e-12 {
		t.Errorf("RSquared = %v, want 1", model.RSquared)
	}
	if model.RMSE > 1e-9 {
		t.Errorf("RMSE = %v, want 0", model.RMSE)
	}
}

// TestFitFlatObservations tests that R² is reported as 0 when y has no variance.
func TestFitFlatObservations(t *testing.T) {
	model, err := Fit([]Point{{X: 0, Y: 7}, {X: 1, Y: 7}, {X: 2, Y: 7}})
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if model.RSquared != 0 {
		t.Errorf("RSquared = %v, want 0", model.RSquared)
	}
	if model.Line.Slope != 0 {
		t.Errorf("Slope = %v, want 0", model.Line.Slope)
	}
}

// TestFitPropagatesErrors tests that Fit returns the FitLinear error unchanged.
func TestFitPropagatesErrors(t *testing.T) {
	model, err := Fit(nil)
	if !errors.Is(err, errs.ErrEmptyInput) {
		t.Errorf("Fit error = %v, want ErrEmptyInput", err)
	}
	if model != nil {
		t.Errorf("Fit returned a model on error: %v", model)
	}
}

// TestLineEstimate tests evaluation of a fitted line.
func TestLineEstimate(t *testing.T) {
	line := Line{Intercept: -40, Slope: -20}

	if got := line.Estimate(0); got != -40 {
		t.Errorf("Estimate(0) = %v, want -40", got)
	}
	if got := line.Estimate(1); got != -60 {
		t.Errorf("Estimate(1) = %v, want -60", got)
	}
}
