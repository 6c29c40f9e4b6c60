package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/rssifit/errs"
)

// degenerateTolerance is the relative size, against Σx², below which Sxx is treated
// as zero. Equal x values can leave a rounding residue in Sxx instead of an exact zero.
const degenerateTolerance = 1e-12

// FitLinear fits y = b·x + a to points by ordinary least squares.
//
// Parameters:
//   - points: Observations to fit (at least two distinct x values)
//
// Returns:
//   - Line: The fitted intercept (a) and slope (b)
//   - error: errs.ErrEmptyInput, errs.ErrInvalidInput or errs.ErrDegenerateInput
func FitLinear(points []Point) (Line, error) {
	n := len(points)
	if n == 0 {
		return Line{}, fmt.Errorf("%w: no points to fit", errs.ErrEmptyInput)
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return Line{}, fmt.Errorf("%w: point %d is not finite (%v, %v)", errs.ErrInvalidInput, i, p.X, p.Y)
		}
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumX2 += p.X * p.X
	}

	meanX := sumX / float64(n)
	meanY := sumY / float64(n)
	sxy := sumXY - float64(n)*meanX*meanY
	sxx := sumX2 - float64(n)*meanX*meanX

	if sxx <= 0 {
		return Line{}, fmt.Errorf("%w: all %d points share x=%v, slope is undefined",
			errs.ErrDegenerateInput, n, points[0].X)
	}
	if sxx <= degenerateTolerance*sumX2 {
		return Line{}, fmt.Errorf("%w: x values of %d points are too close to fit a slope (Sxx=%g)",
			errs.ErrDegenerateInput, n, sxx)
	}

	b := sxy / sxx
	a := meanY - b*meanX

	return Line{Intercept: a, Slope: b}, nil
}

// Fit fits a line to points like FitLinear and reports R² and RMSE of the fit.
func Fit(points []Point) (*Model, error) {
	line, err := FitLinear(points)
	if err != nil {
		return nil, err
	}

	observed := make([]float64, len(points))
	predicted := make([]float64, len(points))
	for i, p := range points {
		observed[i] = p.Y
		predicted[i] = line.Estimate(p.X)
	}

	return &Model{
		Line:     line,
		N:        len(points),
		RSquared: calculateRSquared(observed, predicted),
		RMSE:     calculateRMSE(observed, predicted),
		Formula:  line.String(),
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
