package regression

import "fmt"

// Point is a single observation used for fitting.
type Point struct {
	X float64
	Y float64
}

// Line is the fitted line y = Slope·x + Intercept.
type Line struct {
	// Intercept is the coefficient a.
	Intercept float64
	// Slope is the coefficient b.
	Slope float64
}

// Estimate evaluates the line at x.
func (l Line) Estimate(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// String returns the line as a formula.
func (l Line) String() string {
	return fmt.Sprintf("y = %.4f*x + %.4f", l.Slope, l.Intercept)
}

// Model is a fitted line together with its goodness of fit.
//
// Fields:
//   - Line: The fitted coefficients
//   - N: Number of points the line was fitted to
//   - RSquared: Coefficient of determination (0-1, higher is better)
//   - RMSE: Root mean square error of the residuals (lower is better)
//   - Formula: Human-readable formula
type Model struct {
	// Line holds the fitted coefficients.
	Line Line
	// N is the number of points used in the fit.
	N int
	// RSquared is the coefficient of determination.
	RSquared float64
	// RMSE is the root mean square error.
	RMSE float64
	// Formula is a human-readable representation of the line.
	Formula string
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{N: %d, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.N, m.RSquared, m.RMSE, m.Formula)
}
