// Package regression fits straight lines to (x, y) points by ordinary least squares.
//
// The fit is closed-form, not iterative:
//
//	xMean = mean(x); yMean = mean(y)
//	Sxy = Σ(x·y) − N·xMean·yMean
//	Sxx = Σ(x·x) − N·xMean·xMean
//	b = Sxy / Sxx
//	a = yMean − b·xMean
//
// giving the line y = b·x + a.
//
// # Usage
//
// FitLinear returns only the line:
//
//	line, err := regression.FitLinear([]regression.Point{{X: 0, Y: 1}, {X: 1, Y: 3}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(line.Intercept, line.Slope) // 1 2
//
// Fit additionally reports the goodness of fit:
//
//	model, err := regression.Fit(points)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s (R²=%.4f, RMSE=%.4f)\n", model.Formula, model.RSquared, model.RMSE)
//
// # Failure Modes
//
//   - errs.ErrEmptyInput: no points were given
//   - errs.ErrInvalidInput: a coordinate is NaN or infinite
//   - errs.ErrDegenerateInput: all x values are equal, so the slope is undefined
package regression
