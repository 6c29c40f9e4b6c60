package pathloss

import (
	"fmt"
	"math"

	"github.com/arloliu/rssifit/filter"
	"github.com/arloliu/rssifit/regression"
)

// Sample is a single raw RSSI reading.
type Sample int

// SampleGroup is the ordered set of samples taken at one distance.
type SampleGroup []Sample

// Distance is the distance at which a sample group was measured, in any consistent unit.
type Distance float64

// Coefficients are the parameters of the path-loss model RSSI(d) = A − 10·N·log10(d).
type Coefficients struct {
	// A is the reference signal strength at unit distance.
	A float64
	// N is the path-loss exponent.
	N float64
}

// RSSI evaluates the model at distance d.
func (c Coefficients) RSSI(d Distance) float64 {
	return c.A - 10*c.N*math.Log10(float64(d))
}

// Distance inverts the model, returning the distance at which rssi is expected.
// The result is +Inf or NaN when N is zero.
func (c Coefficients) Distance(rssi float64) Distance {
	return Distance(math.Pow(10, (c.A-rssi)/(10*c.N)))
}

// String returns the coefficients in the same form the batch driver prints them.
func (c Coefficients) String() string {
	return fmt.Sprintf("A = %.4f n = %.4f", c.A, c.N)
}

// GroupSummary describes how one sample group was reduced to a regression point.
type GroupSummary struct {
	// Distance is the distance of the group.
	Distance Distance
	// LogDistance is log10(Distance), the x coordinate of the point.
	LogDistance float64
	// Raw is the number of samples before filtering.
	Raw int
	// Kept holds the samples that passed the band filter, in input order.
	Kept SampleGroup
	// Band is the one-sigma band used for filtering.
	Band filter.Band
	// Representative is the geometric mean of Kept, the y coordinate of the point.
	Representative float64
}

// Point returns the regression point derived from the group.
func (g GroupSummary) Point() regression.Point {
	return regression.Point{X: g.LogDistance, Y: g.Representative}
}

// Result is the complete outcome of an analysis.
type Result struct {
	// Groups holds one summary per input group, in input order.
	Groups []GroupSummary
	// Model is the fitted line of representative RSSI against log10 distance.
	Model *regression.Model
	// Coefficients are the path-loss coefficients derived from Model.
	Coefficients Coefficients
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.Model == nil {
		return fmt.Sprintf("Result{Groups: %d, Model: nil}", len(r.Groups))
	}

	return fmt.Sprintf("Result{Groups: %d, %s, R²: %.4f}", len(r.Groups), r.Coefficients, r.Model.RSquared)
}
