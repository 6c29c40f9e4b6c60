package pathloss

import (
	"fmt"
	"math"

	"github.com/arloliu/rssifit/errs"
	"github.com/arloliu/rssifit/filter"
	"github.com/arloliu/rssifit/regression"
	"github.com/arloliu/rssifit/stats"
)

// bandFilter reduces a raw group to the samples that are kept.
type bandFilter func(SampleGroup) (SampleGroup, filter.Band, error)

// Estimate returns the path-loss coefficients for groups measured at distances.
//
// Parameters:
//   - groups: One non-empty sample group per distance
//   - distances: Positive, finite distances paired with groups by index
//
// Returns:
//   - Coefficients: A and n of RSSI(d) = A − 10·n·log10(d)
//   - error: errs.ErrInvalidInput on precondition violations, otherwise the error of
//     the failing step (errs.ErrInsufficientData, errs.ErrEmptyInput, errs.ErrDegenerateInput)
func Estimate(groups []SampleGroup, distances []Distance) (Coefficients, error) {
	res, err := Analyze(groups, distances)
	if err != nil {
		return Coefficients{}, err
	}

	return res.Coefficients, nil
}

// Analyze runs the same pipeline as Estimate and returns the per-group summaries
// and the fitted model along with the coefficients.
//
// No partial result is returned on error.
func Analyze(groups []SampleGroup, distances []Distance) (*Result, error) {
	return analyze(groups, distances, oneSigmaBand)
}

func analyze(groups []SampleGroup, distances []Distance, keep bandFilter) (*Result, error) {
	if err := validate(groups, distances); err != nil {
		return nil, err
	}

	summaries := make([]GroupSummary, len(groups))
	points := make([]regression.Point, len(groups))

	for i, group := range groups {
		kept, band, err := keep(group)
		if err != nil {
			return nil, fmt.Errorf("group %d (distance %v): %w", i, distances[i], err)
		}

		representative, err := stats.GeometricMean(kept)
		if err != nil {
			return nil, fmt.Errorf("group %d (distance %v): %w", i, distances[i], err)
		}

		summaries[i] = GroupSummary{
			Distance:       distances[i],
			LogDistance:    math.Log10(float64(distances[i])),
			Raw:            len(group),
			Kept:           kept,
			Band:           band,
			Representative: representative,
		}
		points[i] = summaries[i].Point()
	}

	model, err := regression.Fit(points)
	if err != nil {
		return nil, err
	}

	return &Result{
		Groups:       summaries,
		Model:        model,
		Coefficients: fromLine(model.Line),
	}, nil
}

// fromLine maps RSSI = b·log10(d) + a onto RSSI = A − 10·n·log10(d).
func fromLine(line regression.Line) Coefficients {
	return Coefficients{
		A: line.Intercept,
		N: line.Slope / -10,
	}
}

func oneSigmaBand(group SampleGroup) (SampleGroup, filter.Band, error) {
	band, err := filter.NewBand(group)
	if err != nil {
		return nil, filter.Band{}, err
	}

	return filter.Apply(band, group), band, nil
}

func validate(groups []SampleGroup, distances []Distance) error {
	if len(groups) != len(distances) {
		return fmt.Errorf("%w: %d sample groups but %d distances", errs.ErrInvalidInput, len(groups), len(distances))
	}

	for i, d := range distances {
		if math.IsNaN(float64(d)) || math.IsInf(float64(d), 0) || d <= 0 {
			return fmt.Errorf("%w: distance %d must be positive and finite, got %v", errs.ErrInvalidInput, i, d)
		}
	}

	for i, g := range groups {
		if len(g) == 0 {
			return fmt.Errorf("%w: sample group %d is empty", errs.ErrInvalidInput, i)
		}
	}

	return nil
}
