// Package filter implements the outlier filter applied to each group of raw RSSI
// samples before it is reduced to a single representative value.
//
// The filter keeps the samples that lie within one sample standard deviation of
// the group mean. It is a single pass with no weighting or iteration.
package filter

import (
	"fmt"

	"github.com/arloliu/rssifit/stats"
)

// Band is the closed interval [Mean-StdDev, Mean+StdDev] computed from a sample group.
type Band struct {
	Mean   float64
	StdDev float64
	Low    float64
	High   float64
}

// NewBand computes the one-sigma band of samples.
//
// Returns errs.ErrInsufficientData when fewer than two samples are given.
func NewBand[T stats.Real](samples []T) (Band, error) {
	sd, err := stats.StdDev(samples)
	if err != nil {
		return Band{}, err
	}

	mean, err := stats.Mean(samples)
	if err != nil {
		return Band{}, err
	}

	return Band{
		Mean:   mean,
		StdDev: sd,
		Low:    mean - sd,
		High:   mean + sd,
	}, nil
}

// Contains reports whether v lies inside the band, bounds included.
func (b Band) Contains(v float64) bool {
	return v >= b.Low && v <= b.High
}

// String returns a compact representation of the band.
func (b Band) String() string {
	return fmt.Sprintf("[%.3f, %.3f] (mean=%.3f, sd=%.3f)", b.Low, b.High, b.Mean, b.StdDev)
}

// StdDevBand returns the samples lying within one standard deviation of their mean,
// in their original order.
//
// The result may be empty. Callers reducing it further get errs.ErrEmptyInput from
// the stats package rather than a substituted default.
//
// Returns errs.ErrInsufficientData when fewer than two samples are given.
func StdDevBand[T stats.Real](samples []T) ([]T, error) {
	band, err := NewBand(samples)
	if err != nil {
		return nil, err
	}

	return Apply(band, samples), nil
}

// Apply returns the samples that band contains, preserving order.
// The input slice is not modified.
func Apply[T stats.Real](band Band, samples []T) []T {
	kept := make([]T, 0, len(samples))
	for _, s := range samples {
		if band.Contains(float64(s)) {
			kept = append(kept, s)
		}
	}

	return kept
}
