// Package stats provides the descriptive statistics used by the path-loss pipeline:
// arithmetic mean, Bessel-corrected sample standard deviation and geometric mean.
//
// All functions are pure and return an error from the errs package instead of
// producing NaN or infinity on inputs where the statistic is undefined.
package stats

import (
	"fmt"
	"math"

	"github.com/arloliu/rssifit/errs"
)

// Integer is the set of integer kinds accepted by GeometricMean.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Real is the set of numeric kinds accepted by Mean and StdDev.
type Real interface {
	Integer | ~float32 | ~float64
}

// Mean returns the arithmetic mean of values.
//
// Returns errs.ErrEmptyInput when values is empty.
func Mean[T Real](values []T) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: mean of zero values", errs.ErrEmptyInput)
	}

	sum := 0.0
	for _, v := range values {
		sum += float64(v)
	}

	return sum / float64(len(values)), nil
}

// StdDev returns the sample standard deviation of values, dividing the sum of
// squared deviations by N-1.
//
// Returns errs.ErrInsufficientData when fewer than two values are given.
func StdDev[T Real](values []T) (float64, error) {
	if len(values) < 2 {
		return 0, fmt.Errorf("%w: standard deviation needs at least 2 values, got %d",
			errs.ErrInsufficientData, len(values))
	}

	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}

	ss := 0.0
	for _, v := range values {
		d := float64(v) - mean
		ss += d * d
	}

	return math.Sqrt(ss / float64(len(values)-1)), nil
}

// GeometricMean returns the Nth root of the product of N non-negative values.
//
// The product is never formed: the result is computed as exp(mean(ln x)), which
// cannot overflow for long sequences. A zero value makes the result 0.
//
// Returns errs.ErrEmptyInput for an empty slice and errs.ErrInvalidInput when a
// value is negative.
func GeometricMean[T Integer](values []T) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: geometric mean of zero values", errs.ErrEmptyInput)
	}

	logSum := 0.0
	zero := false
	for i, v := range values {
		if v < 0 {
			return 0, fmt.Errorf("%w: geometric mean of negative value %d at index %d",
				errs.ErrInvalidInput, int64(v), i)
		}
		if v == 0 {
			zero = true
			continue
		}
		logSum += math.Log(float64(v))
	}

	if zero {
		return 0, nil
	}

	return math.Exp(logSum / float64(len(values))), nil
}
