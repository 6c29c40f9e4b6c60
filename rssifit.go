// Package rssifit estimates log-distance path-loss coefficients from RSSI measurements.
//
// Given groups of RSSI samples recorded at known distances, the pipeline fits
//
//	RSSI(d) = A − 10·n·log10(d)
//
// where A is the signal strength at the reference distance and n is the path-loss
// exponent. Each group is reduced to one representative value before the fit:
//
//  1. Samples outside [mean − σ, mean + σ] are discarded (σ is the sample standard deviation)
//  2. The geometric mean of the surviving samples represents the group
//  3. Ordinary least squares is fitted to (log10 d, representative) pairs
//  4. A is the intercept and n is the slope divided by −10
//
// # Basic Usage
//
// Estimating from in-memory samples:
//
//	groups := []rssifit.SampleGroup{
//	    {44, 46, 44, 44, 43},
//	    {53, 47, 47, 49, 50},
//	    {54, 54, 55, 55, 57},
//	}
//	distances := []rssifit.Distance{1, 2, 3}
//
//	coeffs, err := rssifit.Estimate(groups, distances)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(coeffs) // A = ... n = ...
//
// Estimating from a measurement file (plain or compressed):
//
//	report, err := rssifit.AnalyzeFile("corridor.csv.zst", dataset.WithAbsoluteSamples())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Result.Model)
//
// # Package Structure
//
// This package provides top-level wrappers around the pathloss and dataset packages.
// For per-step access use stats, filter and regression directly.
package rssifit

import (
	"fmt"

	"github.com/arloliu/rssifit/dataset"
	"github.com/arloliu/rssifit/pathloss"
)

type (
	// Sample is one RSSI reading.
	Sample = pathloss.Sample
	// SampleGroup holds the readings taken at one distance.
	SampleGroup = pathloss.SampleGroup
	// Distance is a measurement distance in the caller's unit.
	Distance = pathloss.Distance
	// Coefficients are the fitted A and n.
	Coefficients = pathloss.Coefficients
	// Result is the full outcome of one pipeline run.
	Result = pathloss.Result
)

// Report pairs a loaded dataset with the result of analyzing it.
type Report struct {
	Dataset *dataset.Dataset
	Result  *pathloss.Result
}

// Estimate returns the path-loss coefficients for groups measured at distances.
//
// Parameters:
//   - groups: One non-empty sample group per distance
//   - distances: Positive, finite distances paired with groups by index
//
// Returns:
//   - Coefficients: The fitted A and n
//   - error: A wrapped errs sentinel if any pipeline step fails
func Estimate(groups []SampleGroup, distances []Distance) (Coefficients, error) {
	return pathloss.Estimate(groups, distances)
}

// Analyze is Estimate with per-group summaries and fit quality.
func Analyze(groups []SampleGroup, distances []Distance) (*Result, error) {
	return pathloss.Analyze(groups, distances)
}

// EstimateFile loads the dataset at path and returns its coefficients.
//
// Compression is detected from the extension unless dataset.WithCompression is given.
func EstimateFile(path string, opts ...dataset.Option) (Coefficients, error) {
	report, err := AnalyzeFile(path, opts...)
	if err != nil {
		return Coefficients{}, err
	}

	return report.Result.Coefficients, nil
}

// AnalyzeFile loads the dataset at path and runs the full pipeline over it.
//
// Pipeline errors are wrapped with the dataset name.
func AnalyzeFile(path string, opts ...dataset.Option) (*Report, error) {
	ds, err := dataset.Load(path, opts...)
	if err != nil {
		return nil, err
	}

	res, err := ds.Analyze()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ds.Name, err)
	}

	return &Report{Dataset: ds, Result: res}, nil
}
