// Package pathloss estimates the coefficients of the log-distance path-loss model
//
//	RSSI(d) = A − 10·n·log10(d)
//
// from groups of raw RSSI samples measured at known distances.
//
// # Pipeline
//
// For every distance group:
//
//  1. Drop samples outside one sample standard deviation of the group mean (filter.StdDevBand)
//  2. Reduce the survivors to their geometric mean (stats.GeometricMean)
//  3. Pair that value with log10 of the distance
//
// The resulting points are fitted by ordinary least squares (regression.Fit), giving
// RSSI = b·log10(d) + a, so A = a and n = −b/10.
//
// # Usage
//
//	groups := []pathloss.SampleGroup{
//	    {40, 41, 40, 39, 40},
//	    {46, 46, 47, 46, 45},
//	    {52, 52, 53, 52, 51},
//	}
//	distances := []pathloss.Distance{1, 2, 4}
//
//	coeffs, err := pathloss.Estimate(groups, distances)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("A = %.2f, n = %.2f\n", coeffs.A, coeffs.N)
//
// Analyze runs the same pipeline and also returns per-group diagnostics and the
// goodness of fit.
//
// Samples must be non-negative. Readings recorded as negative dBm are expected to
// be given as magnitudes; see dataset.WithAbsoluteSamples.
//
// All functions are pure: they hold no state between calls and may be called
// concurrently on independent inputs.
package pathloss
