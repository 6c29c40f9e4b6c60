package rssifit

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rssifit/dataset"
	"github.com/arloliu/rssifit/errs"
	"github.com/arloliu/rssifit/format"
)

const fieldFile = "dataset/testdata/field.csv"

// TestEstimate verifies the wrapper returns the same coefficients as the pipeline
func TestEstimate(t *testing.T) {
	groups := []SampleGroup{
		{40, 41, 40, 39, 40},
		{46, 46, 47, 46, 45},
		{52, 52, 53, 52, 51},
	}

	coeffs, err := Estimate(groups, []Distance{1, 2, 4})
	require.NoError(t, err)
	require.InDelta(t, 40.0, coeffs.A, 1e-9)
	require.InDelta(t, -1.9932, coeffs.N, 1e-4)

	res, err := Analyze(groups, []Distance{1, 2, 4})
	require.NoError(t, err)
	require.Equal(t, coeffs, res.Coefficients)
}

// TestEstimate_Errors verifies sentinel errors reach the caller unchanged
func TestEstimate_Errors(t *testing.T) {
	_, err := Estimate(nil, nil)
	require.ErrorIs(t, err, errs.ErrEmptyInput)

	_, err = Estimate([]SampleGroup{{40, 41}}, []Distance{1, 2})
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = Estimate([]SampleGroup{{40, 41}, {46, 47}}, []Distance{2, 2})
	require.ErrorIs(t, err, errs.ErrDegenerateInput)
}

// TestEstimateFile verifies file loading feeds the pipeline
func TestEstimateFile(t *testing.T) {
	coeffs, err := EstimateFile(fieldFile)
	require.NoError(t, err)
	require.InDelta(t, 44.8279, coeffs.A, 0.0001)
	require.InDelta(t, -2.2544, coeffs.N, 0.0001)
}

// TestAnalyzeFile_Compressed verifies a packed copy analyzes identically
func TestAnalyzeFile_Compressed(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "field.csv.zst")
	_, err := dataset.Pack(fieldFile, dst, format.CompressionZstd)
	require.NoError(t, err)

	plain, err := AnalyzeFile(fieldFile)
	require.NoError(t, err)
	packed, err := AnalyzeFile(dst)
	require.NoError(t, err)

	require.Equal(t, "field.csv.zst", packed.Dataset.Name)
	require.Equal(t, plain.Result.Coefficients, packed.Result.Coefficients)
	require.Equal(t, plain.Result.Model.RSquared, packed.Result.Model.RSquared)
}

// TestAnalyzeFile_Errors verifies load and pipeline failures are reported with the file name
func TestAnalyzeFile_Errors(t *testing.T) {
	_, err := AnalyzeFile("dataset/testdata/malformed.csv")
	require.ErrorIs(t, err, dataset.ErrMalformedRecord)

	_, err = AnalyzeFile("dataset/testdata/negative.csv")
	require.ErrorIs(t, err, errs.ErrInvalidInput)
	require.Contains(t, err.Error(), "negative.csv")

	report, err := AnalyzeFile("dataset/testdata/negative.csv", dataset.WithAbsoluteSamples())
	require.NoError(t, err)
	require.Len(t, report.Result.Groups, 6)
}
