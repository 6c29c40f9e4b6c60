package dataset

import (
	"errors"

	"github.com/arloliu/rssifit/internal/hash"
	"github.com/arloliu/rssifit/pathloss"
)

// ErrMalformedRecord is returned when a record cannot be parsed.
var ErrMalformedRecord = errors.New("malformed record")

// Dataset is one measurement file: sample groups paired with distances by index.
type Dataset struct {
	// Name identifies the dataset, normally the base name of its file.
	Name string
	// Groups holds the raw samples of each record, in file order.
	Groups []pathloss.SampleGroup
	// Distances holds the distance of each record, in file order.
	Distances []pathloss.Distance
	// Fingerprint is the xxHash64 of the decompressed file contents.
	Fingerprint uint64
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.Groups)
}

// Samples returns the total number of samples across all groups.
func (d *Dataset) Samples() int {
	total := 0
	for _, g := range d.Groups {
		total += len(g)
	}

	return total
}

// FingerprintHex returns the fingerprint as 16 hex digits.
func (d *Dataset) FingerprintHex() string {
	return hash.Hex(d.Fingerprint)
}

// Estimate runs the path-loss pipeline over the dataset.
func (d *Dataset) Estimate() (pathloss.Coefficients, error) {
	return pathloss.Estimate(d.Groups, d.Distances)
}

// Analyze runs the path-loss pipeline over the dataset and returns the full result.
func (d *Dataset) Analyze() (*pathloss.Result, error) {
	return pathloss.Analyze(d.Groups, d.Distances)
}
