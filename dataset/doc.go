// Package dataset reads and writes RSSI measurement files.
//
// A file holds one record per measured distance:
//
//	distance,rssi1,rssi2,...
//
// The first field is the distance, the remaining fields are integer RSSI samples.
// Blank lines and lines starting with the comment character are skipped, and
// trailing empty fields (as written by spreadsheet exports of ragged rows) are
// ignored.
//
// Files may be compressed; the codec is chosen from the extension (.zst, .sz,
// .lz4) unless WithCompression overrides it. Every loaded Dataset carries the
// xxHash64 fingerprint of its decompressed bytes, so compressed and plain copies
// of the same file share a fingerprint.
//
// # Usage
//
//	ds, err := dataset.Load("campaign/book2.csv.zst", dataset.WithAbsoluteSamples())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	coeffs, err := ds.Estimate()
package dataset
