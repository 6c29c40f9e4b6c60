package dataset

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/arloliu/rssifit/compress"
	"github.com/arloliu/rssifit/errs"
	"github.com/arloliu/rssifit/format"
)

// Encode writes ds to w in the canonical record format: comma-delimited,
// one record per line, no comments.
func Encode(w io.Writer, ds *Dataset) error {
	if len(ds.Groups) != len(ds.Distances) {
		return fmt.Errorf("%w: %d sample groups but %d distances", errs.ErrInvalidInput, len(ds.Groups), len(ds.Distances))
	}

	bw := bufio.NewWriter(w)
	for i, g := range ds.Groups {
		bw.WriteString(strconv.FormatFloat(float64(ds.Distances[i]), 'g', -1, 64))
		for _, s := range g {
			bw.WriteByte(',')
			bw.WriteString(strconv.Itoa(int(s)))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// Pack loads the dataset at src and writes it to dst in canonical form, compressed
// with compression. opts apply to reading src.
func Pack(src, dst string, compression format.CompressionType, opts ...Option) (compress.Stats, error) {
	ds, err := Load(src, opts...)
	if err != nil {
		return compress.Stats{}, err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, ds); err != nil {
		return compress.Stats{}, fmt.Errorf("%s: %w", src, err)
	}

	out, stats, err := compress.CompressWithStats(compression, buf.Bytes())
	if err != nil {
		return compress.Stats{}, fmt.Errorf("%s: %w", dst, err)
	}

	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return compress.Stats{}, err
	}

	return stats, nil
}
