package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arloliu/rssifit/compress"
	"github.com/arloliu/rssifit/format"
	"github.com/arloliu/rssifit/internal/hash"
	"github.com/arloliu/rssifit/pathloss"
)

// Parse reads an uncompressed dataset from r.
//
// The returned Dataset has an empty Name; callers may set it.
func Parse(r io.Reader, opts ...Option) (*Dataset, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	return parse(data, cfg)
}

// Load reads the dataset file at path, decompressing it if needed.
func Load(path string, opts ...Option) (*Dataset, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	ds, err := load(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

func load(path string, cfg config) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ct := cfg.compression
	if cfg.detect {
		ct = format.CompressionFromPath(path)
	}

	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	data, err := codec.Decompress(raw)
	if err != nil {
		return nil, err
	}

	ds, err := parse(data, cfg)
	if err != nil {
		return nil, err
	}
	ds.Name = filepath.Base(path)

	return ds, nil
}

func parse(data []byte, cfg config) (*Dataset, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = cfg.delimiter
	cr.Comment = cfg.comment
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	ds := &Dataset{Fingerprint: hash.Fingerprint(data)}

	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}

		line, _ := cr.FieldPos(0)
		distance, group, err := parseRecord(trimTrailingEmpty(fields), cfg.absolute)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedRecord, line, err)
		}

		ds.Distances = append(ds.Distances, distance)
		ds.Groups = append(ds.Groups, group)
	}

	return ds, nil
}

func parseRecord(fields []string, absolute bool) (pathloss.Distance, pathloss.SampleGroup, error) {
	if len(fields) == 0 {
		return 0, nil, errors.New("record has no fields")
	}

	d, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return 0, nil, fmt.Errorf("distance %q: %w", fields[0], err)
	}

	group := make(pathloss.SampleGroup, 0, len(fields)-1)
	for i, f := range fields[1:] {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return 0, nil, fmt.Errorf("sample %d %q: %w", i+1, f, err)
		}
		if absolute && v < 0 {
			v = -v
		}
		group = append(group, pathloss.Sample(v))
	}

	return pathloss.Distance(d), group, nil
}

func trimTrailingEmpty(fields []string) []string {
	n := len(fields)
	for n > 0 && strings.TrimSpace(fields[n-1]) == "" {
		n--
	}

	return fields[:n]
}
