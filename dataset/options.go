package dataset

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/rssifit/format"
	"github.com/arloliu/rssifit/internal/options"
)

// config holds the parse settings resolved from options.
type config struct {
	delimiter   rune
	comment     rune
	absolute    bool
	compression format.CompressionType
	detect      bool
}

func defaultConfig() config {
	return config{
		delimiter: ',',
		comment:   '#',
		detect:    true,
	}
}

// Option is a functional option for Parse, Load and Pack.
type Option = options.Option[*config]

// WithDelimiter sets the field delimiter (default ',').
func WithDelimiter(r rune) Option {
	return options.New(func(cfg *config) error {
		if !validSeparator(r) {
			return fmt.Errorf("invalid delimiter %q", r)
		}
		cfg.delimiter = r

		return nil
	})
}

// WithComment sets the comment character (default '#'). Zero disables comments.
func WithComment(r rune) Option {
	return options.New(func(cfg *config) error {
		if r != 0 && !validSeparator(r) {
			return fmt.Errorf("invalid comment character %q", r)
		}
		cfg.comment = r

		return nil
	})
}

// WithAbsoluteSamples stores the magnitude of every sample, for files that record
// RSSI as negative dBm.
func WithAbsoluteSamples() Option {
	return options.NoError(func(cfg *config) {
		cfg.absolute = true
	})
}

// WithCompression forces the codec used by Load instead of detecting it from the
// file extension.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *config) error {
		if c.String() == "Unknown" {
			return fmt.Errorf("unsupported compression type: %d", c)
		}
		cfg.compression = c
		cfg.detect = false

		return nil
	})
}

func resolve(opts []Option) (config, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return config{}, err
	}
	if cfg.comment == cfg.delimiter {
		return config{}, fmt.Errorf("comment character and delimiter are both %q", cfg.delimiter)
	}

	return cfg, nil
}

func validSeparator(r rune) bool {
	switch r {
	case 0, '"', '\r', '\n', utf8.RuneError:
		return false
	default:
		return true
	}
}
