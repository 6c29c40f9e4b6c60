package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/rssifit"
	"github.com/arloliu/rssifit/dataset"
)

func (a *app) newFitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit <file|dir>...",
		Short: "Estimate path-loss coefficients for each dataset",
		Long: `The 'fit' command loads each dataset file (directories are expanded to the files
they contain), runs the path-loss pipeline and prints one row per dataset.

A failing dataset is logged and reported, and the remaining datasets are still
processed unless --keep-going=false. The command fails if any dataset failed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runFit,
	}

	cmd.Flags().StringP("output", "o", "table", "output format: table or json")
	cmd.Flags().Bool("keep-going", true, "continue with the next dataset after a failure")
	addLoaderFlags(cmd)

	return cmd
}

// addLoaderFlags registers the flags that map onto dataset options.
func addLoaderFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("abs", false, "use the magnitude of every sample (inputs recorded as negative dBm)")
	cmd.Flags().String("delimiter", ",", `field delimiter ("tab" or \t for tab)`)
	cmd.Flags().String("comment", "#", "comment character (empty disables comments)")
}

// loaderOptions translates the loader settings into dataset options.
func (a *app) loaderOptions() ([]dataset.Option, error) {
	delim, err := parseRune(a.v.GetString("delimiter"))
	if err != nil {
		return nil, fmt.Errorf("delimiter: %w", err)
	}
	comment, err := parseRune(a.v.GetString("comment"))
	if err != nil {
		return nil, fmt.Errorf("comment: %w", err)
	}

	opts := []dataset.Option{
		dataset.WithDelimiter(delim),
		dataset.WithComment(comment),
	}
	if a.v.GetBool("abs") {
		opts = append(opts, dataset.WithAbsoluteSamples())
	}

	return opts, nil
}

func (a *app) runFit(cmd *cobra.Command, args []string) error {
	output := a.v.GetString("output")
	if output != "table" && output != "json" {
		return fmt.Errorf("unknown output format %q: supported are table, json", output)
	}

	opts, err := a.loaderOptions()
	if err != nil {
		return err
	}

	paths, err := expandPaths(args)
	if err != nil {
		return err
	}

	keepGoing := a.v.GetBool("keep-going")
	rows := make([]fitRow, 0, len(paths))
	failed := 0

	for _, path := range paths {
		report, err := rssifit.AnalyzeFile(path, opts...)
		if err != nil {
			failed++
			a.logger.Error("dataset failed", zap.String("file", path), zap.Error(err))
			rows = append(rows, failedRow(path, err))

			if !keepGoing {
				break
			}

			continue
		}

		a.logReport(path, report)
		rows = append(rows, reportRow(path, report))
	}

	if err := render(cmd.OutOrStdout(), output, rows); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d datasets failed", failed, len(paths))
	}

	return nil
}

func (a *app) logReport(path string, report *rssifit.Report) {
	res := report.Result
	a.logger.Info("dataset fitted",
		zap.String("file", path),
		zap.String("fingerprint", report.Dataset.FingerprintHex()),
		zap.Float64("A", res.Coefficients.A),
		zap.Float64("n", res.Coefficients.N),
		zap.Float64("r_squared", res.Model.RSquared),
	)

	for _, g := range res.Groups {
		a.logger.Debug("group reduced",
			zap.String("file", path),
			zap.Float64("distance", float64(g.Distance)),
			zap.Int("raw", g.Raw),
			zap.Int("kept", len(g.Kept)),
			zap.Stringer("band", g.Band),
			zap.Float64("representative", g.Representative),
		)
	}
}

// expandPaths replaces each directory argument with the regular files directly inside
// it, sorted by name. Hidden files are skipped.
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			// Reported per dataset by the loader.
			paths = append(paths, arg)
			continue
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}

		var files []string
		for _, e := range entries {
			if e.Type().IsRegular() && !strings.HasPrefix(e.Name(), ".") {
				files = append(files, filepath.Join(arg, e.Name()))
			}
		}
		sort.Strings(files)
		paths = append(paths, files...)
	}

	if len(paths) == 0 {
		return nil, errors.New("no dataset files found")
	}

	return paths, nil
}

// parseRune accepts a single character, "tab" or the escape \t. The empty string is 0.
func parseRune(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}

	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, fmt.Errorf("%q is not a single character", s)
	}

	return r, nil
}
