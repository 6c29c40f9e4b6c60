// Package cli implements the rssifit command tree.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// envPrefix prefixes every environment variable read as a setting, e.g. RSSIFIT_KEEP_GOING.
const envPrefix = "RSSIFIT"

// app carries the state shared by one invocation of the command tree.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

// NewRootCommand builds the rssifit command with all subcommands attached.
// Each call returns an independent tree with its own settings.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "rssifit",
		Short: "Fit log-distance path-loss models to RSSI measurements",
		Long: `rssifit estimates the coefficients A and n of RSSI(d) = A - 10*n*log10(d)
from files of RSSI samples recorded at known distances.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
	}

	rootCmd.PersistentFlags().String("config", "", "settings file (yaml, toml or json)")
	rootCmd.PersistentFlags().Bool("debug", false, "debug logging and a dump of the resolved settings")

	rootCmd.AddCommand(
		a.newFitCommand(),
		a.newPackCommand(),
		a.newPredictCommand(),
	)

	return rootCmd
}

// Execute runs the root command and exits the process with a non-zero status on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup resolves settings for the executing command: flags, then RSSIFIT_ environment
// variables, then the --config file, then flag defaults.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	debug := a.v.GetBool("debug")
	a.logger = newLogger(cmd.ErrOrStderr(), debug)

	if debug {
		dumpSettings(cmd.ErrOrStderr(), a.v.AllSettings())
	}

	return nil
}

func dumpSettings(w io.Writer, settings map[string]any) {
	pp.Fprintln(w, settings)
}
