package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/rssifit/dataset"
	"github.com/arloliu/rssifit/format"
)

func (a *app) newPackCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <src> <dst>",
		Short: "Write a compressed copy of a dataset",
		Long: `The 'pack' command re-encodes the dataset at <src> in canonical form and writes it
to <dst>. The codec is taken from --compression, or from the extension of <dst>
(.zst, .sz, .lz4) when the flag is not set.`,
		Args: cobra.ExactArgs(2),
		RunE: a.runPack,
	}

	cmd.Flags().String("compression", "", "codec: zstd, s2, lz4 or none (default: from <dst> extension)")
	addLoaderFlags(cmd)

	return cmd
}

func (a *app) runPack(cmd *cobra.Command, args []string) error {
	src, dst := args[0], args[1]

	compression := format.CompressionFromPath(dst)
	if name := a.v.GetString("compression"); name != "" {
		ct, err := format.ParseCompression(name)
		if err != nil {
			return err
		}
		compression = ct
	}

	opts, err := a.loaderOptions()
	if err != nil {
		return err
	}

	stats, err := dataset.Pack(src, dst, compression, opts...)
	if err != nil {
		a.logger.Error("pack failed", zap.String("src", src), zap.String("dst", dst), zap.Error(err))
		return err
	}

	a.logger.Info("dataset packed",
		zap.String("src", src),
		zap.String("dst", dst),
		zap.Stringer("compression", stats.Algorithm),
		zap.Int64("original_size", stats.OriginalSize),
		zap.Int64("compressed_size", stats.CompressedSize),
	)

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%s): %d -> %d bytes, %.1f%% saved\n",
		src, dst, stats.Algorithm, stats.OriginalSize, stats.CompressedSize, stats.SpaceSavings())

	return err
}
