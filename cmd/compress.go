package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/narahiero/CTLib-sub000/format"
	"github.com/narahiero/CTLib-sub000/internal/pool"
	"github.com/narahiero/CTLib-sub000/yaz"
)

type compressOptions struct {
	variant  string
	output   string
	window   int
	maxMatch int
}

func newCompressCmd() *cobra.Command {
	opts := &compressOptions{}

	compressCmd := &cobra.Command{
		Use:   "compress <file>",
		Short: "Compress a file into a Yaz0 or Yaz1 stream",
		Long: `Compress a raw file into a Yaz0 or Yaz1 stream.

The output is written next to the input with the variant appended as an
extension unless --output is given.

Examples:
  # Compress a U8 archive into course.u8.yaz0
  ctlib compress course.u8

  # Write a Yaz1 stream to a chosen path
  ctlib compress course.u8 --variant yaz1 -o course.szs

  # Trade ratio for speed with a smaller search window
  ctlib compress course.u8 --window 512`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(cmd, args[0], opts)
		},
	}

	compressCmd.Flags().StringVar(&opts.variant, "variant", "yaz0",
		"stream variant to write (yaz0, yaz1 or auto)")
	compressCmd.Flags().StringVarP(&opts.output, "output", "o", "",
		"output file (default: <file>.<variant>)")
	compressCmd.Flags().IntVar(&opts.window, "window", format.WindowSize,
		"how many preceding bytes the match search looks at (1-4096)")
	compressCmd.Flags().IntVar(&opts.maxMatch, "max-match", format.MaxMatchLength,
		"longest back-reference to emit (3-273)")

	return compressCmd
}

func runCompress(cmd *cobra.Command, input string, opts *compressOptions) error {
	codec, err := codecFor(opts.variant, yaz.WithWindowSize(opts.window), yaz.WithMaxMatch(opts.maxMatch))
	if err != nil {
		return err
	}

	bb, err := readInput(input)
	if err != nil {
		return err
	}
	defer pool.PutFileBuffer(bb)

	packed, err := codec.Compress(bb.Bytes())
	if err != nil {
		return fmt.Errorf("failed to compress %s: %w", input, err)
	}

	output := opts.output
	if output == "" {
		output = compressedName(input, opts.variant)
	}
	if err := writeOutput(output, packed); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"window":    opts.window,
		"max_match": opts.maxMatch,
	}).Debug("match search settings")

	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%s -> %s)\n", input, output,
		humanize.Bytes(uint64(bb.Len())), humanize.Bytes(uint64(len(packed))))

	return nil
}
