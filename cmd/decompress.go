package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/narahiero/CTLib-sub000/internal/pool"
)

type decompressOptions struct {
	variant string
	output  string
}

func newDecompressCmd() *cobra.Command {
	opts := &decompressOptions{}

	decompressCmd := &cobra.Command{
		Use:   "decompress <file>",
		Short: "Decompress a Yaz0 or Yaz1 stream",
		Long: `Decompress a Yaz0 or Yaz1 stream.

By default either variant is accepted. Pass --variant to reject streams
carrying the other magic.

Without --output a .szs, .yaz0 or .yaz1 extension is stripped from the
input name; other names get .out appended.

Examples:
  # Produce course.u8 from course.u8.yaz0
  ctlib decompress course.u8.yaz0

  # Only accept Yaz0
  ctlib decompress Common.szs --variant yaz0 -o Common.arc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompress(cmd, args[0], opts)
		},
	}

	decompressCmd.Flags().StringVar(&opts.variant, "variant", "auto",
		"stream variant to accept (yaz0, yaz1 or auto)")
	decompressCmd.Flags().StringVarP(&opts.output, "output", "o", "",
		"output file (default: input name without its compressed extension)")

	return decompressCmd
}

func runDecompress(cmd *cobra.Command, input string, opts *decompressOptions) error {
	codec, err := codecFor(opts.variant)
	if err != nil {
		return err
	}

	bb, err := readInput(input)
	if err != nil {
		return err
	}
	defer pool.PutFileBuffer(bb)

	data, err := codec.Decompress(bb.Bytes())
	if err != nil {
		return fmt.Errorf("failed to decompress %s: %w", input, err)
	}

	output := opts.output
	if output == "" {
		output = decompressedName(input)
	}
	if err := writeOutput(output, data); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%s -> %s)\n", input, output,
		humanize.Bytes(uint64(bb.Len())), humanize.Bytes(uint64(len(data))))

	return nil
}
