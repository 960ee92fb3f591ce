package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/narahiero/CTLib-sub000/compress"
	"github.com/narahiero/CTLib-sub000/internal/hash"
	"github.com/narahiero/CTLib-sub000/internal/pool"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>...",
		Short: "Show the header of Yaz0 or Yaz1 streams",
		Long: `Show the variant, declared size and digest of compressed files.

Files that do not start with a Yaz0 or Yaz1 header are reported and make
the command fail after all files are listed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runInfo,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	var failed []error
	for _, path := range args {
		if err := printInfo(cmd.OutOrStdout(), path); err != nil {
			log.WithField("path", path).Warn(err)
			failed = append(failed, err)
		}
	}

	return errors.Join(failed...)
}

func printInfo(w io.Writer, path string) error {
	bb, err := readInput(path)
	if err != nil {
		return err
	}
	defer pool.PutFileBuffer(bb)

	h, err := compress.ReadHeader(bb.Bytes())
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Fprintf(w, "%s\n", path)
	fmt.Fprintf(w, "  variant:      %s\n", h.Variant)
	fmt.Fprintf(w, "  compressed:   %s (%s bytes)\n",
		humanize.Bytes(uint64(bb.Len())), humanize.Comma(int64(bb.Len())))
	fmt.Fprintf(w, "  uncompressed: %s (%s bytes)\n",
		humanize.Bytes(uint64(h.UncompressedSize)), humanize.Comma(int64(h.UncompressedSize)))
	fmt.Fprintf(w, "  ratio:        %.3f\n", float64(bb.Len())/float64(h.UncompressedSize))
	fmt.Fprintf(w, "  xxh64:        %s\n", hash.Format(hash.Sum(bb.Bytes())))

	return nil
}
