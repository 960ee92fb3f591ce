package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/narahiero/CTLib-sub000/compress"
	"github.com/narahiero/CTLib-sub000/internal/hash"
	"github.com/narahiero/CTLib-sub000/internal/pool"
)

type verifyOptions struct {
	variant string
}

func newVerifyCmd() *cobra.Command {
	opts := &verifyOptions{}

	verifyCmd := &cobra.Command{
		Use:   "verify <file>...",
		Short: "Check that files survive a compression round trip",
		Long: `Check that files survive a compression round trip.

Compressed files are decoded first, their length is checked against the
header, and the decoded data is re-encoded with the same variant. Raw files
are encoded with --variant and decoded again. In both cases the xxHash64 of
the restored data must match.

Examples:
  ctlib verify Common.szs course.u8
  ctlib verify course.u8 --variant yaz1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed []error
			for _, path := range args {
				if err := verifyFile(cmd.OutOrStdout(), path, opts); err != nil {
					log.WithField("path", path).Error(err)
					failed = append(failed, err)
				}
			}

			return errors.Join(failed...)
		},
	}

	verifyCmd.Flags().StringVar(&opts.variant, "variant", "yaz0",
		"variant used to encode raw files (yaz0, yaz1 or auto)")

	return verifyCmd
}

func verifyFile(w io.Writer, path string, opts *verifyOptions) error {
	bb, err := readInput(path)
	if err != nil {
		return err
	}
	defer pool.PutFileBuffer(bb)

	data := bb.Bytes()
	codec, err := codecFor(opts.variant)
	if err != nil {
		return err
	}

	if v, ok := compress.Detect(data); ok {
		h, err := compress.ReadHeader(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		codec, err = compress.GetCodec(v)
		if err != nil {
			return err
		}

		data, err = codec.Decompress(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if len(data) != int(h.UncompressedSize) {
			return fmt.Errorf("%s: decoded %d bytes, header declares %d", path, len(data), h.UncompressedSize)
		}

		log.WithFields(log.Fields{
			"path":    path,
			"variant": v,
			"xxh64":   hash.Format(hash.Sum(data)),
		}).Debug("decoded stream")
	}

	stats, err := compress.Measure(codec, data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Fprintf(w, "%s: ok, %s %s -> %s (%.1f%% saved), compress %s, decompress %s\n",
		path, stats.Variant,
		humanize.Bytes(uint64(stats.OriginalSize)),
		humanize.Bytes(uint64(stats.CompressedSize)),
		stats.SpaceSavings(),
		time.Duration(stats.CompressionTimeNs),
		time.Duration(stats.DecompressionTimeNs))

	return nil
}
