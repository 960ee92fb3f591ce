package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"

	"github.com/narahiero/CTLib-sub000/compress"
	"github.com/narahiero/CTLib-sub000/format"
	"github.com/narahiero/CTLib-sub000/internal/pool"
	"github.com/narahiero/CTLib-sub000/yaz"
)

// readInput loads a whole file into a pooled buffer. The caller returns the
// buffer with pool.PutFileBuffer once the data is no longer referenced.
func readInput(path string) (*pool.ByteBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	bb := pool.GetFileBuffer()
	if _, err := bb.ReadFrom(f); err != nil {
		pool.PutFileBuffer(bb)
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if bb.Len() == 0 {
		pool.PutFileBuffer(bb)
		return nil, fmt.Errorf("%s: input is empty", path)
	}

	log.WithFields(log.Fields{
		"path": path,
		"size": humanize.Bytes(uint64(bb.Len())),
	}).Debug("loaded input")

	return bb, nil
}

// writeOutput writes data through a temporary file in the destination
// directory and renames it into place, so a failure leaves no partial file.
func writeOutput(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write output: %w", err)
	}

	log.WithFields(log.Fields{
		"path": path,
		"size": humanize.Bytes(uint64(len(data))),
	}).Debug("wrote output")

	return nil
}

// codecFor resolves a --variant flag value. "auto" accepts either magic on
// decode and writes Yaz0.
func codecFor(name string, opts ...yaz.EncoderOption) (compress.Codec, error) {
	if strings.EqualFold(name, "auto") {
		return compress.NewAutoCodec(opts...), nil
	}

	v, err := format.ParseVariant(name)
	if err != nil {
		return nil, err
	}

	return compress.CreateCodec(v, opts...)
}

// compressedName appends the variant as an extension.
func compressedName(input, variant string) string {
	if strings.EqualFold(variant, "auto") {
		variant = format.VariantYaz0.String()
	}

	return input + "." + strings.ToLower(variant)
}

// decompressedName strips a known compressed extension, or appends ".out".
func decompressedName(input string) string {
	ext := filepath.Ext(input)
	switch strings.ToLower(ext) {
	case ".szs", ".yaz0", ".yaz1":
		return strings.TrimSuffix(input, ext)
	default:
		return input + ".out"
	}
}
