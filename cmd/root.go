package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the ctlib command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "ctlib",
		Short: "Tools for Yaz0 and Yaz1 compressed game files",
		Long: `ctlib compresses and decompresses the Yaz0/Yaz1 LZ format used by
Nintendo games for SZS archives and other packed assets.

Supported operations:
  - Compress raw files into Yaz0 or Yaz1 streams
  - Decompress Yaz0 or Yaz1 streams
  - Show stream headers
  - Verify that files survive a compression round trip`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log.SetOutput(cmd.ErrOrStderr())
			log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
			if verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"print verbose progress information")

	rootCmd.AddCommand(
		newCompressCmd(),
		newDecompressCmd(),
		newInfoCmd(),
		newVerifyCmd(),
	)

	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
