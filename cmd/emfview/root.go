package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/skdltmxn/emf-go/emf"
)

var (
	outputFile string
	output     io.Writer
	verbose    bool
	codePage   uint8
	logger     = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "emfview",
	Short: "EMF file viewer and analyzer",
	Long: `emfview is a command-line tool for viewing and analyzing
Windows enhanced metafiles (EMF).

It can list records, show their decoded properties, follow the links
between object creation and use, and render record previews.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			output = f
		} else {
			output = os.Stdout
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if f, ok := output.(*os.File); ok && f != os.Stdout {
			f.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log decoding diagnostics to stderr")
	rootCmd.PersistentFlags().Uint8Var(&codePage, "charset", 0, "charset for 8-bit text before any font is selected")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(linksCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(enumsCmd)
}

// openFile opens path with the options set by the global flags.
func openFile(path string) (*emf.File, error) {
	f, err := emf.Open(path, emf.Options{Logger: logger, CodePage: codePage})
	if err != nil {
		return nil, fmt.Errorf("failed to open EMF: %w", err)
	}
	if err := f.ScanErr(); err != nil {
		logger.Warn("stream is damaged, showing the records before the error", "err", err)
	}
	return f, nil
}
