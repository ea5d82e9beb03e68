package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is set at build time
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:           "pylinter",
	Short:         "Static diagnostics for Python sources",
	Long:          `pylinter reports style, security and performance diagnostics for Python source files`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// errFindings signals that diagnostics were reported
var errFindings = errors.New("diagnostics reported")

func main() {
	rootCmd.Version = Version
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(watchCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log skipped stages and rule failures")

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFindings) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
