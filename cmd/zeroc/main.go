// Package main implements the zeroc CLI: compile-and-run, IR/AST dumps,
// and the command-line flags described in the interpreter's external
// interface contract.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LetsZero/zero-compiler/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "zeroc <file>",
	Short:   "Zero language compiler and interpreter",
	Long:    "zeroc compiles a Zero source file through lex/parse/sema/lowering and executes it, or dumps an intermediate artifact.",
	Args:    cobra.MaximumNArgs(1),
	Version: version.Version,
	RunE:    runMain,
}

func init() {
	rootCmd.Flags().Bool("dump-ir", false, "print the lowered IR module to stdout and exit")
	rootCmd.Flags().Bool("dump-ast", false, "print an indented AST dump to stdout and exit")
	rootCmd.Flags().Int("max-diagnostics", 100, "maximum number of diagnostics to report per stage")
	rootCmd.Flags().Bool("timings", false, "print per-stage timings to stderr")
	rootCmd.Flags().String("color", "auto", "colorize diagnostics (auto|on|off)")
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		msg := err.Error()
		if strings.HasPrefix(msg, "unknown flag: ") {
			flag := strings.TrimPrefix(msg, "unknown flag: ")
			return &unknownFlagError{Flag: flag}
		}
		return err
	})
}

func main() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		if uf, ok := err.(*unknownFlagError); ok {
			fmt.Fprintf(os.Stderr, "error: unknown option: %s\n", uf.Flag)
		} else {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}
		os.Exit(1)
	}
	os.Exit(exitCode)
}

// exitCode carries the interpreter's exit code out of RunE, since cobra
// itself only distinguishes "error" (exit 1) from "no error" (exit 0).
var exitCode int

// unknownFlagError marks cobra's unknown-flag failure so main can print
// the "unknown option" message the original C++ driver used instead of
// cobra's default "unknown flag" phrasing.
type unknownFlagError struct {
	Flag string
}

func (e *unknownFlagError) Error() string {
	return "unknown option: " + e.Flag
}
