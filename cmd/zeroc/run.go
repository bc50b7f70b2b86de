package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/LetsZero/zero-compiler/internal/diagfmt"
	"github.com/LetsZero/zero-compiler/internal/driver"
	"github.com/LetsZero/zero-compiler/internal/interp"
	"github.com/LetsZero/zero-compiler/internal/ir"
	"github.com/LetsZero/zero-compiler/internal/project"
)

func runMain(cmd *cobra.Command, args []string) error {
	path, err := resolveTarget(args)
	if err != nil {
		return err
	}

	dumpIR, _ := cmd.Flags().GetBool("dump-ir")
	dumpAST, _ := cmd.Flags().GetBool("dump-ast")
	timings, _ := cmd.Flags().GetBool("timings")
	maxDiag, _ := cmd.Flags().GetInt("max-diagnostics")
	colorMode, _ := cmd.Flags().GetString("color")

	start := time.Now()
	result, err := driver.Compile(path, driver.Options{MaxDiagnostics: maxDiag})
	parseTime := time.Since(start)
	if err != nil {
		return err
	}

	useColor := resolveColor(colorMode)

	if result.Bag.HasErrors() {
		renderDiagnostics(result, useColor)
		exitCode = 1
		return nil
	}

	if dumpAST {
		diagfmt.DumpAST(os.Stdout, result.Program)
		exitCode = 0
		return nil
	}

	if dumpIR {
		fmt.Print(ir.Print(result.Module))
		exitCode = 0
		return nil
	}

	registry := interp.NewRegistry()
	registerBuiltins(registry)

	runStart := time.Now()
	v, ok := interp.New(result.Module, registry).Run("main")
	runTime := time.Since(runStart)

	if timings {
		printStageTimings(os.Stderr, parseTime, runTime)
	}

	if !ok {
		fmt.Fprintln(os.Stderr, "error: no entry function 'main'")
		exitCode = 1
		return nil
	}

	exitCode = interp.ExitCode(v)
	return nil
}

// resolveTarget picks the file to compile: the explicit positional
// argument if given, otherwise the 'main' entry from a zero.toml
// manifest found in or above the working directory.
func resolveTarget(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	m, ok, err := project.Load(".")
	if err != nil {
		return "", err
	}
	if !ok || m.Config.Run.Main == "" {
		return "", fmt.Errorf("no input file and no zero.toml with run.main")
	}
	return m.Root + string(os.PathSeparator) + m.Config.Run.Main, nil
}

func resolveColor(mode string) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}

func renderDiagnostics(result *driver.Result, useColor bool) {
	opts := diagfmt.Options{Color: useColor}
	for _, d := range result.Bag.Items() {
		fmt.Fprint(os.Stderr, diagfmt.Render(result.Manager, d, opts))
	}
}

func registerBuiltins(r *interp.Registry) {
	r.Register("print", func(args []interp.RuntimeValue) interp.RuntimeValue {
		parts := make([]any, len(args))
		for i, a := range args {
			parts[i] = a.String()
		}
		fmt.Fprintln(os.Stdout, parts...)
		return interp.Void
	})
}

// printStageTimings reports parse+check+lower and run durations the way
// the build pipeline reports per-stage timings, in milliseconds.
func printStageTimings(out io.Writer, compile, run time.Duration) {
	fmt.Fprintf(out, "compiled %.1f ms\n", toMillis(compile))
	fmt.Fprintf(out, "ran %.1f ms\n", toMillis(run))
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
