// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"nikand.dev/go/cli"

	"minic/internal/compiler"
	"minic/internal/errors"
	"minic/repl"
)

func main() {
	configureLogging()

	checkCmd := &cli.Command{
		Name:        "check",
		Description: "parse and analyze programs, reporting every diagnostic",
		Action:      checkAct,
		Args:        cli.Args{},
	}

	irCmd := &cli.Command{
		Name:        "ir",
		Description: "print the LLVM IR of programs",
		Action:      irAct,
		Args:        cli.Args{},
	}

	runCmd := &cli.Command{
		Name:        "run",
		Description: "compile and execute a program, exiting with its status",
		Action:      runAct,
		Args:        cli.Args{},
	}

	replCmd := &cli.Command{
		Name:        "repl",
		Description: "evaluate statements interactively",
		Action:      replAct,
	}

	app := &cli.Command{
		Name:        "minic",
		Description: "minic compiles integer calculator programs to LLVM IR",
		Commands: []*cli.Command{
			checkCmd,
			irCmd,
			runCmd,
			replCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

// configureLogging reads the log verbosity from MINIC_VERBOSITY (default 0)
func configureLogging() {
	verbosity := 0
	if v, err := strconv.Atoi(os.Getenv("MINIC_VERBOSITY")); err == nil {
		verbosity = v
	}
	commonlog.Configure(verbosity, nil)
}

func checkAct(c *cli.Command) error {
	if len(c.Args) == 0 {
		return fmt.Errorf("usage: minic check <file.mc>...")
	}

	failed := 0
	for _, path := range c.Args {
		result, ok := compile(path)
		if !ok {
			failed++
			continue
		}
		color.Green("%s: ok in %s", path, formatDuration(result.Duration))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(c.Args))
	}
	return nil
}

func irAct(c *cli.Command) error {
	if len(c.Args) == 0 {
		return fmt.Errorf("usage: minic ir <file.mc>...")
	}

	for _, path := range c.Args {
		result, ok := compile(path)
		if !ok {
			return fmt.Errorf("compilation of %s failed", path)
		}
		fmt.Print(result.IR())
	}
	return nil
}

func runAct(c *cli.Command) error {
	if len(c.Args) != 1 {
		return fmt.Errorf("usage: minic run <file.mc>")
	}

	path := c.Args[0]
	result, ok := compile(path)
	if !ok {
		return fmt.Errorf("compilation of %s failed", path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	status, err := compiler.Run(ctx, result, compiler.Options{Stdout: os.Stdout, Stdin: os.Stdin})
	if err != nil {
		return err
	}

	stop()
	os.Exit(int(status))
	return nil
}

func replAct(c *cli.Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	repl.Start(ctx, os.Stdin, os.Stdout)
	return nil
}

// compile compiles path and prints its diagnostics to stderr. It reports
// whether a module was produced.
func compile(path string) (*compiler.Result, bool) {
	startTime := time.Now()

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		return nil, false
	}

	reporter := errors.NewErrorReporter(path, string(source))

	result, err := compiler.Compile(path, string(source))
	if err != nil {
		var diags *compiler.DiagnosticsError
		if stderrors.As(err, &diags) {
			fmt.Fprint(os.Stderr, reporter.FormatErrors(diags.Diagnostics))
		} else {
			fmt.Fprint(os.Stderr, reporter.Format(err))
		}
		fmt.Fprintln(os.Stderr, color.RedString("Compilation failed after %s", formatDuration(time.Since(startTime))))
		return nil, false
	}

	if len(result.Warnings) > 0 {
		fmt.Fprint(os.Stderr, reporter.FormatErrors(result.Warnings))
	}
	return result, true
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
