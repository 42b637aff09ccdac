// Package compiler wires the front end, the binding analysis, IR generation
// and execution into a single pipeline.
package compiler

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"time"

	llvm "github.com/llir/llvm/ir"
	"github.com/tliron/commonlog"

	"minic/internal/ast"
	"minic/internal/errors"
	"minic/internal/ir"
	"minic/internal/parser"
	"minic/internal/semantic"
	"minic/internal/vm"
)

var log = commonlog.GetLogger("minic.compiler")

// Result is a successfully translated program.
type Result struct {
	Filename string
	Source   string
	Program  *ast.Program
	Module   *llvm.Module
	Warnings []errors.CompilerError
	Duration time.Duration
}

// IR returns the LLVM assembly of the module.
func (r *Result) IR() string {
	return ir.Print(r.Module)
}

// Options configures Run. Zero values select main, os.Stdout and os.Stdin.
type Options struct {
	Filename string
	Entry    string
	Stdout   io.Writer
	Stdin    io.Reader
}

// DiagnosticsError reports a program that failed binding checks. Err is
// the error IR generation stopped at; Diagnostics holds every diagnostic the
// analysis found, warnings included.
type DiagnosticsError struct {
	Diagnostics []errors.CompilerError
	Err         error
}

func (e *DiagnosticsError) Error() string {
	count := 0
	for _, d := range e.Diagnostics {
		if d.Level == errors.Error {
			count++
		}
	}

	if count <= 1 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", e.Err, count-1)
}

func (e *DiagnosticsError) Unwrap() error {
	return e.Err
}

// CompileFile reads path and compiles it.
func CompileFile(path string, opts ...ir.Option) (*Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return Compile(path, string(source), opts...)
}

// Compile parses, analyzes and translates source. Syntax errors are returned
// as *errors.SyntaxError. Undefined names are returned as a
// *DiagnosticsError wrapping the *errors.UndefinedVariableError IR generation
// stopped at. Warnings never stop compilation and end up in Result.Warnings.
func Compile(filename, source string, opts ...ir.Option) (*Result, error) {
	startTime := time.Now()

	program, err := parser.ParseSource(filename, source)
	if err != nil {
		return nil, err
	}

	analyzer := semantic.NewAnalyzer()
	diagnostics := analyzer.Analyze(program)

	module, err := ir.Build(program, append([]ir.Option{ir.WithModuleName(filename)}, opts...)...)
	if err != nil {
		var undefined *errors.UndefinedVariableError
		if stderrors.As(err, &undefined) {
			return nil, &DiagnosticsError{Diagnostics: diagnostics, Err: err}
		}
		return nil, fmt.Errorf("failed to build %s: %w", filename, err)
	}
	if analyzer.HasErrors() {
		return nil, errors.Internalf("binding analysis of %s found errors IR generation accepted", filename)
	}

	result := &Result{
		Filename: filename,
		Source:   source,
		Program:  program,
		Module:   module,
		Warnings: diagnostics,
		Duration: time.Since(startTime),
	}

	log.Debugf("compiled %s in %s with %d warnings", filename, result.Duration, len(diagnostics))
	return result, nil
}

// Run executes a compiled program and returns its exit status.
func Run(ctx context.Context, result *Result, opts Options) (int32, error) {
	entry := opts.Entry
	if entry == "" {
		entry = ir.DefaultEntryName
	}

	var vmOpts []vm.Option
	if opts.Stdout != nil {
		vmOpts = append(vmOpts, vm.WithStdout(opts.Stdout))
	}
	if opts.Stdin != nil {
		vmOpts = append(vmOpts, vm.WithStdin(opts.Stdin))
	}

	name := opts.Filename
	if name == "" {
		name = result.Filename
	}

	status, err := vm.New(vmOpts...).Run(ctx, result.Module, entry)
	if err != nil {
		return 0, fmt.Errorf("failed to run %s: %w", name, err)
	}
	return status, nil
}
