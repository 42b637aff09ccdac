// SPDX-License-Identifier: Apache-2.0

// Package repl runs minic statements interactively. Each line is compiled and
// executed on its own, with the variables of earlier lines carried over.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tliron/commonlog"

	"minic/internal/ast"
	"minic/internal/errors"
	"minic/internal/ir"
	"minic/internal/parser"
	"minic/internal/vm"
)

const PROMPT = ">> "

const sourceName = "<repl>"

var log = commonlog.GetLogger("minic.repl")

// Session holds the variables bound by the lines evaluated so far.
type Session struct {
	in  *bufio.Reader
	out io.Writer
	env map[string]int32
}

// NewSession creates a session reading lines and input values from in.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		in:  bufio.NewReader(in),
		out: out,
		env: make(map[string]int32),
	}
}

// Start reads lines from in until it ends or ctx is canceled.
func Start(ctx context.Context, in io.Reader, out io.Writer) {
	NewSession(in, out).Run(ctx)
}

// Run is the read-eval-print loop.
func (s *Session) Run(ctx context.Context) {
	for ctx.Err() == nil {
		fmt.Fprint(s.out, PROMPT)

		line, err := s.in.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			if evalErr := s.Eval(ctx, line); evalErr != nil {
				fmt.Fprint(s.out, errors.NewErrorReporter(sourceName, line).Format(evalErr))
			}
		}
		if err != nil {
			fmt.Fprintln(s.out)
			return
		}
	}
}

// Eval compiles and executes one line. Variables it binds become visible to
// later lines, unless the line stops on a division by zero.
func (s *Session) Eval(ctx context.Context, line string) error {
	program, err := parser.ParseSource(sourceName, line)
	if err != nil {
		return err
	}

	program.Statements = append(s.prelude(), program.Statements...)

	builder := ir.NewBuilder(ir.WithModuleName(sourceName))
	module, err := builder.Build(program)
	if err != nil {
		return err
	}

	machine := vm.New(vm.WithStdin(s.in), vm.WithStdout(s.out), vm.WithLogger(log))
	exec, err := machine.Exec(ctx, module, ir.DefaultEntryName)
	if err != nil {
		return err
	}

	if readsInput(program) {
		s.skipLineEnd()
	}

	if exec.Status != 0 {
		log.Debugf("line exited with status %d, bindings discarded", exec.Status)
		return nil
	}

	symbols := builder.Symbols()
	for _, name := range symbols.Names() {
		slot, _ := symbols.Lookup(name)
		s.env[name] = exec.Slots[slot]
	}
	return nil
}

// skipLineEnd consumes the newline scanf leaves after the last value it
// read, so the next prompt reads a fresh line.
func (s *Session) skipLineEnd() {
	for {
		c, err := s.in.ReadByte()
		if err != nil {
			return
		}
		switch c {
		case ' ', '\t', '\r':
			continue
		case '\n':
			return
		default:
			_ = s.in.UnreadByte()
			return
		}
	}
}

func readsInput(program *ast.Program) bool {
	for _, stmt := range program.Statements {
		if _, ok := stmt.(*ast.InputStmt); ok {
			return true
		}
	}
	return false
}

// Variables returns a copy of the current bindings.
func (s *Session) Variables() map[string]int32 {
	vars := make(map[string]int32, len(s.env))
	for name, v := range s.env {
		vars[name] = v
	}
	return vars
}

// prelude rebinds every known variable to its value, in name order.
func (s *Session) prelude() []ast.Stmt {
	names := make([]string, 0, len(s.env))
	for name := range s.env {
		names = append(names, name)
	}
	sort.Strings(names)

	stmts := make([]ast.Stmt, 0, len(names))
	for _, name := range names {
		stmts = append(stmts, &ast.AssignStmt{
			Name:  ast.Ident{Value: name},
			Value: &ast.NumberLit{Value: s.env[name], Raw: fmt.Sprint(s.env[name])},
		})
	}
	return stmts
}
