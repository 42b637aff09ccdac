// Package vm verifies and executes the modules produced by the translator.
// It interprets the small instruction subset the translator emits and
// provides the printf and scanf primitives in-process.
package vm

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/tliron/commonlog"
)

var (
	// ErrInvalidModule is returned when a module fails verification.
	ErrInvalidModule = errors.New("invalid module")

	// ErrUnsupportedInstruction is returned for instructions, terminators or
	// callees outside the supported subset.
	ErrUnsupportedInstruction = errors.New("unsupported instruction")

	// ErrDivisionByZero is returned when an sdiv executes with a zero divisor.
	// Guarded programs never reach it.
	ErrDivisionByZero = errors.New("integer division by zero")
)

// Machine runs the entry function of a module.
type Machine struct {
	stdout io.Writer
	stdin  *bufio.Reader
	log    commonlog.Logger
}

type options struct {
	stdout io.Writer
	stdin  io.Reader
	log    commonlog.Logger
}

// Option configures a Machine.
type Option func(*options)

// WithStdout sets where printf writes.
func WithStdout(w io.Writer) Option {
	return func(o *options) {
		o.stdout = w
	}
}

// WithStdin sets where scanf reads from.
func WithStdin(r io.Reader) Option {
	return func(o *options) {
		o.stdin = r
	}
}

// WithLogger replaces the package logger.
func WithLogger(log commonlog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// New creates a Machine. Without options it uses the process streams.
func New(opts ...Option) *Machine {
	o := options{
		stdout: os.Stdout,
		stdin:  os.Stdin,
		log:    commonlog.GetLogger("minic.vm"),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Machine{
		stdout: o.stdout,
		stdin:  bufio.NewReader(o.stdin),
		log:    o.log,
	}
}
