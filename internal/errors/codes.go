package errors

// Error codes for the minic compiler
// These codes are used in error messages and editor diagnostics
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0001-E0099: Binding / semantic errors
// E0100-E0199: Parser errors
// E0900-E0999: Internal translator errors
// W0001-W0099: Warnings

const (
	// E0001: Variable read before any assignment or input
	ErrorUndefinedVariable = "E0001"

	// E0100: Malformed source text
	ErrorSyntax = "E0100"

	// E0101: Integer literal does not fit in 32 bits
	ErrorLiteralOutOfRange = "E0101"

	// E0900: AST node of unknown shape or broken runtime wiring
	ErrorInternal = "E0900"

	// W0001: Binding is never read
	WarningUnusedVariable = "W0001"

	// W0002: Divisor is the literal zero
	WarningDivisionByZero = "W0002"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUndefinedVariable:
		return "Variable is read before it is assigned or read from input"
	case ErrorSyntax:
		return "Source text does not match the grammar"
	case ErrorLiteralOutOfRange:
		return "Integer literal does not fit in a signed 32-bit integer"
	case ErrorInternal:
		return "Internal translator error"
	case WarningUnusedVariable:
		return "Variable is assigned but its value is never read"
	case WarningDivisionByZero:
		return "Division by the constant zero always takes the runtime error path"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return len(code) > 0 && code[0] == 'W'
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case IsWarning(code):
		return "Warning"
	case code >= "E0001" && code < "E0100":
		return "Semantic Analysis"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0900" && code < "E1000":
		return "Internal"
	default:
		return "Unknown"
	}
}
