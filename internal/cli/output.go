package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/viant/pointnd/point"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // A modifier or index check rejected the transform
	ExitCommandError = 2 // Invalid arguments, flags or pipeline file
)

// Error codes reported in the error envelope.
const (
	CodeInvalidInput = "E001"
	CodeTransform    = "E002"
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)

	reported bool
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Reported tells whether the error was already written to the command output.
func (e *ExitError) Reported() bool {
	return e.reported
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// classify maps an error to its envelope code and exit code.
func classify(err error) (string, int) {
	var modErr *point.ModifierError
	if errors.As(err, &modErr) || errors.Is(err, point.ErrBadIndex) {
		return CodeTransform, ExitFailure
	}
	return CodeInvalidInput, ExitCommandError
}

// Result is the payload printed for a transformed point.
type Result struct {
	Dims  int       `json:"dims"`
	Point []float64 `json:"point"`
}

func newResult(p *point.Point[float64]) Result {
	values := p.IntoSlice()
	return Result{Dims: len(values), Point: values}
}

func (r Result) String() string {
	return point.New(r.Point...).String()
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Response is the JSON envelope for CLI output.
type Response struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *ErrorBody  `json:"error,omitempty"` // error details
}

// ErrorBody is the error structure for CLI responses.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(Response{Status: "ok", Data: data})
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(Response{
			Status: "error",
			Error:  &ErrorBody{Code: code, Message: message},
		})
	}
	_, err := fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	return err
}

// Emit writes either data or err and returns the ExitError the command should
// report.
func (f *OutputFormatter) Emit(data interface{}, err error) error {
	if err == nil {
		return f.Success(data)
	}
	code, exit := classify(err)
	if outErr := f.Error(code, err.Error()); outErr != nil {
		return outErr
	}
	exitErr := WrapExitError(exit, code, err)
	exitErr.reported = true
	return exitErr
}
