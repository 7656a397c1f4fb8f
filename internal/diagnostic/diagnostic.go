// Package diagnostic collects and formats the errors produced while
// decoding or re-encoding a module. Unlike a source-text compiler's
// line/column pairs, a wasm function body has no text — positions are a
// function id plus a byte offset into that function's code-section entry,
// exactly what ir.InvalidFunctionBody already carries. An
// ir.InvalidTransformation carries an expression id instead, which FromError
// records in the Offset field.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/lhaig/wasmforge/internal/ir"
)

// Severity represents the severity level of a diagnostic message
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single decode, transform, or encode message,
// located by function id and byte offset rather than line/column.
type Diagnostic struct {
	Severity Severity
	Message  string
	Func     ir.FuncID
	Offset   int
	Hint     string // optional suggestion
}

// Diagnostics manages a collection of diagnostic messages
type Diagnostics struct {
	items []Diagnostic
}

// New creates a new empty Diagnostics collection
func New() *Diagnostics {
	return &Diagnostics{
		items: make([]Diagnostic, 0),
	}
}

// Errorf adds an error diagnostic located at (fn, offset).
func (d *Diagnostics) Errorf(fn ir.FuncID, offset int, format string, args ...interface{}) {
	d.items = append(d.items, Diagnostic{
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Func:     fn,
		Offset:   offset,
	})
}

// Warningf adds a warning diagnostic located at (fn, offset).
func (d *Diagnostics) Warningf(fn ir.FuncID, offset int, format string, args ...interface{}) {
	d.items = append(d.items, Diagnostic{
		Severity: Warning,
		Message:  fmt.Sprintf(format, args...),
		Func:     fn,
		Offset:   offset,
	})
}

// Infof adds an info diagnostic located at (fn, offset).
func (d *Diagnostics) Infof(fn ir.FuncID, offset int, format string, args ...interface{}) {
	d.items = append(d.items, Diagnostic{
		Severity: Info,
		Message:  fmt.Sprintf(format, args...),
		Func:     fn,
		Offset:   offset,
	})
}

// ErrorWithHint adds an error diagnostic with an optional hint.
func (d *Diagnostics) ErrorWithHint(fn ir.FuncID, offset int, msg, hint string) {
	d.items = append(d.items, Diagnostic{
		Severity: Error,
		Message:  msg,
		Func:     fn,
		Offset:   offset,
		Hint:     hint,
	})
}

// FromError appends a diagnostic built from err, recognizing
// ir.InvalidFunctionBody and ir.InvalidTransformation to recover the
// func/offset location; any other error is recorded at (0, 0).
func (d *Diagnostics) FromError(err error) {
	if err == nil {
		return
	}
	var body *ir.InvalidFunctionBody
	if errors.As(err, &body) {
		d.Errorf(body.Func, body.Offset, "%s", body.Reason)
		return
	}
	var xform *ir.InvalidTransformation
	if errors.As(err, &xform) {
		d.Errorf(xform.Func, int(xform.Target), "%s", xform.Reason)
		return
	}
	d.Errorf(0, 0, "%s", err.Error())
}

// HasErrors returns true if there are any error-level diagnostics
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.items {
		if item.Severity == Error {
			return true
		}
	}
	return false
}

// Errors returns only the error-level diagnostics
func (d *Diagnostics) Errors() []Diagnostic {
	errs := make([]Diagnostic, 0)
	for _, item := range d.items {
		if item.Severity == Error {
			errs = append(errs, item)
		}
	}
	return errs
}

// All returns all diagnostics regardless of severity
func (d *Diagnostics) All() []Diagnostic {
	return d.items
}

// Count returns the total number of diagnostics
func (d *Diagnostics) Count() int {
	return len(d.items)
}

// ErrorCount returns the number of error-level diagnostics
func (d *Diagnostics) ErrorCount() int {
	count := 0
	for _, item := range d.items {
		if item.Severity == Error {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warning-level diagnostics
func (d *Diagnostics) WarningCount() int {
	count := 0
	for _, item := range d.items {
		if item.Severity == Warning {
			count++
		}
	}
	return count
}

// Format returns human-readable diagnostic messages.
// Output format:
//
//	error[func 3 @ offset 12]: type mismatch, expected i32 got i64
//	  hint: did you mean local.get 1?
//	warning[func 0 @ offset 0]: unreachable code after return
func (d *Diagnostics) Format() string {
	if len(d.items) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, item := range d.items {
		builder.WriteString(fmt.Sprintf("%s[func %d @ offset %d]: %s",
			item.Severity.String(),
			item.Func,
			item.Offset,
			item.Message,
		))

		if item.Hint != "" {
			builder.WriteString(fmt.Sprintf("\n  hint: %s", item.Hint))
		}

		if i < len(d.items)-1 {
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

// Clear removes all diagnostics from the collection
func (d *Diagnostics) Clear() {
	d.items = make([]Diagnostic, 0)
}
