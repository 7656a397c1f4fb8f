package ir

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidFunctionBody reports a function body that failed validation while
// being parsed from its opcode byte stream — a type-stack mismatch, an
// unresolved branch target, a truncated instruction, and so on. Offset is
// the byte position within the function's code-section entry where the
// problem was detected.
type InvalidFunctionBody struct {
	Func   FuncID
	Offset int
	Reason string
}

func (e *InvalidFunctionBody) Error() string {
	return fmt.Sprintf("invalid function body (func %d, offset %d): %s", e.Func, e.Offset, e.Reason)
}

// NewInvalidFunctionBody builds an InvalidFunctionBody. It is returned
// unwrapped; a caller further up the stack can add context with errors.Wrap
// and still recover the structured fields with errors.As.
func NewInvalidFunctionBody(fn FuncID, offset int, format string, args ...interface{}) error {
	return &InvalidFunctionBody{Func: fn, Offset: offset, Reason: fmt.Sprintf(format, args...)}
}

// InvalidTransformation reports a rewrite that would leave the arena in an
// inconsistent state — rewriting an expression to a type the surrounding
// context cannot accept, or targeting a tombstoned id.
type InvalidTransformation struct {
	Func   FuncID
	Target ExprID
	Reason string
}

func (e *InvalidTransformation) Error() string {
	return fmt.Sprintf("invalid transformation (func %d, expr %d): %s", e.Func, e.Target, e.Reason)
}

// NewInvalidTransformation builds an InvalidTransformation error.
func NewInvalidTransformation(fn FuncID, target ExprID, format string, args ...interface{}) error {
	return &InvalidTransformation{Func: fn, Target: target, Reason: fmt.Sprintf(format, args...)}
}

// UnsupportedFeature reports an opcode or section the reader recognizes
// but does not implement (spec.md §9's "unsupported, not unknown" case —
// e.g. a SIMD lane opcode outside the documented subset, or the
// multi-value proposal).
type UnsupportedFeature struct {
	Feature string
}

func (e *UnsupportedFeature) Error() string {
	return fmt.Sprintf("unsupported feature: %s", e.Feature)
}

// NewUnsupportedFeature builds an UnsupportedFeature error.
func NewUnsupportedFeature(feature string) error {
	return &UnsupportedFeature{Feature: feature}
}

// IsInvalidFunctionBody reports whether err is, or wraps, an
// *InvalidFunctionBody.
func IsInvalidFunctionBody(err error) bool {
	var target *InvalidFunctionBody
	return errors.As(err, &target)
}

// IsUnsupportedFeature reports whether err is, or wraps, an
// *UnsupportedFeature.
func IsUnsupportedFeature(err error) bool {
	var target *UnsupportedFeature
	return errors.As(err, &target)
}
