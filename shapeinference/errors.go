package shapeinference

import (
	"fmt"
	"io"

	"github.com/gomlx/hloinfer/attributes"
	"github.com/pkg/errors"
)

// ErrorKind classifies why an operation is ill-formed.
type ErrorKind int

//go:generate go tool enumer -type=ErrorKind -output=gen_errorkind_enumer.go errors.go

const (
	// AttributeArityMismatch is reported when a per-dimension attribute's length disagrees with the operand rank
	// or the expected arity.
	AttributeArityMismatch ErrorKind = iota

	// MalformedAttribute is reported when an attribute payload doesn't have the expected rank or element type.
	MalformedAttribute

	// NonPositiveWindowAttribute is reported for window sizes, strides or dilations < 1.
	NonPositiveWindowAttribute

	// IncompatibleShape is reported when operand shapes or extents are not compatible where the operation requires.
	IncompatibleShape

	// IncompatibleElementType is reported when element types differ beyond what is permitted.
	IncompatibleElementType

	// InvalidDimensionMapping is reported when axes given as attributes (gather/scatter dimension numbers,
	// permutations, broadcast mappings, etc.) are out of range, repeated, unsorted, or don't partition the
	// expected rank.
	InvalidDimensionMapping

	// InvalidReplicaGroups is reported when replica groups (or source-target pairs) of a collective are invalid.
	InvalidReplicaGroups

	// ReducerSignatureMismatch is reported when the signature of a body (reducer, comparator, map or control-flow
	// region) doesn't match the expected accumulator/operand contract.
	ReducerSignatureMismatch
)

// Error is the structured error returned by all shape inference functions.
//
// Use KindOf or IsKind to classify errors, they also work when the Error has been wrapped with further context.
type Error struct {
	Kind ErrorKind

	// Op is the name of the operation being inferred, if known.
	Op string

	// Location is an optional diagnostic token given by the caller. It's only used to tag the message.
	Location string

	// Param is the index of the offending parameter (e.g. of a reducer body), or -1.
	Param int

	err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	prefix := ""
	if e.Location != "" {
		prefix = e.Location + ": "
	}
	if e.Op != "" {
		prefix += e.Op + ": "
	}
	return fmt.Sprintf("%s%s [%s]", prefix, e.err.Error(), e.Kind)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.err }

// Cause returns the underlying error, for github.com/pkg/errors.Cause.
func (e *Error) Cause() error { return e.err }

// Format implements fmt.Formatter: "%+v" includes the stack trace of where the error was created.
func (e *Error) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		_, _ = fmt.Fprintf(s, "%s\n%+v", e.Error(), e.err)
		return
	}
	_, _ = io.WriteString(s, e.Error())
}

// errorf creates a new *Error of the given kind.
func errorf(kind ErrorKind, format string, args ...any) error {
	return &Error{Kind: kind, Param: -1, err: errors.Errorf(format, args...)}
}

// paramErrorf creates a new *Error of the given kind, pointing to the offending parameter.
func paramErrorf(kind ErrorKind, param int, format string, args ...any) error {
	return &Error{Kind: kind, Param: param, err: errors.Errorf(format, args...)}
}

// attributeError converts an error returned by the attributes package into an *Error.
func attributeError(err error) error {
	if err == nil {
		return nil
	}
	kind, found := KindOf(err)
	if !found {
		kind = MalformedAttribute
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: kind, Param: -1, err: err}
}

// KindOf returns the ErrorKind of the error, if it is (or wraps) an *Error or an error from the
// attributes package.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	switch {
	case errors.Is(err, attributes.ErrArityMismatch):
		return AttributeArityMismatch, true
	case errors.Is(err, attributes.ErrMalformedAttribute):
		return MalformedAttribute, true
	}
	return 0, false
}

// IsKind returns whether the err is (or wraps) an error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, found := KindOf(err)
	return found && k == kind
}

// Annotate sets the operation name and location of the *Error wrapped by err, if they are not set yet.
// Errors not created by this package are converted to an *Error first.
// It returns the annotated error.
func Annotate(err error, op, location string) error {
	if err == nil {
		return nil
	}
	err = attributeError(err)
	var e *Error
	if errors.As(err, &e) {
		if e.Op == "" {
			e.Op = op
		}
		if e.Location == "" {
			e.Location = location
		}
	}
	return err
}
