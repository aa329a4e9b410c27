package lib

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	UnknownOperator ErrorKind = iota
	UnbalancedParentheses
	NumericParse
	MalformedExpression
	InvalidCharacter
)

var (
	ErrUnknownOperator       = errors.New("unknown operator")
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")
	ErrNumericParse          = errors.New("invalid number")
	ErrMalformedExpression   = errors.New("malformed expression")
	ErrInvalidCharacter      = errors.New("invalid character")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case UnknownOperator:
		return ErrUnknownOperator
	case UnbalancedParentheses:
		return ErrUnbalancedParentheses
	case NumericParse:
		return ErrNumericParse
	case MalformedExpression:
		return ErrMalformedExpression
	case InvalidCharacter:
		return ErrInvalidCharacter
	default:
		return nil
	}
}

func (k ErrorKind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("error kind %d", int(k))
}

// EvaluationError is the only error type returned by the evaluation
// pipeline. Location is the zero value when the failure concerns the input
// as a whole (empty input, leftover operands).
type EvaluationError struct {
	Kind     ErrorKind
	Location Location
	Message  string
	Err      error
}

func (e *EvaluationError) Error() string {
	if e.Location == (Location{}) {
		return fmt.Sprintf("Error: %s", e.Message)
	}
	return fmt.Sprintf("Error at line %d:%d: %s", e.Location.Line, e.Location.Col, e.Message)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *EvaluationError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// KindOf returns the kind of the first EvaluationError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		return evalErr.Kind, true
	}
	return 0, false
}

func errorf(kind ErrorKind, loc Location, msg string, args ...interface{}) error {
	return &EvaluationError{Kind: kind, Location: loc, Message: fmt.Sprintf(msg, args...)}
}
