// Package dispatch invokes script-side methods on behalf of the engine.
//
// A call runs in three steps: the argument count is checked against the
// method's bounds, each argument is decoded into its parameter type in order,
// and the body runs behind a recover boundary so that a panic in user code is
// reported as an error instead of unwinding into the engine.
package dispatch

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Decoder converts one dynamic argument into the value the body expects.
type Decoder func(v any) (any, error)

// Param describes one positional parameter.
type Param struct {
	Name string
	// Type is the expected type, used in error messages.
	Type   string
	Decode Decoder
	// Optional parameters take Default when the caller omits them. They must
	// follow every required parameter.
	Optional bool
	Default  any
}

// Body is the user logic behind a method. It receives the decoded arguments,
// one per declared parameter.
type Body func(args []any) (any, error)

// Method is a callable with a fixed parameter list.
type Method struct {
	Name   string
	Params []Param
	Body   Body

	required int
}

// NewMethod validates the parameter list and returns the method.
func NewMethod(name string, params []Param, body Body) (*Method, error) {
	if body == nil {
		return nil, fmt.Errorf("method %s: nil body", name)
	}
	required := 0
	seenOptional := false
	for i, p := range params {
		if p.Decode == nil {
			return nil, fmt.Errorf("method %s: parameter %d (%s) has no decoder", name, i, p.Name)
		}
		if p.Optional {
			seenOptional = true
			continue
		}
		if seenOptional {
			return nil, fmt.Errorf("method %s: required parameter %s follows an optional one", name, p.Name)
		}
		required++
	}
	return &Method{Name: name, Params: params, Body: body, required: required}, nil
}

// Bounds returns the accepted argument counts, inclusive.
func (m *Method) Bounds() (lo, hi int) {
	return m.required, len(m.Params)
}

// Call runs the method with the engine-supplied arguments. A non-nil error is
// one of *ArityError, *DecodeError, *PanicError, or whatever the body returned.
func (m *Method) Call(args []any) (result any, err error) {
	lo, hi := m.Bounds()
	if len(args) < lo || len(args) > hi {
		return nil, &ArityError{Method: m.Name, Got: len(args), Min: lo, Max: hi}
	}

	decoded := make([]any, len(m.Params))
	for i, p := range m.Params {
		if i >= len(args) {
			decoded[i] = p.Default
			continue
		}
		v, err := p.Decode(args[i])
		if err != nil {
			return nil, &DecodeError{Method: m.Name, Position: i, Param: p.Name, Expected: p.Type, Err: err}
		}
		decoded[i] = v
	}

	return m.invoke(decoded)
}

func (m *Method) invoke(args []any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &PanicError{Method: m.Name, Value: r, Stack: debug.Stack()}
		}
	}()
	return m.Body(args)
}

// ArityError reports an argument count outside the method's bounds.
type ArityError struct {
	Method   string
	Got      int
	Min, Max int
}

func (e *ArityError) Error() string {
	if e.Min == e.Max {
		return fmt.Sprintf("%s: expected %d arguments, got %d", e.Method, e.Min, e.Got)
	}
	return fmt.Sprintf("%s: expected %d to %d arguments, got %d", e.Method, e.Min, e.Max, e.Got)
}

// DecodeError reports the first argument that could not be decoded.
type DecodeError struct {
	Method   string
	Position int
	Param    string
	Expected string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: argument %d (%s): expected %s: %v", e.Method, e.Position, e.Param, e.Expected, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// PanicError reports a panic raised by the method body.
type PanicError struct {
	Method string
	Value  any
	Stack  []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s: panic: %v", e.Method, e.Value)
}

// Unwrap exposes the panic value when it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ErrTypeMismatch is wrapped by the stock decoders when a value has the wrong type.
var ErrTypeMismatch = errors.New("type mismatch")
