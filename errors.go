package st7032

import (
	"errors"
	"fmt"
)

// ErrHalted is returned by operations invoked after Halt. Re-running Init
// revives the device.
var ErrHalted = errors.New("st7032: halted")

// EncodingError reports a value that does not fit the bit field of the
// instruction it belongs to. Nothing is transmitted when it is returned.
type EncodingError struct {
	Field string
	Value int
	Max   int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("st7032: %s %d does not fit (max %d)", e.Field, e.Value, e.Max)
}

// OutOfRangeError reports a cursor, icon or glyph position outside the
// configured geometry.
type OutOfRangeError struct {
	What  string
	Value int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("st7032: %s %d out of range (max %d)", e.What, e.Value, e.Max)
}

// TransportError wraps a failed bus transaction. The driver never retries:
// re-sending a partially delivered instruction could corrupt controller
// state, so the caller decides and typically re-runs Init.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("st7032: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// InitError reports which initialization step failed. Steps are numbered as
// in the power-up sequence, where step 1 is the power-on settle wait and
// step 10 the final clear. No rollback is attempted; controller RAM is
// undefined until the sequence completes anyway.
type InitError struct {
	Step int
	Name string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("st7032: init step %d (%s): %v", e.Step, e.Name, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }
