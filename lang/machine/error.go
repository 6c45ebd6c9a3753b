package machine

import "fmt"

// ErrorKind is one of the seven fatal-error categories named in
// spec.md §7.
type ErrorKind uint8

const ( //nolint:revive
	ArityMismatch ErrorKind = iota
	NameUnresolved
	ProtocolMissing
	TypeMismatch
	IndexOutOfBounds
	StackCorruption
	PropertyMissing
)

func (k ErrorKind) String() string {
	switch k {
	case ArityMismatch:
		return "arity mismatch"
	case NameUnresolved:
		return "name unresolved"
	case ProtocolMissing:
		return "protocol missing"
	case TypeMismatch:
		return "type mismatch"
	case IndexOutOfBounds:
		return "index out of bounds"
	case StackCorruption:
		return "stack corruption"
	case PropertyMissing:
		return "property missing"
	default:
		return "unknown error"
	}
}

// RuntimeError is the single error type for every fatal condition the
// interpreter can hit. There is no in-language recovery (spec.md §7):
// cmd/sanscript prints it and exits non-zero.
type RuntimeError struct {
	Kind ErrorKind
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newError(kind ErrorKind, format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// NewError builds a RuntimeError of the given kind. Exported so the
// built-in method bodies in lang/types can raise the same taxonomy as the
// interpreter itself.
func NewError(kind ErrorKind, format string, args ...any) *RuntimeError {
	return newError(kind, format, args...)
}
