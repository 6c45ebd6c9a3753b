package types

import "github.com/sanscript-lang/sanscript/lang/machine"

func typeMismatch(expected string, got machine.Kind) error {
	return machine.NewError(machine.TypeMismatch, "expected %s, got %s", expected, got)
}

func indexOutOfBounds(idx, length int) error {
	return machine.NewError(machine.IndexOutOfBounds, "index %d out of bounds for list of length %d", idx, length)
}
