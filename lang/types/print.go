package types

import (
	"fmt"
	"strings"

	"github.com/sanscript-lang/sanscript/lang/machine"
)

// printFunc builds the globally registered print: it displays each
// argument through the type dispatch machinery and joins them with ", ",
// writing the result plus a trailing newline to the thread's output
// stream.
func printFunc() machine.Value {
	return native("print", machine.ArgAnyPat(), func(th *machine.Thread, args []machine.Value) (machine.Value, error) {
		parts := make([]string, len(args))
		for i, v := range args {
			s, err := machine.Display(th, v)
			if err != nil {
				return machine.Value{}, err
			}
			parts[i] = s
		}
		fmt.Fprintln(th.Out(), strings.Join(parts, ", "))
		return machine.NullValue, nil
	})
}
