package maincmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mna/mainer"

	"github.com/sanscript-lang/sanscript/lang/compiler"
	"github.com/sanscript-lang/sanscript/lang/machine"
	"github.com/sanscript-lang/sanscript/lang/parser"
	"github.com/sanscript-lang/sanscript/lang/types"
)

const binName = "sanscript"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<path>]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<path>]
       %[1]s -h|--help
       %[1]s -v|--version

Compiles and runs a program. With no path argument, the program is read
from standard input.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
`, binName)
)

// Cmd is the sanscript command-line tool: scan, parse, compile and run one
// program read from a file path argument, or from stdin if none is given.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args []string
}

func (c *Cmd) SetArgs(args []string) { c.args = args }

func (c *Cmd) SetFlags(map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) > 1 {
		return fmt.Errorf("at most one path argument is accepted, got %d", len(c.args))
	}
	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false, EnvPrefix: binName + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	code, err := Run(stdio, c.args...)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		if code == 0 {
			code = 1
		}
	}
	return mainer.ExitCode(code)
}

// Run reads the program named by paths[0] (or stdin, if paths is empty),
// compiles it and runs it on a fresh Thread wired to stdio. It returns the
// process exit code, and any error that should be reported to the user.
func Run(stdio mainer.Stdio, paths ...string) (int, error) {
	src, err := readSource(stdio.Stdin, paths...)
	if err != nil {
		return 1, err
	}

	mod, err := parser.Parse(src)
	if err != nil {
		return 1, err
	}

	code, err := compiler.Compile(mod)
	if err != nil {
		return 1, err
	}

	th := &machine.Thread{
		Builtins: types.Bootstrap(),
		Stdout:   stdio.Stdout,
		Stderr:   stdio.Stderr,
	}
	return th.Run(code)
}

func readSource(stdin io.Reader, paths ...string) ([]byte, error) {
	if len(paths) == 0 {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(paths[0])
}
