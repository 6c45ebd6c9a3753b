// Package filetest runs golden-file tests: a program under testdata/ is fed
// through some transform and the result is compared byte-for-byte against a
// checked-in golden sibling file whose extension the caller chooses.
package filetest

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/kylelemons/godebug/diff"
)

var update = flag.Bool("test.update-golden", false, "update golden files instead of comparing against them")

// Case is one program file paired with the golden file that holds its
// expected transformed output.
type Case struct {
	Name       string // subtest name, derived from the source file's base name
	SourcePath string
	GoldenPath string
}

// Glob collects every file matching pattern under dir into Cases, deriving
// each one's golden file by replacing the source extension with goldenExt.
func Glob(t *testing.T, dir, pattern, goldenExt string) []Case {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		t.Fatal(err)
	}

	cases := make([]Case, len(matches))
	for i, m := range matches {
		base := filepath.Base(m)
		ext := filepath.Ext(base)
		cases[i] = Case{
			Name:       base[:len(base)-len(ext)],
			SourcePath: m,
			GoldenPath: filepath.Join(dir, base[:len(base)-len(ext)]+goldenExt),
		}
	}
	return cases
}

// Check compares got against the content of c.GoldenPath, failing the test
// with a unified diff on mismatch. With -test.update-golden, it instead
// (re)writes the golden file from got.
func Check(t *testing.T, c Case, got string) {
	t.Helper()

	if *update {
		if err := os.WriteFile(c.GoldenPath, []byte(got), 0o644); err != nil {
			t.Fatal(err)
		}
		return
	}

	wantb, err := os.ReadFile(c.GoldenPath)
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	want := string(wantb)
	if patch := diff.Diff(want, got); patch != "" {
		t.Errorf("%s: golden file mismatch (-want +got):\n%s", c.Name, patch)
	}
}
