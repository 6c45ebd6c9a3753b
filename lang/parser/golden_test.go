package parser

import (
	"os"
	"testing"

	"github.com/sanscript-lang/sanscript/internal/filetest"
)

// TestParseGolden feeds every testdata/*.san program through Parse and
// compares its dumped tree shape against the matching testdata/*.ast file,
// catching any unintended grammar or precedence regression.
func TestParseGolden(t *testing.T) {
	for _, c := range filetest.Glob(t, "testdata", "*.san", ".ast") {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			src, err := os.ReadFile(c.SourcePath)
			if err != nil {
				t.Fatal(err)
			}
			mod, err := Parse(src)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			filetest.Check(t, c, dump(mod))
		})
	}
}
