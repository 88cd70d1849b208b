//nolint:testpackage
package pathparse

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// grammar is the prefix/hierarchy grammar as a single anchored expression.
// It is used as an oracle for the scanner in [prefixLen].
var grammar = regexp.MustCompile(`(?s)^([a-zA-Z0-9]{2,}://|(?:[a-zA-Z]:)?/)?([^/]*(?:/+?[^/]+)*/?|)`)

func splitWithGrammar(path string) (string, string) {
	m := grammar.FindStringSubmatch(toSlash(path))

	return m[1], strings.TrimRight(m[2], "/")
}

var grammarSeeds = []string{
	"",
	"/",
	"//",
	"/foo",
	`C:\`,
	`C:\foo`,
	"C:",
	"C:foo",
	"c://foo",
	"vfs123://",
	"vfs123://foo",
	"vfs:///foo//bar//",
	"vfs:/foo",
	"a://",
	"1://",
	"12://x",
	"foo",
	"foo/bar",
	"foo//bar///",
	"./../.",
	"é://foo",
	"ſſ://foo",
	"\n/foo",
	"s3:\\\\bucket\\key",
}

func TestPrefixLenMatchesGrammar(t *testing.T) {
	t.Parallel()

	for _, path := range grammarSeeds {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			wantPrefix, wantHierarchy := splitWithGrammar(path)
			prefix, hierarchy := Split(path)
			assert.Equal(t, wantPrefix, prefix)
			assert.Equal(t, wantHierarchy, hierarchy)
		})
	}
}

func FuzzSplitMatchesGrammar(f *testing.F) {
	for _, seed := range grammarSeeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, path string) {
		wantPrefix, wantHierarchy := splitWithGrammar(path)
		prefix, hierarchy := Split(path)

		if prefix != wantPrefix || hierarchy != wantHierarchy {
			t.Fatalf("Split(%q) = (%q, %q), grammar gives (%q, %q)",
				path, prefix, hierarchy, wantPrefix, wantHierarchy)
		}
	})
}

func FuzzNormalize(f *testing.F) {
	for _, seed := range grammarSeeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, path string) {
		once := Normalize(path)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize is not idempotent for %q: %q then %q", path, once, twice)
		}

		prefix, _ := Split(path)
		if !strings.HasPrefix(once, prefix) {
			t.Fatalf("Normalize(%q) = %q lost prefix %q", path, once, prefix)
		}

		for _, s := range strings.Split(strings.TrimPrefix(once, prefix), "/") {
			if s == "." || s == ".." || (s == "" && once != prefix) {
				t.Fatalf("Normalize(%q) = %q kept segment %q", path, once, s)
			}
		}
	})
}
