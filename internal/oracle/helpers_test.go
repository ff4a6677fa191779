package oracle

import (
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// getTestPackages loads the fixture package under testdata/typestring.
func getTestPackages(t *testing.T) []*packages.Package {
	t.Helper()

	cfg := &packages.Config{Mode: loadMode, Dir: "testdata/typestring"}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		t.Fatalf("failed to load fixture package: %s", err)
	}
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			t.Fatalf("fixture package has errors: %s", e)
		}
	}

	return pkgs
}

// findDefinitionByName returns the object declaring name in one of the given
// packages, both as a pointer to it and as the value itself.
func findDefinitionByName(t *testing.T, pkgs []*packages.Package, name string) (*types.Object, types.Object) {
	t.Helper()

	for _, pkg := range pkgs {
		for ident, obj := range pkg.TypesInfo.Defs {
			if obj != nil && ident.Name == name {
				return &obj, obj
			}
		}
	}

	t.Fatalf("no definition named %q found in fixture package", name)
	return nil, nil
}

// stripIndent removes the common leading tab indentation from a multi-line
// raw string literal used to express an expected formatted type body.
func stripIndent(s string) string {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, "\t\t\t")
	}

	return strings.Join(lines, "\n")
}
