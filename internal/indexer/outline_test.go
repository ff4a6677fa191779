package indexer

import (
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/sourcegraph/lsif-index/internal/datamanager"
	"github.com/sourcegraph/lsif-index/internal/writer"
)

const outlineFixture = `package fixture

import (
	"fmt"
	"os"
)

const (
	A = 1
	B = 2
)

type Greeter struct {
	Name string
}

func (g *Greeter) Hello() string {
	if g.Name == "" {
		return "hello, stranger"
	}
	return "hello, " + g.Name
}

var Default = Greeter{Name: "world"}

func main() {
	fmt.Println(Default.Hello())
	_ = os.Stdout
}
`

func parseFixture(t *testing.T) (*packages.Package, *ast.File) {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "fixture.go", outlineFixture, parser.ParseComments)
	require.NoError(t, err)
	return &packages.Package{Fset: fset}, file
}

func TestFoldingRangesCoversImportsAndBlocks(t *testing.T) {
	pkg, file := parseFixture(t)
	ranges := foldingRanges(pkg, file)

	var kinds []string
	for _, r := range ranges {
		kinds = append(kinds, r.Kind)
	}
	require.Contains(t, kinds, "imports")
	require.Contains(t, kinds, "region")

	// The const group folds since it spans several source lines; a genuinely
	// single-line construct would not appear at all, which this asserts
	// indirectly by requiring every returned range to span at least one line.
	for _, r := range ranges {
		require.Greater(t, r.EndLine, r.StartLine)
	}
}

func TestParseErrorPosition(t *testing.T) {
	filename, rng, ok := parseErrorPosition("fixture.go:12:5")
	require.True(t, ok)
	require.Equal(t, "fixture.go", filename)
	require.Equal(t, 11, rng.Start.Line)
	require.Equal(t, 4, rng.Start.Character)
	require.Equal(t, rng.Start, rng.End)

	_, _, ok = parseErrorPosition("malformed")
	require.False(t, ok)
}

func TestDiagnosticsByFileBucketsByFilenameAndKind(t *testing.T) {
	pkg := &packages.Package{
		Errors: []packages.Error{
			{Pos: "a.go:1:1", Msg: "syntax error", Kind: packages.ParseError},
			{Pos: "a.go:2:1", Msg: "undefined: x", Kind: packages.TypeError},
			{Pos: "malformed", Msg: "ignored"},
		},
	}

	byFile := diagnosticsByFile(pkg)
	require.Len(t, byFile["a.go"], 2)
	require.Equal(t, "go/parser", byFile["a.go"][0].Source)
	require.Equal(t, "go/types", byFile["a.go"][1].Source)
}

func TestReceiverTypeName(t *testing.T) {
	_, file := parseFixture(t)

	var fn *ast.FuncDecl
	for _, decl := range file.Decls {
		if d, ok := decl.(*ast.FuncDecl); ok && d.Name.Name == "Hello" {
			fn = d
		}
	}
	require.NotNil(t, fn)
	require.Equal(t, "Greeter", receiverTypeName(fn))

	for _, decl := range file.Decls {
		if d, ok := decl.(*ast.FuncDecl); ok && d.Name.Name == "main" {
			require.Equal(t, "", receiverTypeName(d))
		}
	}
}

func newTestIndexer(t *testing.T) (*Indexer, *datamanager.DataManager) {
	t.Helper()
	emitter := writer.NewEmitter(writer.NewJSONWriter(io.Discard))
	manager := datamanager.New(emitter, "/repo", "/repo")
	ix := New(Config{RepositoryRoot: "/repo", ProjectRoot: "/repo"})
	ix.emitter = emitter
	ix.manager = manager
	return ix, manager
}

func TestDocumentSymbolsNestsMethodUnderPrecedingType(t *testing.T) {
	pkg, file := parseFixture(t)
	ix, manager := newTestIndexer(t)
	doc := manager.GetOrCreateDocument("fixture.go", "file:///fixture.go", nil)

	roots := ix.documentSymbols(pkg, file, doc)

	var names []uint64
	for _, r := range roots {
		names = append(names, r.ID)
	}
	require.NotEmpty(t, names)

	// Greeter's TypeSpec should carry Hello as a child rather than as a
	// sibling root entry, since Hello is declared after Greeter in Decls.
	var greeterChildren int
	for _, r := range roots {
		greeterChildren += len(r.Children)
	}
	require.Equal(t, 1, greeterChildren, "Hello should nest under Greeter, not appear at document root")

	// A, B, Greeter, Default, and main are the five file-scope roots; Hello
	// nests under Greeter instead of adding a sixth.
	require.Len(t, roots, 5)
}

func TestGetOrCreatePackageInformationMemoizesPerDependency(t *testing.T) {
	ix, _ := newTestIndexer(t)

	first := ix.getOrCreatePackageInformation("github.com/pkg/errors", "v0.9.1")
	second := ix.getOrCreatePackageInformation("github.com/pkg/errors", "v0.9.1")
	require.Equal(t, first, second)

	third := ix.getOrCreatePackageInformation("github.com/pkg/errors", "v0.9.2")
	require.NotEqual(t, first, third)
}
