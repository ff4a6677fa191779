package symbols

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureSrc = `
package fixture

type Base interface {
	Foo()
}

type Middle interface {
	Base
	Bar()
}

type Impl struct {
	Middle
	Name string
}

func (i *Impl) Foo() {}
`

func mustCheck(t *testing.T) (*types.Package, *token.FileSet) {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "fixture.go", fixtureSrc, 0)
	require.NoError(t, err)

	conf := types.Config{Importer: importer.Default()}
	info := &types.Info{Defs: map[*ast.Ident]types.Object{}}
	pkg, err := conf.Check("fixture", fset, []*ast.File{file}, info)
	require.NoError(t, err)
	return pkg, fset
}

func findTypeName(pkg *types.Package, name string) *types.TypeName {
	obj := pkg.Scope().Lookup(name)
	if obj == nil {
		return nil
	}
	tn, _ := obj.(*types.TypeName)
	return tn
}

func TestGetBaseSymbolsInterfaceEmbedding(t *testing.T) {
	pkg, _ := mustCheck(t)
	cache := New()

	middle := findTypeName(pkg, "Middle")
	require.NotNil(t, middle)

	bases, ok := cache.GetBaseSymbols(middle)
	require.True(t, ok)
	require.Len(t, bases, 1)
	require.Equal(t, "Base", bases[0].Name())
}

func TestGetBaseSymbolsStructEmbedding(t *testing.T) {
	pkg, _ := mustCheck(t)
	cache := New()

	impl := findTypeName(pkg, "Impl")
	require.NotNil(t, impl)

	bases, ok := cache.GetBaseSymbols(impl)
	require.True(t, ok)
	require.Len(t, bases, 1)
	require.Equal(t, "Middle", bases[0].Name())
}

func TestGetBaseSymbolsNoneCachesNegative(t *testing.T) {
	pkg, _ := mustCheck(t)
	cache := New()

	base := findTypeName(pkg, "Base")
	require.NotNil(t, base)

	_, ok := cache.GetBaseSymbols(base)
	require.False(t, ok)

	// Second call must hit the cached negative entry, not recompute.
	_, ok = cache.GetBaseSymbols(base)
	require.False(t, ok)
}

func TestFindBaseMembersTransitive(t *testing.T) {
	pkg, _ := mustCheck(t)
	cache := New()

	impl := findTypeName(pkg, "Impl")
	require.NotNil(t, impl)

	members, ok := cache.FindBaseMembers(impl, "Bar")
	require.True(t, ok)
	require.Len(t, members, 1)
	require.Equal(t, "Bar", members[0].Name())
}

func TestFindBaseMembersMissingCachesEmpty(t *testing.T) {
	pkg, _ := mustCheck(t)
	cache := New()

	impl := findTypeName(pkg, "Impl")
	require.NotNil(t, impl)

	_, ok := cache.FindBaseMembers(impl, "DoesNotExist")
	require.False(t, ok)

	_, ok = cache.FindBaseMembers(impl, "DoesNotExist")
	require.False(t, ok)
}
