package resolver

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sourcegraph/lsif-index/internal/symbols"
)

const fixtureSrc = `
package fixture

type Base interface {
	Foo() string
}

type Impl struct {
	Base
}

func (i *Impl) Foo() string { return "" }

type Alias = Impl

type Renamed = Base
`

func checkFixture(t *testing.T) *types.Package {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "fixture.go", fixtureSrc, 0)
	require.NoError(t, err)

	conf := types.Config{Importer: importer.Default()}
	info := &types.Info{Defs: map[*ast.Ident]types.Object{}}
	pkg, err := conf.Check("fixture", fset, []*ast.File{file}, info)
	require.NoError(t, err)
	return pkg
}

func TestResolveMethodFindsBase(t *testing.T) {
	pkg := checkFixture(t)
	cache := symbols.New()

	impl, _ := pkg.Scope().Lookup("Impl").Type().(*types.Named)
	require.NotNil(t, impl)

	var method *types.Func
	for i := 0; i < impl.NumMethods(); i++ {
		if impl.Method(i).Name() == "Foo" {
			method = impl.Method(i)
		}
	}
	require.NotNil(t, method)

	resolution := resolveMethod(cache, method, method.Type().(*types.Signature).Recv())
	require.Equal(t, KindMethod, resolution.Kind)
	require.Len(t, resolution.BaseIDs, 1)
}

func TestAliasTargetDetectsTypeAlias(t *testing.T) {
	pkg := checkFixture(t)

	aliasObj := pkg.Scope().Lookup("Alias")
	tn, ok := aliasObj.(*types.TypeName)
	require.True(t, ok)

	target, rename, ok := aliasTarget(tn)
	require.True(t, ok)
	require.True(t, rename)
	require.Equal(t, "Impl", target.Name())
}

func TestAliasTargetNonAliasIsFalse(t *testing.T) {
	pkg := checkFixture(t)

	implObj := pkg.Scope().Lookup("Impl")
	tn, ok := implObj.(*types.TypeName)
	require.True(t, ok)

	_, _, ok = aliasTarget(tn)
	require.False(t, ok)
}
