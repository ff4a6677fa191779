package oracle

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
)

// MonikerPackage returns the package prefix used to construct a unique
// moniker for obj. A full moniker has the form "{package prefix}:{identifier}".
func MonikerPackage(obj types.Object) string {
	if v, ok := obj.(*types.PkgName); ok {
		return strings.Trim(v.Name(), `"`)
	}

	return obj.Pkg().Path()
}

// MonikerIdentifier returns the identifier suffix used to construct a unique
// moniker for obj, declared as ident in file. The identifier acts as a
// qualified path to obj within its package (e.g. "StructName.FieldName").
func MonikerIdentifier(file *ast.File, ident *ast.Ident, obj types.Object) string {
	if _, ok := obj.(*types.PkgName); ok {
		return ""
	}

	qualifiers := monikerIdentifierQualifiers(file, ident, obj)
	return strings.Join(append(qualifiers, ident.String()), ".")
}

// monikerIdentifierQualifiers returns the container names (structs,
// interfaces, receivers) enclosing obj, innermost last.
func monikerIdentifierQualifiers(file *ast.File, ident *ast.Ident, obj types.Object) (qualifiers []string) {
	if v, ok := obj.(*types.Var); ok && v.IsField() {
		path, _ := astutil.PathEnclosingInterval(file, ident.Pos(), ident.Pos())

		for i := len(path) - 1; i >= 0; i-- {
			switch q := path[i].(type) {
			case *ast.Field:
				if q.Pos() != v.Pos() && len(q.Names) > 0 {
					qualifiers = append(qualifiers, q.Names[0].String())
				}

			case *ast.TypeSpec:
				qualifiers = append(qualifiers, q.Name.String())
			}
		}
	}

	if signature, ok := obj.Type().(*types.Signature); ok {
		if recv := signature.Recv(); recv != nil {
			qualifiers = append(qualifiers, strings.TrimPrefix(strings.TrimPrefix(recv.Type().String(), "*"), obj.Pkg().Path()+"."))
		}
	}

	return qualifiers
}

// PackagePrefixes returns every prefix of packageName, longest first: the
// package "foo/bar/baz" yields ["foo/bar/baz", "foo/bar", "foo"].
func PackagePrefixes(packageName string) []string {
	parts := strings.Split(packageName, "/")
	prefixes := make([]string, len(parts))

	for i := 1; i <= len(parts); i++ {
		prefixes[len(parts)-i] = strings.Join(parts[:i], "/")
	}

	return prefixes
}
