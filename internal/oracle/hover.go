package oracle

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"github.com/sourcegraph/lsif-index/protocol"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

// HoverText renders the quick-info contents for an object: a language-tagged
// signature line followed by its doc comment, if any can be found among the
// syntax trees of pkg (or, for a package import, the imported package itself).
func (p *Program) HoverText(pkg *packages.Package, obj types.Object) []protocol.MarkedString {
	signature, extra := TypeString(obj)
	return toMarkedString(signature, p.docString(pkg, obj), extra)
}

func (p *Program) docString(pkg *packages.Package, obj types.Object) string {
	if pkgName, ok := obj.(*types.PkgName); ok {
		return p.packageDocString(pkgName.Imported().Path())
	}

	if pkg == nil {
		return ""
	}

	for _, file := range pkg.Syntax {
		if file.Pos() <= obj.Pos() && obj.Pos() <= file.End() {
			return docCommentAt(file, obj.Pos())
		}
	}

	return ""
}

// packageDocString returns the first non-empty file-level doc comment found
// among the files of the package with the given import path, searching both
// indexed packages and their transitive dependencies.
func (p *Program) packageDocString(importPath string) string {
	for _, pkg := range p.AllPackages(importPath) {
		for _, file := range pkg.Syntax {
			if text := file.Doc.Text(); text != "" {
				return text
			}
		}
	}

	return ""
}

// docCommentAt returns the doc comment attached to the declaration enclosing pos.
func docCommentAt(file *ast.File, pos token.Pos) string {
	path, _ := astutil.PathEnclosingInterval(file, pos, pos)
	for _, node := range path {
		switch n := node.(type) {
		case *ast.FuncDecl:
			return n.Doc.Text()
		case *ast.GenDecl:
			return n.Doc.Text()
		case *ast.TypeSpec:
			if n.Doc.Text() != "" {
				return n.Doc.Text()
			}
		case *ast.ValueSpec:
			if n.Doc.Text() != "" {
				return n.Doc.Text()
			}
		case *ast.Field:
			if n.Doc.Text() != "" {
				return n.Doc.Text()
			}
		}
	}

	return ""
}

func toMarkedString(signature, docstring, extra string) []protocol.MarkedString {
	var contents []protocol.MarkedString
	if signature != "" {
		contents = append(contents, protocol.NewMarkedString(signature))
	}
	if docstring != "" {
		contents = append(contents, protocol.RawMarkedString(docstring))
	}
	if extra != "" {
		contents = append(contents, protocol.NewMarkedString(extra))
	}

	return contents
}

// cacheKey returns a string uniquely identifying the package/object pair, or
// the empty string when the object has no enclosing package and is not a
// package name.
func cacheKey(pkg *types.Package, obj types.Object) string {
	if pkg != nil {
		return fmt.Sprintf("%s::%d", pkg.Path(), obj.Pos())
	}

	if pkgName, ok := obj.(*types.PkgName); ok {
		return pkgName.Imported().Path()
	}

	return ""
}

// CacheKey exports cacheKey for callers outside the package that key data on
// a (package, object) pair, such as resolver.ID's symbol ids.
func CacheKey(pkg *types.Package, obj types.Object) string {
	return cacheKey(pkg, obj)
}
