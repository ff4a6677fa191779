// Package oracle wraps golang.org/x/tools/go/packages + go/types into the
// synchronous semantic query surface the indexer's visitor consults: the
// "semantic query oracle" of the indexer's data model, bound concretely to Go.
package oracle

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedImports |
	packages.NeedDeps |
	packages.NeedTypes |
	packages.NeedSyntax |
	packages.NeedTypesInfo |
	packages.NeedTypesSizes

// Program is a loaded, type-checked view of a set of packages. It is the
// concrete realization of the indexer's semantic query oracle.
type Program struct {
	Fset     *token.FileSet
	Packages []*packages.Package

	byPath map[string][]*packages.Package
}

// Load type-checks every package matching patterns rooted at dir. Per-package
// load errors (missing imports, syntax errors in a dependency) are collected
// as non-fatal diagnostics rather than aborting the whole load, since a
// partially-typed program still yields a useful index.
func Load(dir string, patterns ...string) (*Program, error) {
	cfg := &packages.Config{
		Mode: loadMode,
		Dir:  dir,
		Fset: token.NewFileSet(),
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "packages.Load")
	}

	var loadErrors *multierror.Error
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			loadErrors = multierror.Append(loadErrors, errors.Wrap(e, pkg.PkgPath))
		}
	})

	program := &Program{Fset: cfg.Fset, byPath: map[string][]*packages.Package{}}

	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		program.Packages = append(program.Packages, pkg)
		program.byPath[pkg.PkgPath] = append(program.byPath[pkg.PkgPath], pkg)
	})

	if loadErrors.ErrorOrNil() != nil {
		return program, loadErrors
	}

	return program, nil
}

// AllPackages returns every loaded package (index target or dependency) with
// the given import path. More than one is possible only for test variants.
func (p *Program) AllPackages(importPath string) []*packages.Package {
	return p.byPath[importPath]
}

// PackageOf returns the loaded package that declares obj, or nil if obj was
// not declared in any loaded package (e.g. a predeclared identifier).
func (p *Program) PackageOf(obj types.Object) *packages.Package {
	if obj == nil || obj.Pkg() == nil {
		return nil
	}

	pkgs := p.byPath[obj.Pkg().Path()]
	if len(pkgs) == 0 {
		return nil
	}

	return pkgs[0]
}

// FileOf returns the syntax tree containing pos, searching pkg's own files
// and, failing that, every loaded package (pos may belong to a dependency).
func (p *Program) FileOf(pkg *packages.Package, pos token.Pos) (f *ast.File, ok bool) {
	if pkg != nil {
		for _, file := range pkg.Syntax {
			if file.Pos() <= pos && pos <= file.End() {
				return file, true
			}
		}
	}

	for _, candidate := range p.Packages {
		for _, file := range candidate.Syntax {
			if file.Pos() <= pos && pos <= file.End() {
				return file, true
			}
		}
	}

	return nil, false
}
