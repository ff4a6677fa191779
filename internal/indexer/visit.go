package indexer

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/sourcegraph/lsif-index/internal/datamanager"
	"github.com/sourcegraph/lsif-index/internal/oracle"
	"github.com/sourcegraph/lsif-index/internal/resolver"
	"github.com/sourcegraph/lsif-index/internal/symboldata"
	"github.com/sourcegraph/lsif-index/protocol"
)

// visitFile walks file once, creating or growing the SymbolData for every
// identifier it declares or uses and filing a range against it. Selector
// expressions are inspected first so an access through a generic union
// constraint can claim its identifier before the general definition/reference
// pass reaches it.
func (ix *Indexer) visitFile(pkg *packages.Package, file *ast.File, filename string, doc *datamanager.DocumentData) {
	handled := map[*ast.Ident]bool{}

	ast.Inspect(file, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		res, ok := resolver.ResolveTransient(pkg.TypesInfo, sel, sel)
		if !ok {
			return true
		}

		ix.visitTransient(pkg, file, filename, doc, sel, res)
		handled[sel.Sel] = true
		return true
	})

	ast.Inspect(file, func(n ast.Node) bool {
		ident, ok := n.(*ast.Ident)
		if !ok || handled[ident] || ident.Name == "_" {
			return true
		}

		if obj, ok := pkg.TypesInfo.Defs[ident]; ok && obj != nil {
			ix.visitDefinition(pkg, file, filename, doc, ident, obj)
			return true
		}

		if obj, ok := pkg.TypesInfo.Uses[ident]; ok && obj != nil {
			ix.visitReference(pkg, file, filename, doc, ident, obj)
		}

		return true
	})
}

// visitDefinition emits a range for ident's declaration and folds it into
// obj's SymbolData, creating that data (and its hover/moniker metadata) on
// first encounter.
func (ix *Indexer) visitDefinition(pkg *packages.Package, file *ast.File, filename string, doc *datamanager.DocumentData, ident *ast.Ident, obj types.Object) {
	start, end := identRange(pkg, ident)
	info := symboldata.DefinitionInfo{File: filename, Start: start, End: end}

	symData := ix.getOrCreateSymbolData(obj)
	if symData.HasDefinitionInfo(info) {
		return
	}
	symData.RecordDefinitionInfo(info)

	rangeID := ix.emitter.EmitRange(start, end)
	doc.AddRange(rangeID)

	symData.AddDefinition(symboldata.File{Name: filename, Node: file}, rangeID, start, end, true)
	ix.stats.NumDefs++
}

// visitReference emits a range for ident's use and files it as a reference
// against definitionObj's SymbolData, creating that data on first encounter
// (covers references into dependencies, which never appear in Defs).
func (ix *Indexer) visitReference(pkg *packages.Package, file *ast.File, filename string, doc *datamanager.DocumentData, ident *ast.Ident, definitionObj types.Object) {
	start, end := identRange(pkg, ident)
	symData := ix.getOrCreateSymbolData(definitionObj)

	rangeID := ix.emitter.EmitRange(start, end)
	doc.AddRange(rangeID)

	symData.AddReference(symboldata.File{Name: filename, Node: file}, symboldata.RangeReference(rangeID), protocol.ItemPropertyReferences)
}

// visitTransient handles a selector expression resolved as an access through
// a generic union constraint: the range is filed as a reference against a
// synthesized UnionOrIntersection symbol that forwards to every term's own
// SymbolData.
func (ix *Indexer) visitTransient(pkg *packages.Package, file *ast.File, filename string, doc *datamanager.DocumentData, sel *ast.SelectorExpr, res *resolver.Resolution) {
	symData, ok := ix.manager.GetSymbol(res.ID)
	if !ok {
		elements := make([]symboldata.SymbolData, 0, len(res.Elements))
		for _, elemObj := range res.Elements {
			elements = append(elements, ix.getOrCreateSymbolData(elemObj))
		}

		transient := symboldata.NewUnionOrIntersection(res.ID, ix.manager, ix.emitter, nil, symboldata.File{Name: filename, Node: file}, elements)
		transient.Begin()
		ix.manager.PutSymbol(res.ID, transient)
		symData = transient
	}

	start, end := identRange(pkg, sel.Sel)
	rangeID := ix.emitter.EmitRange(start, end)
	doc.AddRange(rangeID)

	symData.AddReference(symboldata.File{Name: filename, Node: file}, symboldata.RangeReference(rangeID), protocol.ItemPropertyReferences)
}

// getOrCreateSymbolData returns the SymbolData registered for obj, resolving
// and constructing it (along with whatever dependent symbols its variant
// needs) on first encounter.
func (ix *Indexer) getOrCreateSymbolData(obj types.Object) symboldata.SymbolData {
	return ix.buildSymbolData(resolver.Resolve(ix.cache, obj))
}

// buildSymbolData turns a Resolution into a live SymbolData, recursively
// resolving the dependent symbols a TypeAlias or Method variant forwards to.
// The data manager's own registry makes this idempotent: a Resolution whose
// id is already registered returns the existing SymbolData untouched.
func (ix *Indexer) buildSymbolData(res *resolver.Resolution) symboldata.SymbolData {
	if existing, ok := ix.manager.GetSymbol(res.ID); ok {
		return existing
	}

	scope := ix.scopeNode(res.Object)

	var symData symboldata.SymbolData
	switch res.Kind {
	case resolver.KindTypeAlias:
		target := ix.buildSymbolData(resolver.Resolve(ix.cache, res.Target))
		symData = symboldata.NewAliased(res.ID, ix.manager, ix.emitter, scope, target, res.Rename)

	case resolver.KindMethod:
		bases := make([]symboldata.SymbolData, 0, len(res.Bases))
		for _, baseObj := range res.Bases {
			bases = append(bases, ix.buildSymbolData(resolver.Resolve(ix.cache, baseObj)))
		}
		symData = symboldata.NewMethod(res.ID, ix.manager, ix.emitter, scope, ix.declarationFile(res.Object), bases)

	default:
		symData = symboldata.NewStandard(res.ID, ix.manager, ix.emitter, scope)
	}

	symData.Begin()
	ix.manager.PutSymbol(res.ID, symData)
	ix.attachSymbolMetadata(res.Object, symData)
	return symData
}

// attachSymbolMetadata emits obj's hover result and, when applicable, its
// export or import moniker. This runs exactly once per symbol, at
// construction, since hover and monikers hang off the shared result set
// rather than any individual range.
func (ix *Indexer) attachSymbolMetadata(obj types.Object, symData symboldata.SymbolData) {
	objPkg := ix.program.PackageOf(obj)
	symData.AddHover(ix.program.HoverText(objPkg, obj))

	if pkgName, ok := obj.(*types.PkgName); ok {
		ix.emitImportMonikerForImport(pkgName, symData)
		return
	}

	owned := objPkg != nil && ix.owns(objPkg)
	if owned && obj.Exported() {
		ix.emitExportMoniker(obj, symData)
		return
	}

	if !owned {
		ix.emitImportMonikerForObject(obj, symData)
	}
}

// emitExportMoniker attaches an export moniker naming obj's position within
// the module being indexed.
func (ix *Indexer) emitExportMoniker(obj types.Object, symData symboldata.SymbolData) {
	file, ident := ix.identAt(obj.Pos())
	if file == nil || ident == nil {
		return
	}
	identifier := oracle.MonikerIdentifier(file, ident, obj)
	symData.AddMoniker(protocol.MonikerKindExport, joinMoniker(oracle.MonikerPackage(obj), identifier), 0)
}

// emitImportMonikerForObject attaches an import moniker for obj when its
// package path falls under a dependency the caller told us the version of;
// an object from an untracked dependency gets no moniker at all, same as the
// bare reference handling for code outside any known module.
func (ix *Indexer) emitImportMonikerForObject(obj types.Object, symData symboldata.SymbolData) {
	path := oracle.MonikerPackage(obj)
	for _, prefix := range oracle.PackagePrefixes(path) {
		version, ok := ix.config.Dependencies[prefix]
		if !ok {
			continue
		}

		file, ident := ix.identAt(obj.Pos())
		if file == nil || ident == nil {
			return
		}
		identifier := oracle.MonikerIdentifier(file, ident, obj)
		packageInformation := ix.getOrCreatePackageInformation(prefix, version)
		symData.AddMoniker(protocol.MonikerKindImport, joinMoniker(path, identifier), packageInformation)
		return
	}
}

// emitImportMonikerForImport is the PkgName-specific case: an import
// statement's moniker identifies only the imported package, never a member
// of it.
func (ix *Indexer) emitImportMonikerForImport(pkgName *types.PkgName, symData symboldata.SymbolData) {
	path := oracle.MonikerPackage(pkgName)
	for _, prefix := range oracle.PackagePrefixes(path) {
		version, ok := ix.config.Dependencies[prefix]
		if !ok {
			continue
		}
		packageInformation := ix.getOrCreatePackageInformation(prefix, version)
		symData.AddMoniker(protocol.MonikerKindImport, path, packageInformation)
		return
	}
}

func joinMoniker(pkg, identifier string) string {
	if identifier == "" {
		return pkg
	}
	return pkg + ":" + identifier
}

// declarationFile returns the File a Method variant files its own
// definitions under: the file obj itself is declared in.
func (ix *Indexer) declarationFile(obj types.Object) symboldata.File {
	file, _ := ix.identAt(obj.Pos())
	return symboldata.File{Name: ix.program.Fset.Position(obj.Pos()).Filename, Node: file}
}

// scopeNode returns the *ast.FuncDecl a local object (a function body's
// variable, constant, or label) is scoped to, or nil for anything declared
// at package scope. Go has no block-level LSIF scoping in this indexer;
// every local symbol is cleared when its enclosing function finishes, not
// when its narrower lexical block does.
func (ix *Indexer) scopeNode(obj types.Object) ast.Node {
	if obj == nil || !isLocal(obj) {
		return nil
	}

	file, _ := ix.identAt(obj.Pos())
	if file == nil {
		return nil
	}

	path, _ := astutil.PathEnclosingInterval(file, obj.Pos(), obj.Pos())
	for _, n := range path {
		if fn, ok := n.(*ast.FuncDecl); ok {
			return fn
		}
	}
	return nil
}

func isLocal(obj types.Object) bool {
	switch obj.(type) {
	case *types.Var, *types.Const, *types.Label:
	default:
		return false
	}

	pkg := obj.Pkg()
	if pkg == nil {
		return false
	}

	parent := obj.Parent()
	return parent != nil && parent != pkg.Scope() && parent != types.Universe
}

// identAt returns the syntax file and identifier node found at pos, used to
// recompute moniker qualifiers and a Method's declaring file from a
// types.Object alone.
func (ix *Indexer) identAt(pos token.Pos) (*ast.File, *ast.Ident) {
	file, ok := ix.program.FileOf(nil, pos)
	if !ok {
		return nil, nil
	}

	path, _ := astutil.PathEnclosingInterval(file, pos, pos)
	for _, n := range path {
		if id, ok := n.(*ast.Ident); ok {
			return file, id
		}
	}
	return file, nil
}

// identRange transforms ident's 1-indexed source position into a 0-indexed
// LSIF range. A quoted import-spec name has its surrounding quotes trimmed
// from the resulting bounds.
func identRange(pkg *packages.Package, ident *ast.Ident) (protocol.Pos, protocol.Pos) {
	pos := pkg.Fset.Position(ident.Pos())

	adjustment := 0
	if strings.HasPrefix(ident.Name, `"`) {
		adjustment = 1
	}

	line := pos.Line - 1
	column := pos.Column - 1
	n := len(ident.Name)

	start := protocol.Pos{Line: line, Character: column + adjustment}
	end := protocol.Pos{Line: line, Character: column + n - adjustment}
	return start, end
}

// addImportsToPackage gives every import spec in p's files a synthetic Defs
// entry, so import identifiers are indexed uniformly with every other
// definition instead of needing a special case in visitFile.
func (ix *Indexer) addImportsToPackage(p *packages.Package) {
	for _, f := range p.Syntax {
		for _, spec := range f.Imports {
			imported := p.Imports[strings.Trim(spec.Path.Value, `"`)]
			if imported == nil {
				continue
			}

			name := importSpecName(spec)
			ident := &ast.Ident{NamePos: spec.Pos(), Name: name}
			p.TypesInfo.Defs[ident] = types.NewPkgName(spec.Pos(), p.Types, name, imported.Types)
		}
	}
}

func importSpecName(spec *ast.ImportSpec) string {
	if spec.Name != nil {
		return spec.Name.String()
	}
	return spec.Path.Value
}
