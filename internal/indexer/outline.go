package indexer

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/sourcegraph/lsif-index/internal/datamanager"
	"github.com/sourcegraph/lsif-index/protocol"
)

// foldingRanges returns one folding range per multi-line block body and
// per parenthesized import/const/var/type group in file.
func foldingRanges(pkg *packages.Package, file *ast.File) []protocol.FoldingRange {
	var ranges []protocol.FoldingRange

	addRange := func(open, close token.Pos, kind string) {
		start := pkg.Fset.Position(open)
		end := pkg.Fset.Position(close)
		if start.Line == end.Line {
			return
		}
		ranges = append(ranges, protocol.FoldingRange{
			StartLine:      start.Line - 1,
			StartCharacter: start.Column,
			EndLine:        end.Line - 1,
			EndCharacter:   end.Column - 1,
			Kind:           kind,
		})
	}

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || !gen.Lparen.IsValid() {
			continue
		}
		kind := "region"
		if gen.Tok == token.IMPORT {
			kind = "imports"
		}
		addRange(gen.Lparen, gen.Rparen, kind)
	}

	ast.Inspect(file, func(n ast.Node) bool {
		if block, ok := n.(*ast.BlockStmt); ok {
			addRange(block.Lbrace, block.Rbrace, "region")
		}
		return true
	})

	return ranges
}

// diagnosticsByFile buckets pkg's load/parse/type errors by the filename
// each one names, for filing against the matching DocumentData.
func diagnosticsByFile(pkg *packages.Package) map[string][]protocol.Diagnostic {
	result := map[string][]protocol.Diagnostic{}

	for _, pkgErr := range pkg.Errors {
		filename, rng, ok := parseErrorPosition(pkgErr.Pos)
		if !ok {
			continue
		}

		severity := 1 // error
		source := "go/types"
		if pkgErr.Kind == packages.ParseError {
			source = "go/parser"
		}

		result[filename] = append(result[filename], protocol.Diagnostic{
			Severity: severity,
			Message:  pkgErr.Msg,
			Source:   source,
			Range:    rng,
		})
	}

	return result
}

// parseErrorPosition parses a packages.Error's "file:line:col" Pos field into
// a zero-width LSIF range at that position.
func parseErrorPosition(pos string) (filename string, rng protocol.Range, ok bool) {
	parts := strings.Split(pos, ":")
	if len(parts) < 3 {
		return "", protocol.Range{}, false
	}

	col, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return "", protocol.Range{}, false
	}
	line, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return "", protocol.Range{}, false
	}
	filename = strings.Join(parts[:len(parts)-2], ":")

	p := protocol.Pos{Line: line - 1, Character: col - 1}
	return filename, protocol.Range{Start: p, End: p}, true
}

// documentSymbols builds the per-document outline tree: one entry per
// top-level declaration, with methods nested under the type they were
// declared against when that type is itself declared at file scope.
func (ix *Indexer) documentSymbols(pkg *packages.Package, file *ast.File, doc *datamanager.DocumentData) []protocol.RangeBasedDocumentSymbol {
	typeNodes := map[string]*protocol.RangeBasedDocumentSymbol{}
	var rootOrder []*protocol.RangeBasedDocumentSymbol

	emit := func(ident *ast.Ident) (uint64, bool) {
		if ident == nil {
			return 0, false
		}
		start, end := identRange(pkg, ident)
		rangeID := ix.emitter.EmitRange(start, end)
		doc.AddRange(rangeID)
		return rangeID, true
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					rangeID, ok := emit(s.Name)
					if !ok {
						continue
					}
					node := &protocol.RangeBasedDocumentSymbol{ID: rangeID}
					typeNodes[s.Name.Name] = node
					rootOrder = append(rootOrder, node)

				case *ast.ValueSpec:
					for _, name := range s.Names {
						if rangeID, ok := emit(name); ok {
							rootOrder = append(rootOrder, &protocol.RangeBasedDocumentSymbol{ID: rangeID})
						}
					}
				}
			}

		case *ast.FuncDecl:
			rangeID, ok := emit(d.Name)
			if !ok {
				continue
			}
			node := &protocol.RangeBasedDocumentSymbol{ID: rangeID}

			// Nests only when the receiver's TypeSpec was already seen
			// earlier in Decls order, the idiomatic layout (type then its
			// methods); a method declared ahead of its type falls through
			// to the document root instead.
			if owner := receiverTypeName(d); owner != "" {
				if parent, ok := typeNodes[owner]; ok {
					parent.Children = append(parent.Children, *node)
					continue
				}
			}
			rootOrder = append(rootOrder, node)
		}
	}

	roots := make([]protocol.RangeBasedDocumentSymbol, len(rootOrder))
	for i, node := range rootOrder {
		roots[i] = *node
	}
	return roots
}

func receiverTypeName(fn *ast.FuncDecl) string {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return ""
	}
	expr := fn.Recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}
