package symboldata

import (
	"go/ast"

	"github.com/sourcegraph/lsif-index/protocol"
)

// UnionOrIntersection is the SymbolData variant for a transient symbol the
// type oracle synthesizes for a property or method access on a union or
// intersection of types: it has no declaration of its own and simply
// forwards references to every element's SymbolData. A transient symbol is
// minted fresh at its one access site, so it has exactly one file.
type UnionOrIntersection struct {
	*base
	file     File
	elements []SymbolData
}

// NewUnionOrIntersection constructs a transient SymbolData for id at file,
// forwarding to the given element symbols.
func NewUnionOrIntersection(id Id, ctx Context, emitter Emitter, scope ast.Node, file File, elements []SymbolData) *UnionOrIntersection {
	u := &UnionOrIntersection{base: newBase(id, ctx, emitter, scope), file: file, elements: elements}
	u.self = u
	return u
}

func (u *UnionOrIntersection) Begin() {
	u.base.Begin()
	partition := u.getOrCreatePartition(u.file)
	for _, e := range u.elements {
		partition.AddReference(ResultReference(e.GetOrCreateReferenceResult()), "")
	}
}

// RecordDefinitionInfo is a no-op: definitions of a transient pseudo-symbol
// are not meaningful.
func (u *UnionOrIntersection) RecordDefinitionInfo(info DefinitionInfo) {}

// AddDefinition is a no-op for the same reason.
func (u *UnionOrIntersection) AddDefinition(file File, defRange uint64, start, end protocol.Pos, recordAsRef bool) {
}

func (u *UnionOrIntersection) AddReference(file File, ref Reference, property protocol.ItemProperty) {
	if !ref.IsResult() {
		u.emitter.EmitNext(ref.ID(), u.resultSet)
	}

	for _, e := range u.elements {
		e.Partition(file).AddReference(ref, property)
	}
}
