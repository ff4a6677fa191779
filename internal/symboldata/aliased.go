package symboldata

import (
	"fmt"
	"go/ast"

	"github.com/sourcegraph/lsif-index/protocol"
)

// Aliased is the SymbolData variant for Go type aliases (type A = B): it
// holds a non-owning reference to the symbol it aliases and, unless the
// alias renames its target, forwards definitions and references there
// instead of accumulating its own.
type Aliased struct {
	*base
	target SymbolData
	rename bool
}

// NewAliased constructs an Aliased SymbolData for id aliasing target. rename
// is true when the alias binds a different name than the target's own.
func NewAliased(id Id, ctx Context, emitter Emitter, scope ast.Node, target SymbolData, rename bool) *Aliased {
	a := &Aliased{base: newBase(id, ctx, emitter, scope), target: target, rename: rename}
	a.self = a
	return a
}

func (a *Aliased) Begin() {
	a.base.Begin()
	a.emitter.EmitNext(a.resultSet, a.target.ResultSet())
	// AddReference always forwards into the target's own partition, so the
	// target needs its reference result primed up front the same way
	// Method.Begin primes each of its bases'.
	a.target.GetOrCreateReferenceResult()
}

func (a *Aliased) AddDefinition(file File, defRange uint64, start, end protocol.Pos, recordAsRef bool) {
	if a.rename {
		a.getOrCreateDefinitionResult()
		a.emitter.EmitNext(defRange, a.resultSet)
		a.getOrCreatePartition(file).AddDefinition(defRange, start, end, recordAsRef)
		return
	}

	a.emitter.EmitNext(defRange, a.resultSet)
	a.target.Partition(file).AddReference(RangeReference(defRange), protocol.ItemPropertyReferences)
}

func (a *Aliased) AddReference(file File, ref Reference, property protocol.ItemProperty) {
	if !ref.IsResult() {
		a.emitter.EmitNext(ref.ID(), a.resultSet)
	}
	a.target.Partition(file).AddReference(ref, property)
}

func (a *Aliased) FindDefinition(file string, start, end protocol.Pos) (uint64, bool) {
	if a.rename {
		return a.base.FindDefinition(file, start, end)
	}
	return a.target.FindDefinition(file, start, end)
}

func (a *Aliased) GetOrCreateReferenceResult() uint64 {
	panic(fmt.Sprintf("lsif-index: alias symbol %q does not own a reference result", a.id))
}
