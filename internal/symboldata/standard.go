package symboldata

import (
	"go/ast"

	"github.com/sourcegraph/lsif-index/protocol"
)

// Standard is the default SymbolData variant: definitions and references are
// emitted directly against the symbol's own partitions.
type Standard struct {
	*base
}

// NewStandard constructs a Standard SymbolData for id, scoped to scope (nil
// for an exported/top-level symbol).
func NewStandard(id Id, ctx Context, emitter Emitter, scope ast.Node) *Standard {
	s := &Standard{base: newBase(id, ctx, emitter, scope)}
	s.self = s
	return s
}

func (s *Standard) AddDefinition(file File, defRange uint64, start, end protocol.Pos, recordAsRef bool) {
	s.getOrCreateDefinitionResult()
	s.emitter.EmitNext(defRange, s.resultSet)
	s.getOrCreatePartition(file).AddDefinition(defRange, start, end, recordAsRef)
}

func (s *Standard) AddReference(file File, ref Reference, property protocol.ItemProperty) {
	s.GetOrCreateReferenceResult()
	if !ref.IsResult() {
		s.emitter.EmitNext(ref.ID(), s.resultSet)
	}
	s.getOrCreatePartition(file).AddReference(ref, property)
}
