package symboldata

import (
	"go/ast"

	"github.com/sourcegraph/lsif-index/protocol"
)

// Method is the SymbolData variant for a method that may override one or
// more inherited methods through struct embedding. When it has bases, its
// own definitions and references are folded into theirs instead of
// accumulating independently, establishing the "overrides" linkage.
type Method struct {
	*base
	bases         []SymbolData
	declaringFile File
}

// NewMethod constructs a Method SymbolData for id, declared in file, with
// bases set to the method(s) it overrides (nil or empty when it overrides
// nothing).
func NewMethod(id Id, ctx Context, emitter Emitter, scope ast.Node, file File, bases []SymbolData) *Method {
	m := &Method{base: newBase(id, ctx, emitter, scope), bases: bases, declaringFile: file}
	m.self = m
	return m
}

func (m *Method) Begin() {
	m.base.Begin()
	for _, b := range m.bases {
		m.getOrCreatePartition(m.declaringFile).AddReference(ResultReference(b.GetOrCreateReferenceResult()), "")
	}
}

func (m *Method) AddDefinition(file File, defRange uint64, start, end protocol.Pos, _ bool) {
	recordAsRef := len(m.bases) == 0

	m.getOrCreateDefinitionResult()
	m.emitter.EmitNext(defRange, m.resultSet)
	m.getOrCreatePartition(file).AddDefinition(defRange, start, end, recordAsRef)

	for _, b := range m.bases {
		b.Partition(file).AddReference(RangeReference(defRange), protocol.ItemPropertyDefinitions)
	}
}

func (m *Method) AddReference(file File, ref Reference, property protocol.ItemProperty) {
	if !ref.IsResult() {
		m.emitter.EmitNext(ref.ID(), m.resultSet)
	}

	if len(m.bases) == 0 {
		m.GetOrCreateReferenceResult()
		m.getOrCreatePartition(file).AddReference(ref, property)
		return
	}

	for _, b := range m.bases {
		b.Partition(file).AddReference(ref, property)
	}
}
