package symboldata

import (
	"go/ast"
	"testing"

	"github.com/sourcegraph/lsif-index/protocol"
	"github.com/stretchr/testify/require"
)

type fakeEmitter struct{ next uint64 }

func (f *fakeEmitter) id() uint64 { f.next++; return f.next }

func (f *fakeEmitter) EmitResultSet() uint64                        { return f.id() }
func (f *fakeEmitter) EmitNext(outV, inV uint64) uint64              { return f.id() }
func (f *fakeEmitter) EmitHoverResult(c []protocol.MarkedString) uint64 { return f.id() }
func (f *fakeEmitter) EmitTextDocumentHover(outV, inV uint64) uint64 { return f.id() }
func (f *fakeEmitter) EmitMoniker(k protocol.MonikerKind, s, i string) uint64 { return f.id() }
func (f *fakeEmitter) EmitMonikerEdge(outV, inV uint64) uint64       { return f.id() }
func (f *fakeEmitter) EmitPackageInformationEdge(outV, inV uint64) uint64 { return f.id() }
func (f *fakeEmitter) EmitDefinitionResult() uint64                  { return f.id() }
func (f *fakeEmitter) EmitTextDocumentDefinition(outV, inV uint64) uint64 { return f.id() }
func (f *fakeEmitter) EmitReferenceResult() uint64                   { return f.id() }
func (f *fakeEmitter) EmitTextDocumentReferences(outV, inV uint64) uint64 { return f.id() }

type itemCall struct {
	outV     uint64
	inVs     []uint64
	document uint64
	property protocol.ItemProperty
}

type recordingEmitter struct {
	fakeEmitter
	items []itemCall
}

func (r *recordingEmitter) EmitItem(outV uint64, inVs []uint64, document uint64) uint64 {
	r.items = append(r.items, itemCall{outV: outV, inVs: inVs, document: document})
	return r.id()
}

func (r *recordingEmitter) EmitItemWithProperty(outV uint64, inVs []uint64, document uint64, property protocol.ItemProperty) uint64 {
	r.items = append(r.items, itemCall{outV: outV, inVs: inVs, document: document, property: property})
	return r.id()
}

type fakeContext struct {
	documents   map[string]DocumentHandle
	registered  map[ast.Node][]SymbolData
}

func newFakeContext() *fakeContext {
	return &fakeContext{documents: map[string]DocumentHandle{}, registered: map[ast.Node][]SymbolData{}}
}

func (c *fakeContext) DocumentData(file string) (DocumentHandle, bool) {
	d, ok := c.documents[file]
	return d, ok
}

func (c *fakeContext) ManageLifecycle(node ast.Node, data SymbolData) {
	c.registered[node] = append(c.registered[node], data)
}

func TestStandardSymbolDataLifecycle(t *testing.T) {
	emitter := &recordingEmitter{}
	ctx := newFakeContext()

	var fileNode ast.Node = &ast.File{}
	ctx.documents["a.go"] = DocumentHandle{ID: 100}
	file := File{Name: "a.go", Node: fileNode}

	sym := NewStandard("foo", ctx, emitter, nil)
	sym.Begin()
	require.NotZero(t, sym.ResultSet())

	sym.AddDefinition(file, 200, protocol.Pos{Line: 1}, protocol.Pos{Line: 1, Character: 3}, true)
	sym.AddReference(file, RangeReference(300), protocol.ItemPropertyReferences)

	require.Equal(t, []SymbolData{sym}, ctx.registered[fileNode])

	exhausted := sym.NodeProcessed(fileNode)
	require.False(t, exhausted, "an exported symbol stays live after one file's partition flushes")

	// One item edge against the definition result for the declaration
	// itself, plus one per populated reference-property bucket: the
	// declaration range again (recordAsRef filed it under "definitions")
	// and the bare reference range under "references".
	require.Len(t, emitter.items, 3)
	require.Equal(t, []uint64{200}, emitter.items[0].inVs)

	byProperty := map[protocol.ItemProperty][]uint64{}
	for _, item := range emitter.items[1:] {
		byProperty[item.property] = item.inVs
	}
	require.Equal(t, []uint64{200}, byProperty[protocol.ItemPropertyDefinitions])
	require.Equal(t, []uint64{300}, byProperty[protocol.ItemPropertyReferences])
}

func TestStandardSymbolDataTombstonePanics(t *testing.T) {
	emitter := &recordingEmitter{}
	ctx := newFakeContext()
	var fileNode ast.Node = &ast.File{}
	ctx.documents["a.go"] = DocumentHandle{ID: 1}
	file := File{Name: "a.go", Node: fileNode}

	sym := NewStandard("foo", ctx, emitter, nil)
	sym.Begin()
	sym.AddDefinition(file, 2, protocol.Pos{}, protocol.Pos{}, true)
	sym.NodeProcessed(fileNode)

	require.Panics(t, func() {
		sym.AddDefinition(file, 3, protocol.Pos{}, protocol.Pos{}, true)
	})
}

func TestAliasedSymbolDataRenameFalseRoutesToTarget(t *testing.T) {
	emitter := &recordingEmitter{}
	ctx := newFakeContext()
	var fileNode ast.Node = &ast.File{}
	ctx.documents["a.go"] = DocumentHandle{ID: 1}
	file := File{Name: "a.go", Node: fileNode}

	target := NewStandard("x", ctx, emitter, nil)
	target.Begin()

	alias := NewAliased("y", ctx, emitter, nil, target, false)
	alias.Begin()
	alias.AddDefinition(file, 10, protocol.Pos{}, protocol.Pos{Character: 1}, true)

	require.Panics(t, func() { alias.GetOrCreateReferenceResult() })

	target.NodeProcessed(fileNode)
	require.Len(t, emitter.items, 1)
	require.Equal(t, []uint64{10}, emitter.items[0].inVs)
	require.Equal(t, protocol.ItemPropertyReferences, emitter.items[0].property)
}
