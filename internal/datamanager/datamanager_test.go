package datamanager

import (
	"bytes"
	"go/ast"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sourcegraph/lsif-index/internal/symboldata"
	"github.com/sourcegraph/lsif-index/internal/writer"
	"github.com/sourcegraph/lsif-index/protocol"
)

func newTestManager(t *testing.T) (*DataManager, *writer.Emitter) {
	t.Helper()
	var buf bytes.Buffer
	jw := writer.NewJSONWriter(&buf)
	emitter := writer.NewEmitter(jw)
	manager := New(emitter, "/root", "/root/out")
	t.Cleanup(func() { require.NoError(t, jw.Flush()) })
	return manager, emitter
}

func TestGetOrCreateDocumentIsIdempotent(t *testing.T) {
	manager, _ := newTestManager(t)

	first := manager.GetOrCreateDocument("a.go", "file:///a.go", nil)
	second := manager.GetOrCreateDocument("a.go", "file:///a.go", nil)
	require.Same(t, first, second)
}

func TestDocumentDataLookupReflectsLifecycle(t *testing.T) {
	manager, _ := newTestManager(t)

	_, ok := manager.DocumentData("a.go")
	require.False(t, ok)

	doc := manager.GetOrCreateDocument("a.go", "file:///a.go", nil)
	handle, ok := manager.DocumentData("a.go")
	require.True(t, ok)
	require.Equal(t, doc.ID(), handle.ID)

	var fileNode ast.Node = &ast.File{}
	manager.EndDocument("a.go", fileNode)

	_, ok = manager.DocumentData("a.go")
	require.False(t, ok)
}

func TestEndDocumentFlushesFileScopedSymbols(t *testing.T) {
	manager, emitter := newTestManager(t)

	manager.GetOrCreateDocument("a.go", "file:///a.go", nil)
	var fileNode ast.Node = &ast.File{}

	sym := symboldata.NewStandard("foo", manager, emitter, nil)
	sym.Begin()
	sym.AddDefinition(symboldata.File{Name: "a.go", Node: fileNode}, 0, protocol.Pos{}, protocol.Pos{}, true)
	manager.PutSymbol("foo", sym)

	manager.EndDocument("a.go", fileNode)

	// The symbol's file-scoped partition was flushed but the symbol itself
	// (an unscoped, exported symbol) remains live.
	_, ok := manager.GetSymbol("foo")
	require.True(t, ok)

	require.Panics(t, func() {
		sym.AddDefinition(symboldata.File{Name: "a.go", Node: fileNode}, 1, protocol.Pos{}, protocol.Pos{}, true)
	})
}

func TestProjectProcessedEndsRemainingDocuments(t *testing.T) {
	manager, _ := newTestManager(t)

	manager.GetOrCreateDocument("a.go", "file:///a.go", nil)
	manager.ProjectProcessed()

	_, ok := manager.DocumentData("a.go")
	require.False(t, ok)
}
