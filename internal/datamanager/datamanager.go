// Package datamanager implements the global registry of project, document,
// and symbol data: the component that owns lifecycle (begin/end events) and
// the "clear on node" trigger map coupling syntax-tree traversal to symbol
// partition lifetime.
package datamanager

import (
	"fmt"
	"go/ast"

	"github.com/sourcegraph/lsif-index/internal/symboldata"
	"github.com/sourcegraph/lsif-index/internal/writer"
	"github.com/sourcegraph/lsif-index/protocol"
)

type state int

const (
	stateAbsent state = iota
	stateLive
	stateTombstone
)

type documentEntry struct {
	state state
	data  *DocumentData
}

type symbolEntry struct {
	state state
	data  symboldata.SymbolData
}

// DataManager is the engine's single source of truth for which documents and
// symbols are currently open, and the trigger map that tells it which
// symbols to flush when a given syntax node finishes processing.
type DataManager struct {
	emitter *writer.Emitter

	project *ProjectData

	documents map[string]documentEntry
	symbolIDs map[symboldata.Id]symbolEntry

	clearOnNode map[ast.Node][]symboldata.SymbolData
}

// languageID is the Project vertex's language tag.
const languageID = "go"

// New creates a DataManager and emits the project vertex and its begin event.
func New(emitter *writer.Emitter, rootDir, outDir string) *DataManager {
	projectID := emitter.EmitProject(languageID, rootDir, outDir)
	emitter.EmitBeginEvent(protocol.EventScopeProject, projectID)

	return &DataManager{
		emitter:     emitter,
		project:     newProjectData(emitter, projectID),
		documents:   map[string]documentEntry{},
		symbolIDs:   map[symboldata.Id]symbolEntry{},
		clearOnNode: map[ast.Node][]symboldata.SymbolData{},
	}
}

// GetOrCreateDocument returns the DocumentData for file, creating it (and
// emitting its vertex, begin event, and contains registration with the
// project) on first use.
func (m *DataManager) GetOrCreateDocument(file, uri string, contents []byte) *DocumentData {
	entry, ok := m.documents[file]
	if ok {
		if entry.state == stateTombstone {
			panic(fmt.Sprintf("lsif-index: document %q reopened after it was already flushed", file))
		}
		return entry.data
	}

	doc := newDocumentData(m.emitter, uri, contents)
	m.emitter.EmitBeginEvent(protocol.EventScopeDocument, doc.id)
	m.documents[file] = documentEntry{state: stateLive, data: doc}
	m.project.addDocument(doc.id)
	return doc
}

// DocumentData implements symboldata.Context: it exposes just enough of a
// live document for a partition to be opened against it.
func (m *DataManager) DocumentData(file string) (symboldata.DocumentHandle, bool) {
	entry, ok := m.documents[file]
	if !ok || entry.state != stateLive {
		return symboldata.DocumentHandle{}, false
	}
	return symboldata.DocumentHandle{ID: entry.data.id}, true
}

// ManageLifecycle implements symboldata.Context: it registers data to be
// consulted the next time node is reported processed.
func (m *DataManager) ManageLifecycle(node ast.Node, data symboldata.SymbolData) {
	for _, existing := range m.clearOnNode[node] {
		if existing == data {
			return
		}
	}
	m.clearOnNode[node] = append(m.clearOnNode[node], data)
}

// GetSymbol returns the SymbolData registered under id, if any.
func (m *DataManager) GetSymbol(id symboldata.Id) (symboldata.SymbolData, bool) {
	entry, ok := m.symbolIDs[id]
	if !ok || entry.state != stateLive {
		return nil, false
	}
	return entry.data, true
}

// PutSymbol registers a freshly constructed SymbolData under id. It panics if
// id is already tombstoned, since a flushed symbol must never be reconstructed
// (that would reopen a closed definition/reference result).
func (m *DataManager) PutSymbol(id symboldata.Id, data symboldata.SymbolData) {
	if entry, ok := m.symbolIDs[id]; ok && entry.state == stateTombstone {
		panic(fmt.Sprintf("lsif-index: symbol %q reconstructed after it was already flushed", id))
	}
	m.symbolIDs[id] = symbolEntry{state: stateLive, data: data}
}

// NodeProcessed is called by the visitor when it finishes walking node
// (either a symbol's scope node or a source file's root node). It consults
// every SymbolData registered against node and tombstones the ones that
// report themselves exhausted.
func (m *DataManager) NodeProcessed(node ast.Node) {
	registered := m.clearOnNode[node]
	delete(m.clearOnNode, node)

	for _, data := range registered {
		if data.NodeProcessed(node) {
			m.tombstoneSymbol(data)
		}
	}
}

func (m *DataManager) tombstoneSymbol(data symboldata.SymbolData) {
	for id, entry := range m.symbolIDs {
		if entry.data == data {
			m.symbolIDs[id] = symbolEntry{state: stateTombstone}
			return
		}
	}
}

// EndDocument flushes file's DocumentData — emitting its contains edge and
// result vertices for diagnostics/folding ranges/document symbols — fires
// the file-node lifecycle trigger for every symbol with an open partition
// against it, and emits the document's end event.
func (m *DataManager) EndDocument(file string, fileNode ast.Node) {
	entry, ok := m.documents[file]
	if !ok || entry.state != stateLive {
		panic(fmt.Sprintf("lsif-index: end of untracked or already-ended document %q", file))
	}

	entry.data.end()
	m.NodeProcessed(fileNode)
	m.emitter.EmitEndEvent(protocol.EventScopeDocument, entry.data.id)
	m.documents[file] = documentEntry{state: stateTombstone}
}

// ProjectProcessed runs the three-phase shutdown: every still-live symbol is
// flushed first (their partitions depend on live documents for their
// contains edges), then every still-live document, then the project itself.
// The order is load-bearing; see the package's design notes.
func (m *DataManager) ProjectProcessed() {
	for node, registered := range m.clearOnNode {
		for _, data := range registered {
			if data.NodeProcessed(node) {
				m.tombstoneSymbol(data)
			}
		}
	}
	m.clearOnNode = map[ast.Node][]symboldata.SymbolData{}

	for file, entry := range m.documents {
		if entry.state != stateLive {
			continue
		}
		entry.data.end()
		m.emitter.EmitEndEvent(protocol.EventScopeDocument, entry.data.id)
		m.documents[file] = documentEntry{state: stateTombstone}
	}

	m.project.flush()
	m.emitter.EmitEndEvent(protocol.EventScopeProject, m.project.id)
}
