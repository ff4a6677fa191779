package writer

import "github.com/sourcegraph/lsif-index/protocol"

// Emitter assigns monotonically increasing ids to every vertex and edge it
// emits and writes the resulting record to the underlying JSONWriter. None of
// its methods can fail on their own; encoding errors surface from Flush.
type Emitter struct {
	writer JSONWriter
	id     uint64
}

func NewEmitter(writer JSONWriter) *Emitter {
	return &Emitter{writer: writer}
}

// NumElements reports how many vertices and edges have been emitted so far.
func (e *Emitter) NumElements() uint64 {
	return e.id
}

func (e *Emitter) nextID() uint64 {
	e.id++
	return e.id
}

func (e *Emitter) EmitMetaData(projectRoot string, toolInfo protocol.ToolInfo) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewMetaData(id, projectRoot, toolInfo))
	return id
}

func (e *Emitter) EmitBeginEvent(scope protocol.EventScope, data uint64) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewEvent(id, protocol.EventBegin, scope, data))
	return id
}

func (e *Emitter) EmitEndEvent(scope protocol.EventScope, data uint64) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewEvent(id, protocol.EventEnd, scope, data))
	return id
}

func (e *Emitter) EmitProject(languageID, rootDir, outDir string) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewProject(id, languageID, rootDir, outDir))
	return id
}

func (e *Emitter) EmitDocument(uri string, contents []byte) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewDocument(id, uri, contents))
	return id
}

func (e *Emitter) EmitContains(outV uint64, inVs []uint64) uint64 {
	if len(inVs) == 0 {
		return 0
	}
	id := e.nextID()
	e.writer.Write(protocol.NewContains(id, outV, inVs))
	return id
}

func (e *Emitter) EmitResultSet() uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewResultSet(id))
	return id
}

func (e *Emitter) EmitRange(start, end protocol.Pos) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewRange(id, start, end))
	return id
}

func (e *Emitter) EmitNext(outV, inV uint64) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewNext(id, outV, inV))
	return id
}

func (e *Emitter) EmitDefinitionResult() uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewDefinitionResult(id))
	return id
}

func (e *Emitter) EmitTextDocumentDefinition(outV, inV uint64) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewTextDocumentDefinition(id, outV, inV))
	return id
}

func (e *Emitter) EmitReferenceResult() uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewReferenceResult(id))
	return id
}

func (e *Emitter) EmitTextDocumentReferences(outV, inV uint64) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewTextDocumentReferences(id, outV, inV))
	return id
}

func (e *Emitter) EmitHoverResult(contents []protocol.MarkedString) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewHoverResult(id, contents))
	return id
}

func (e *Emitter) EmitTextDocumentHover(outV, inV uint64) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewTextDocumentHover(id, outV, inV))
	return id
}

func (e *Emitter) EmitItem(outV uint64, inVs []uint64, document uint64) uint64 {
	if len(inVs) == 0 {
		return 0
	}
	id := e.nextID()
	e.writer.Write(protocol.NewItem(id, outV, inVs, document))
	return id
}

func (e *Emitter) EmitItemWithProperty(outV uint64, inVs []uint64, document uint64, property protocol.ItemProperty) uint64 {
	if len(inVs) == 0 {
		return 0
	}
	id := e.nextID()
	e.writer.Write(protocol.NewItemWithProperty(id, outV, inVs, document, property))
	return id
}

func (e *Emitter) EmitPackageInformation(name, manager, version string) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewPackageInformation(id, name, manager, version))
	return id
}

func (e *Emitter) EmitPackageInformationEdge(outV, inV uint64) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewPackageInformationEdge(id, outV, inV))
	return id
}

func (e *Emitter) EmitMoniker(kind protocol.MonikerKind, scheme, identifier string) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewMoniker(id, kind, scheme, identifier))
	return id
}

func (e *Emitter) EmitMonikerEdge(outV, inV uint64) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewMonikerEdge(id, outV, inV))
	return id
}

func (e *Emitter) EmitDiagnosticResult(diagnostics []protocol.Diagnostic) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewDiagnosticResult(id, diagnostics))
	return id
}

func (e *Emitter) EmitTextDocumentDiagnostic(outV, inV uint64) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewTextDocumentDiagnostic(id, outV, inV))
	return id
}

func (e *Emitter) EmitFoldingRangeResult(ranges []protocol.FoldingRange) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewFoldingRangeResult(id, ranges))
	return id
}

func (e *Emitter) EmitTextDocumentFoldingRange(outV, inV uint64) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewTextDocumentFoldingRange(id, outV, inV))
	return id
}

func (e *Emitter) EmitDocumentSymbolResult(symbols []protocol.RangeBasedDocumentSymbol) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewDocumentSymbolResult(id, symbols))
	return id
}

func (e *Emitter) EmitTextDocumentDocumentSymbol(outV, inV uint64) uint64 {
	id := e.nextID()
	e.writer.Write(protocol.NewTextDocumentDocumentSymbol(id, outV, inV))
	return id
}
