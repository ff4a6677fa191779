package datamanager

import (
	"github.com/sourcegraph/lsif-index/internal/writer"
	"github.com/sourcegraph/lsif-index/protocol"
)

// DocumentData holds one Document vertex and accumulates the ranges,
// diagnostics, folding ranges, and document-symbol tree discovered while it
// is open. All accumulated state is flushed at end as one contains edge plus
// one result vertex per populated category.
type DocumentData struct {
	emitter *writer.Emitter

	id uint64

	ranges         []uint64
	diagnostics    []protocol.Diagnostic
	foldingRanges  []protocol.FoldingRange
	documentSymbol []protocol.RangeBasedDocumentSymbol

	ended bool
}

func newDocumentData(emitter *writer.Emitter, uri string, contents []byte) *DocumentData {
	id := emitter.EmitDocument(uri, contents)
	return &DocumentData{emitter: emitter, id: id}
}

// ID returns the document's vertex id.
func (d *DocumentData) ID() uint64 { return d.id }

// AddRange records rangeID as contained by this document.
func (d *DocumentData) AddRange(rangeID uint64) {
	if d.ended {
		panic("lsif-index: addRange on an already-ended document")
	}
	d.ranges = append(d.ranges, rangeID)
}

// AddDiagnostics appends to the document's diagnostic set.
func (d *DocumentData) AddDiagnostics(diagnostics []protocol.Diagnostic) {
	d.diagnostics = append(d.diagnostics, diagnostics...)
}

// SetFoldingRanges replaces the document's folding-range set.
func (d *DocumentData) SetFoldingRanges(ranges []protocol.FoldingRange) {
	d.foldingRanges = ranges
}

// SetDocumentSymbols replaces the document's document-symbol tree.
func (d *DocumentData) SetDocumentSymbols(symbols []protocol.RangeBasedDocumentSymbol) {
	d.documentSymbol = symbols
}

// end flushes every accumulated category onto the document vertex. The
// contains edge is only emitted when the document actually contains ranges:
// an empty contains edge carries no information and EmitContains already
// treats an empty inVs list as a no-op, so this is a documentation of that
// choice rather than an extra guard.
func (d *DocumentData) end() {
	if d.ended {
		panic("lsif-index: document ended twice")
	}
	d.ended = true

	d.emitter.EmitContains(d.id, d.ranges)

	if len(d.diagnostics) > 0 {
		result := d.emitter.EmitDiagnosticResult(d.diagnostics)
		d.emitter.EmitTextDocumentDiagnostic(d.id, result)
	}

	if len(d.foldingRanges) > 0 {
		result := d.emitter.EmitFoldingRangeResult(d.foldingRanges)
		d.emitter.EmitTextDocumentFoldingRange(d.id, result)
	}

	if len(d.documentSymbol) > 0 {
		result := d.emitter.EmitDocumentSymbolResult(d.documentSymbol)
		d.emitter.EmitTextDocumentDocumentSymbol(d.id, result)
	}
}
