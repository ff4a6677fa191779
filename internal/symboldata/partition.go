package symboldata

import "github.com/sourcegraph/lsif-index/protocol"

type definitionRange struct {
	id    uint64
	start protocol.Pos
	end   protocol.Pos
}

// Partition is the per-(symbol, document) shard of a SymbolData: the ranges
// and forwarded reference results collected while that document is open,
// flushed as item edges when the document (or the symbol's scope) ends.
type Partition struct {
	emitter  Emitter
	document uint64

	definitions      []definitionRange
	references       map[protocol.ItemProperty][]uint64
	forwardedResults []uint64

	ended bool
}

func newPartition(emitter Emitter, document uint64) *Partition {
	return &Partition{
		emitter:    emitter,
		document:   document,
		references: map[protocol.ItemProperty][]uint64{},
	}
}

// AddDefinition records defRange as a definition of the partition's symbol
// and, when tagged, additionally files it under the "definitions" reference
// property so that find-references includes the declaration site.
func (p *Partition) AddDefinition(rangeID uint64, start, end protocol.Pos, recordAsRef bool) {
	if p.ended {
		panic("lsif-index: addDefinition on an already-flushed partition")
	}
	p.definitions = append(p.definitions, definitionRange{id: rangeID, start: start, end: end})
	if recordAsRef {
		p.references[protocol.ItemPropertyDefinitions] = append(p.references[protocol.ItemPropertyDefinitions], rangeID)
	}
}

// AddReference files ref under the given property bucket, or among the
// forwarded reference results when ref names another symbol's reference
// result rather than a bare range.
func (p *Partition) AddReference(ref Reference, property protocol.ItemProperty) {
	if p.ended {
		panic("lsif-index: addReference on an already-flushed partition")
	}
	if ref.IsResult() {
		p.forwardedResults = append(p.forwardedResults, ref.ID())
		return
	}
	p.references[property] = append(p.references[property], ref.ID())
}

// FindDefinition returns the id of the definition range with the given exact
// span, used to suppress an identifier's reference when it sits on its own
// declaration.
func (p *Partition) FindDefinition(start, end protocol.Pos) (uint64, bool) {
	for _, d := range p.definitions {
		if d.start == start && d.end == end {
			return d.id, true
		}
	}
	return 0, false
}

// end flushes the partition's accumulated ranges as item edges against the
// given definition and reference result vertices (zero when the symbol never
// created one) and marks the partition as no longer accepting new ranges.
func (p *Partition) end(definitionResult, referenceResult uint64) {
	if p.ended {
		panic("lsif-index: partition flushed twice")
	}
	p.ended = true

	if len(p.definitions) > 0 && definitionResult != 0 {
		ids := make([]uint64, len(p.definitions))
		for i, d := range p.definitions {
			ids[i] = d.id
		}
		p.emitter.EmitItem(definitionResult, ids, p.document)
	}

	if referenceResult != 0 {
		for property, ids := range p.references {
			if len(ids) > 0 {
				p.emitter.EmitItemWithProperty(referenceResult, ids, p.document, property)
			}
		}
		if len(p.forwardedResults) > 0 {
			p.emitter.EmitItem(referenceResult, p.forwardedResults, p.document)
		}
	}
}
