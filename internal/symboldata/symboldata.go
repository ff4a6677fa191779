// Package symboldata implements the per-symbol accumulators that own a
// result-set vertex and emit its definition and reference linkage: the four
// closed variants (Standard, Aliased, Method, UnionOrIntersection) described
// by the indexer's data model, and the per-(symbol, document) partitions they
// delegate to.
package symboldata

import (
	"fmt"
	"go/ast"

	"github.com/sourcegraph/lsif-index/protocol"
)

// Id is the stable identifier of a symbol, used as the key into the data
// manager's symbol registry.
type Id string

// File identifies the document a definition or reference range belongs to:
// its document key and the syntax node whose "processed" event ends every
// partition opened against it when the owning symbol has no narrower scope.
type File struct {
	Name string
	Node ast.Node
}

// Reference names either a bare range (the common case) or a forwarded
// reference result (used by aliases and union/intersection members), the two
// shapes a partition's reference buckets may hold.
type Reference struct {
	rangeID  uint64
	resultID uint64
}

func RangeReference(id uint64) Reference  { return Reference{rangeID: id} }
func ResultReference(id uint64) Reference { return Reference{resultID: id} }

func (r Reference) IsResult() bool { return r.resultID != 0 }
func (r Reference) ID() uint64 {
	if r.resultID != 0 {
		return r.resultID
	}
	return r.rangeID
}

// DefinitionInfo identifies a declaration site for the "identifier sits on
// its own declaration" dedup check (invariant 6 of the data model).
type DefinitionInfo struct {
	File  string
	Start protocol.Pos
	End   protocol.Pos
}

// Emitter is the narrow slice of internal/writer.Emitter that SymbolData and
// Partition need; kept separate so neither depends on the concrete writer.
type Emitter interface {
	EmitResultSet() uint64
	EmitNext(outV, inV uint64) uint64
	EmitHoverResult(contents []protocol.MarkedString) uint64
	EmitTextDocumentHover(outV, inV uint64) uint64
	EmitMoniker(kind protocol.MonikerKind, scheme, identifier string) uint64
	EmitMonikerEdge(outV, inV uint64) uint64
	EmitPackageInformationEdge(outV, inV uint64) uint64
	EmitDefinitionResult() uint64
	EmitTextDocumentDefinition(outV, inV uint64) uint64
	EmitReferenceResult() uint64
	EmitTextDocumentReferences(outV, inV uint64) uint64
	EmitItem(outV uint64, inVs []uint64, document uint64) uint64
	EmitItemWithProperty(outV uint64, inVs []uint64, document uint64, property protocol.ItemProperty) uint64
}

// DocumentHandle is the information a partition needs about the document it
// is sharded against.
type DocumentHandle struct {
	ID uint64
}

// Context is the narrow capability SymbolData needs from the data manager: it
// may neither retain nor call back into the whole manager.
type Context interface {
	DocumentData(file string) (DocumentHandle, bool)
	ManageLifecycle(node ast.Node, data SymbolData)
}

// SymbolData is the shared interface implemented by all four variants.
type SymbolData interface {
	Begin()
	ResultSet() uint64
	AddHover(contents []protocol.MarkedString)
	AddMoniker(kind protocol.MonikerKind, identifier string, packageInformation uint64)
	AddDefinition(file File, defRange uint64, start, end protocol.Pos, recordAsRef bool)
	AddReference(file File, ref Reference, property protocol.ItemProperty)
	RecordDefinitionInfo(info DefinitionInfo)
	HasDefinitionInfo(info DefinitionInfo) bool
	FindDefinition(file string, start, end protocol.Pos) (uint64, bool)
	GetOrCreateReferenceResult() uint64
	NodeProcessed(node ast.Node) bool

	// Partition exposes the raw per-(symbol, document) shard for the narrow
	// set of callers (Aliased, Method, UnionOrIntersection) that must file
	// ranges into another symbol's partition directly, bypassing the
	// next-edge emission a normal AddReference/AddDefinition call performs.
	Partition(file File) *Partition
}

type slotState int

const (
	slotAbsent slotState = iota
	slotLive
	slotTombstone
)

type partitionEntry struct {
	state     slotState
	node      ast.Node
	partition *Partition
}

// base carries the state and default behavior shared by every variant: the
// result-set header, hover/moniker emission, declaration-info dedup, and
// partition lifecycle management. Variants embed *base and override only the
// methods the data model calls out as different.
type base struct {
	id      Id
	ctx     Context
	emitter Emitter
	self    SymbolData

	scope ast.Node // nil for an unscoped (exported/top-level) symbol

	resultSet uint64

	hasDefinitionResult bool
	definitionResult    uint64
	hasReferenceResult  bool
	referenceResult     uint64

	partitions map[string]partitionEntry
	defInfos   []DefinitionInfo

	cleared bool
}

func newBase(id Id, ctx Context, emitter Emitter, scope ast.Node) *base {
	return &base{
		id:         id,
		ctx:        ctx,
		emitter:    emitter,
		scope:      scope,
		partitions: map[string]partitionEntry{},
	}
}

func (b *base) ResultSet() uint64 { return b.resultSet }

func (b *base) Begin() {
	b.resultSet = b.emitter.EmitResultSet()
}

func (b *base) AddHover(contents []protocol.MarkedString) {
	if len(contents) == 0 {
		return
	}
	hoverResult := b.emitter.EmitHoverResult(contents)
	b.emitter.EmitTextDocumentHover(b.resultSet, hoverResult)
}

func (b *base) AddMoniker(kind protocol.MonikerKind, identifier string, packageInformation uint64) {
	moniker := b.emitter.EmitMoniker(kind, protocol.MonikerScheme, identifier)
	b.emitter.EmitMonikerEdge(b.resultSet, moniker)
	if packageInformation != 0 {
		b.emitter.EmitPackageInformationEdge(moniker, packageInformation)
	}
}

func (b *base) RecordDefinitionInfo(info DefinitionInfo) {
	b.defInfos = append(b.defInfos, info)
}

func (b *base) HasDefinitionInfo(info DefinitionInfo) bool {
	for _, d := range b.defInfos {
		if d == info {
			return true
		}
	}
	return false
}

func (b *base) FindDefinition(file string, start, end protocol.Pos) (uint64, bool) {
	entry, ok := b.partitions[file]
	if !ok || entry.state != slotLive {
		return 0, false
	}
	return entry.partition.FindDefinition(start, end)
}

func (b *base) getOrCreateDefinitionResult() uint64 {
	if !b.hasDefinitionResult {
		if b.cleared {
			panic(fmt.Sprintf("lsif-index: symbol %q is already cleared", b.id))
		}
		b.definitionResult = b.emitter.EmitDefinitionResult()
		b.emitter.EmitTextDocumentDefinition(b.resultSet, b.definitionResult)
		b.hasDefinitionResult = true
	}
	return b.definitionResult
}

func (b *base) GetOrCreateReferenceResult() uint64 {
	if !b.hasReferenceResult {
		if b.cleared {
			panic(fmt.Sprintf("lsif-index: symbol %q is already cleared", b.id))
		}
		b.referenceResult = b.emitter.EmitReferenceResult()
		b.emitter.EmitTextDocumentReferences(b.resultSet, b.referenceResult)
		b.hasReferenceResult = true
	}
	return b.referenceResult
}

// getOrCreatePartition returns the partition for file, creating it (and
// registering the owning symbol for its lifecycle trigger) on first use.
func (b *base) getOrCreatePartition(file File) *Partition {
	entry, ok := b.partitions[file.Name]
	if ok && entry.state == slotTombstone {
		panic(fmt.Sprintf("lsif-index: partition for %q on symbol %q was already flushed", file.Name, b.id))
	}
	if ok && entry.state == slotLive {
		return entry.partition
	}

	doc, ok := b.ctx.DocumentData(file.Name)
	if !ok {
		panic(fmt.Sprintf("lsif-index: no document data for %q", file.Name))
	}

	trigger := b.scope
	if trigger == nil {
		trigger = file.Node
	}
	b.ctx.ManageLifecycle(trigger, b.self)

	partition := newPartition(b.emitter, doc.ID)
	b.partitions[file.Name] = partitionEntry{state: slotLive, node: trigger, partition: partition}
	return partition
}

// NodeProcessed implements the shared lifecycle transition: a scope-node
// event flushes the symbol's single partition and exhausts it; a source-file
// event flushes just that file's partition and leaves the symbol live.
func (b *base) NodeProcessed(node ast.Node) bool {
	if b.scope != nil && node == b.scope {
		for name, entry := range b.partitions {
			if entry.state == slotLive {
				entry.partition.end(b.definitionResultOrZero(), b.referenceResultOrZero())
				b.partitions[name] = partitionEntry{state: slotTombstone}
			}
		}
		b.cleared = true
		return true
	}

	if _, ok := node.(*ast.File); !ok {
		panic(fmt.Sprintf("lsif-index: nodeProcessed called with neither the symbol's scope nor a source file for %q", b.id))
	}

	for name, entry := range b.partitions {
		if entry.state == slotLive && entry.node == node {
			entry.partition.end(b.definitionResultOrZero(), b.referenceResultOrZero())
			b.partitions[name] = partitionEntry{state: slotTombstone}
		}
	}
	return false
}

func (b *base) Partition(file File) *Partition {
	return b.getOrCreatePartition(file)
}

func (b *base) definitionResultOrZero() uint64 {
	if !b.hasDefinitionResult {
		return 0
	}
	return b.definitionResult
}

func (b *base) referenceResultOrZero() uint64 {
	if !b.hasReferenceResult {
		return 0
	}
	return b.referenceResult
}
