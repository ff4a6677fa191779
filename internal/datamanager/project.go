package datamanager

import "github.com/sourcegraph/lsif-index/internal/writer"

// projectContainsBatchSize bounds how many contains edges ProjectData buffers
// before flushing, so a very large project doesn't hold every document id in
// memory until project end.
const projectContainsBatchSize = 32

// ProjectData holds the Project vertex plus a buffer of pending contains
// document links, flushed in batches to bound emission latency.
type ProjectData struct {
	emitter *writer.Emitter

	id      uint64
	pending []uint64
}

func newProjectData(emitter *writer.Emitter, id uint64) *ProjectData {
	return &ProjectData{emitter: emitter, id: id}
}

func (p *ProjectData) addDocument(documentID uint64) {
	p.pending = append(p.pending, documentID)
	if len(p.pending) >= projectContainsBatchSize {
		p.flushBatch()
	}
}

func (p *ProjectData) flushBatch() {
	if len(p.pending) == 0 {
		return
	}
	p.emitter.EmitContains(p.id, p.pending)
	p.pending = nil
}

// flush emits any remaining buffered contains edge. Called once, at project
// end.
func (p *ProjectData) flush() {
	p.flushBatch()
}
