package indexer

import (
	"io"

	"github.com/sourcegraph/lsif-index/protocol"
)

// Config bundles everything a single indexing run needs from its caller: the
// project under test plus knobs that affect the emitted graph's content
// rather than its topology.
type Config struct {
	RepositoryRoot string
	ProjectRoot    string
	ModuleName     string
	ModuleVersion  string
	Dependencies   map[string]string
	EmitContents   bool
	ToolInfo       protocol.ToolInfo
	Output         io.Writer
	OutputOptions  OutputOptions
}

// Stats summarizes one completed run, printed by the CLI after indexing.
type Stats struct {
	NumPkgs     int
	NumFiles    int
	NumDefs     int
	NumElements uint64
}
