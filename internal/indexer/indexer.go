// Package indexer implements the Visitor: the traversal driver that walks
// every source file of the target module, creates document and symbol data
// on demand through the resolver and data manager, and emits the resulting
// LSIF graph through the writer.
package indexer

import (
	"fmt"
	"go/ast"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"

	"github.com/sourcegraph/lsif-index/internal/datamanager"
	"github.com/sourcegraph/lsif-index/internal/oracle"
	"github.com/sourcegraph/lsif-index/internal/symbols"
	"github.com/sourcegraph/lsif-index/internal/writer"
	"github.com/sourcegraph/lsif-index/protocol"
)

// Indexer drives one complete indexing run.
type Indexer struct {
	config  Config
	emitter *writer.Emitter
	manager *datamanager.DataManager
	program *oracle.Program
	cache   *symbols.Cache

	packageInformation map[string]uint64

	stats Stats
}

// New constructs an Indexer for config. Nothing is loaded until Index runs.
func New(config Config) *Indexer {
	return &Indexer{config: config, cache: symbols.New(), packageInformation: map[string]uint64{}}
}

// getOrCreatePackageInformation returns the PackageInformation vertex for the
// dependency named name at version, emitting it on first use so a dependency
// referenced by many monikers gets exactly one vertex.
func (ix *Indexer) getOrCreatePackageInformation(name, version string) uint64 {
	key := name + "@" + version
	if id, ok := ix.packageInformation[key]; ok {
		return id
	}
	id := ix.emitter.EmitPackageInformation(name, "gomod", version)
	ix.packageInformation[key] = id
	return id
}

// Index type-checks the configured project, walks it, and emits its LSIF
// graph to config.Output, returning run statistics.
func (ix *Indexer) Index() (Stats, error) {
	if err := withProgress(ix.config.OutputOptions, "Loading program", func() error {
		program, err := oracle.Load(ix.config.ProjectRoot, "./...")
		if program != nil {
			ix.program = program
		}
		if err != nil && program == nil {
			return errors.Wrap(err, "loading program")
		}
		return nil
	}); err != nil {
		return ix.stats, err
	}
	if ix.program == nil {
		return ix.stats, fmt.Errorf("failed to load %s: no packages found", ix.config.ProjectRoot)
	}

	jsonWriter := writer.NewJSONWriter(ix.config.Output)
	ix.emitter = writer.NewEmitter(jsonWriter)
	ix.emitter.EmitMetaData(ix.config.ProjectRoot, ix.config.ToolInfo)
	ix.manager = datamanager.New(ix.emitter, ix.config.RepositoryRoot, ix.config.ProjectRoot)

	var owned []*packages.Package
	var total uint64
	for _, pkg := range ix.program.Packages {
		if !ix.owns(pkg) {
			continue
		}
		owned = append(owned, pkg)
		total += uint64(len(pkg.Syntax))
	}

	var completed uint64
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, pkg := range owned {
			ix.indexPackage(pkg, &completed)
		}
	}()
	withProgressCount(&wg, "Indexing", ix.config.OutputOptions, &completed, total)

	ix.manager.ProjectProcessed()
	ix.stats.NumElements = ix.emitter.NumElements()

	if err := jsonWriter.Flush(); err != nil {
		return ix.stats, errors.Wrap(err, "flushing output")
	}

	return ix.stats, nil
}

// owns reports whether pkg belongs to the module under indexing, as opposed
// to one of its dependencies loaded only to resolve types.
func (ix *Indexer) owns(pkg *packages.Package) bool {
	return pkg.PkgPath == ix.config.ModuleName || strings.HasPrefix(pkg.PkgPath, ix.config.ModuleName+"/")
}

func (ix *Indexer) indexPackage(pkg *packages.Package, completed *uint64) {
	ix.stats.NumPkgs++
	ix.addImportsToPackage(pkg)

	diagnostics := diagnosticsByFile(pkg)

	for i, file := range pkg.Syntax {
		if i >= len(pkg.CompiledGoFiles) {
			break
		}
		filename := pkg.CompiledGoFiles[i]
		if !isIgnoredFile(filename) {
			ix.indexFile(pkg, file, filename, diagnostics[filename])
		}
		atomic.AddUint64(completed, 1)
	}
}

func (ix *Indexer) indexFile(pkg *packages.Package, file *ast.File, filename string, diagnostics []protocol.Diagnostic) {
	ix.stats.NumFiles++

	var contents []byte
	if ix.config.EmitContents {
		contents, _ = os.ReadFile(filename)
	}

	doc := ix.manager.GetOrCreateDocument(filename, documentURI(filename), contents)
	ix.visitFile(pkg, file, filename, doc)

	ast.Inspect(file, func(n ast.Node) bool {
		if fn, ok := n.(*ast.FuncDecl); ok {
			ix.manager.NodeProcessed(fn)
		}
		return true
	})

	doc.SetFoldingRanges(foldingRanges(pkg, file))
	doc.SetDocumentSymbols(ix.documentSymbols(pkg, file, doc))
	if len(diagnostics) > 0 {
		doc.AddDiagnostics(diagnostics)
	}

	ix.manager.EndDocument(filename, file)
}

func documentURI(filename string) string {
	return "file://" + filename
}
