// The program lsif-index is an LSIF indexer for Go.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kingpin"

	"github.com/sourcegraph/lsif-index/internal/git"
	"github.com/sourcegraph/lsif-index/internal/gomod"
	"github.com/sourcegraph/lsif-index/internal/indexer"
	"github.com/sourcegraph/lsif-index/log"
	"github.com/sourcegraph/lsif-index/protocol"
)

const version = "0.1.0"
const versionString = version + ", protocol version " + protocol.Version

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func realMain() error {
	var (
		outFile        string
		moduleVersion  string
		repositoryRoot string
		moduleRoot     string
		addContents    bool
		noProgress     bool
		noOutput       bool
		verboseOutput  bool
	)

	app := kingpin.New("lsif-index", "lsif-index is an LSIF indexer for Go.").Version(versionString)
	app.HelpFlag.Short('h')
	app.VersionFlag.Short('v')
	app.HelpFlag.Hidden()

	app.Flag("out", "The output file.").Short('o').Default("dump.lsif").StringVar(&outFile)
	app.Flag("moduleVersion", "Specifies the version of the module defined by this project.").PlaceHolder("version").StringVar(&moduleVersion)
	app.Flag("repositoryRoot", "Specifies the path of the current repository (inferred automatically via git).").PlaceHolder("root").StringVar(&repositoryRoot)
	app.Flag("moduleRoot", "Specifies the module root directory relative to the repository.").Default(".").StringVar(&moduleRoot)
	app.Flag("addContents", "Embed file contents into the dump.").Default("false").BoolVar(&addContents)
	app.Flag("noProgress", "Do not output animated progress.").Default("false").BoolVar(&noProgress)
	app.Flag("noOutput", "Do not output progress at all.").Default("false").BoolVar(&noOutput)
	app.Flag("verbose", "Display timings and stats.").Default("false").BoolVar(&verboseOutput)

	if _, err := app.Parse(os.Args[1:]); err != nil {
		return err
	}

	if verboseOutput {
		log.SetLevel(log.Info)
	}

	if repositoryRoot == "" {
		toplevel, err := git.TopLevel(moduleRoot)
		if err != nil {
			return fmt.Errorf("get git root: %v", err)
		}
		repositoryRoot = toplevel
		log.Infof("inferred repository root %s", repositoryRoot)
	}

	projectRoot, err := filepath.Abs(moduleRoot)
	if err != nil {
		return fmt.Errorf("get abspath of project root: %v", err)
	}

	repositoryRoot, err = filepath.Abs(repositoryRoot)
	if err != nil {
		return fmt.Errorf("get abspath of repository root: %v", err)
	}

	// Sanity check: ensure the module root is inside the repository.
	if !strings.HasPrefix(projectRoot, repositoryRoot) {
		return errors.New("module root is outside the repository")
	}

	moduleName, dependencies, err := gomod.ListModules(projectRoot)
	if err != nil {
		return err
	}

	if moduleVersion == "" {
		if moduleVersion, err = git.InferModuleVersion(projectRoot); err != nil {
			return err
		}
	}

	out, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("create dump file: %v", err)
	}
	defer out.Close()

	toolInfo := protocol.ToolInfo{
		Name:    "lsif-index",
		Version: version,
		Args:    os.Args[1:],
	}

	outputOptions := indexer.OutputOptions{
		Verbosity:      indexer.DefaultOutput,
		ShowAnimations: !noProgress,
	}
	switch {
	case noOutput:
		outputOptions.Verbosity = indexer.NoOutput
	case verboseOutput:
		outputOptions.Verbosity = indexer.VerboseOutput
	}

	start := time.Now()

	ix := indexer.New(indexer.Config{
		RepositoryRoot: repositoryRoot,
		ProjectRoot:    projectRoot,
		ModuleName:     moduleName,
		ModuleVersion:  moduleVersion,
		Dependencies:   dependencies,
		EmitContents:   addContents,
		ToolInfo:       toolInfo,
		Output:         out,
		OutputOptions:  outputOptions,
	})

	stats, err := ix.Index()
	if err != nil {
		return fmt.Errorf("index: %v", err)
	}

	if !noOutput {
		fmt.Printf("%d package(s), %d file(s), %d def(s), %d element(s)\n", stats.NumPkgs, stats.NumFiles, stats.NumDefs, stats.NumElements)
		if verboseOutput {
			fmt.Println("Processed in", time.Since(start))
		}
	}

	return nil
}
