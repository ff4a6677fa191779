package indexer

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// isIgnoredFile reports whether filename should be skipped entirely. This is
// the Go-domain analog of the rule that a TypeScript indexer applies to
// declaration files and third-party sources under node_modules: skip
// vendored dependency sources (they belong to the vendored module, not this
// one, and are indexed when that module is indexed directly) and skip
// generated files (the Go convention equivalent of a ".d.ts" declaration
// file — machine-produced, not hand-authored, not worth a symbol graph).
func isIgnoredFile(filename string) bool {
	for _, part := range strings.Split(filepath.ToSlash(filepath.Dir(filename)), "/") {
		if part == "vendor" {
			return true
		}
	}

	return isGeneratedFile(filename)
}

// generatedMarker is the standard prefix recognized by every code-generation
// tool in the ecosystem (see https://golang.org/s/generatedcode).
const generatedMarker = "// Code generated "

// generatedSuffix must terminate the marker line for it to count.
const generatedSuffix = " DO NOT EDIT."

func isGeneratedFile(filename string) bool {
	f, err := os.Open(filename)
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, generatedMarker) && strings.HasSuffix(line, generatedSuffix) {
			return true
		}
		if !strings.HasPrefix(line, "//") && strings.TrimSpace(line) != "" {
			break
		}
	}

	return false
}
