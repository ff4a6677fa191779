package gomod

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sourcegraph/lsif-index/internal/command"
)

// ListModules returns the module name provided by the project root as well
// as a map from names to versions of each module the project depends on.
func ListModules(projectRoot string) (string, map[string]string, error) {
	if _, err := os.Stat(filepath.Join(projectRoot, "go.mod")); os.IsNotExist(err) {
		log.Println("WARNING: No go.mod file found in current directory.")
		return "", nil, nil
	}

	out, err := command.Run(projectRoot, "go", "list", "-mod=readonly", "-m", "all")
	if err != nil {
		return "", nil, fmt.Errorf("failed to list modules: %v", err)
	}

	// go list -m all output:
	//   - first line is the versionless module name as supplied by go.mod
	//   - each remaining line has a versioned dependency `{name} {version}`
	lines := strings.Split(out, "\n")

	dependencies := map[string]string{}
	for _, line := range lines {
		parts := strings.Split(line, " ")
		if len(parts) == 2 {
			dependencies[parts[0]] = cleanVersion(parts[1])
		}
	}

	return lines[0], dependencies, nil
}

// versionPattern matches the form vX.Y.Z.-yyyymmddhhmmss-abcdefabcdef
var versionPattern = regexp.MustCompile(`^(.*)-(\d{14})-([a-f0-9]{12})$`)

// cleanVersion removes the date segment from a module version.
func cleanVersion(version string) string {
	if matches := versionPattern.FindStringSubmatch(version); len(matches) > 0 {
		return fmt.Sprintf("%s-%s", matches[1], matches[3])
	}

	return version
}
