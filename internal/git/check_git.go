package git

import (
	"github.com/sourcegraph/lsif-index/internal/command"
)

// Check returns true if the given directory is in a git repository.
func Check(dir string) bool {
	_, err := command.Run(dir, "git", "rev-parse", "HEAD")
	return err == nil
}

// changed again
