package version

import (
	"fmt"
	"os/exec"
	"strings"
)

// Git implements VersionControl by shelling out to the git cli in the
// current working directory, which must be the sockchat repo root
type Git struct{}

// NewGit returns a new instance of Git
func NewGit() *Git {
	return &Git{}
}

// Add stages the regenerated app-info file
func (g *Git) Add(filePath string) error {
	return g.run("add", filePath)
}

// Commit records the staged version bump
func (g *Git) Commit(message string) error {
	return g.run("commit", "-m", message)
}

// Tag creates an annotated release tag named after the version
func (g *Git) Tag(version string) error {
	return g.run("tag", "-m", version, version)
}

// run includes git's own output in the error so a failed bump says why
func (g *Git) run(args ...string) error {
	out, err := exec.Command("git", args...).CombinedOutput()

	if err != nil {
		return fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}

	return nil
}
