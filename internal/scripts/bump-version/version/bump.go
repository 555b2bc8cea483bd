package version

import (
	"fmt"
	"regexp"
)

var semver = regexp.MustCompile(`^v\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?$`)

// Bump regenerates the app info file for data.Version then commits and
// tags it
func Bump(data BumpData, generator VersionGenerator, vc VersionControl) error {
	if !semver.MatchString(data.Version) {
		return fmt.Errorf("invalid version %q: expected vMAJOR.MINOR.PATCH", data.Version)
	}

	if err := generator.Generate(VersionData{VERSION: data.Version}); err != nil {
		return fmt.Errorf("generate %s: %w", data.OutFile, err)
	}

	if err := vc.Add(data.OutFile); err != nil {
		return fmt.Errorf("add %s: %w", data.OutFile, err)
	}

	if err := vc.Commit("Bump version " + data.Version); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	if err := vc.Tag(data.Version); err != nil {
		return fmt.Errorf("tag: %w", err)
	}

	return nil
}
