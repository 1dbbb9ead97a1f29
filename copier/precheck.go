package copier

import (
	"errors"
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ryclarke/copy-tool/scm"
)

// Bootstrap artifacts that don't count as repository content. Entry names
// are matched lowercased, exact names first and then prefixes.
var (
	allowedExact = mapset.NewSet(
		".github",
		".gitignore",
		"codeowners",
		"contributing.md",
		"code_of_conduct.md",
		"security.md",
	)

	allowedPrefixes = []string{"readme", "license"}
)

// checkDestEmpty fetches the destination's root directory listing and
// verifies that it only contains bootstrap files. An uninitialized
// repository (no commits yet) passes; any other listing failure fails
// closed.
func (c *Copier) checkDestEmpty() error {
	c.out.Infof("Checking if destination repository is empty: %s", c.Dest)

	entries, err := c.provider.ListContents(c.Dest)
	if err != nil {
		if errors.Is(err, scm.ErrNoCommits) {
			c.out.Successf("Destination repository is empty (no commits yet)")
			return nil
		}

		return fmt.Errorf("failed to check destination repository: %w", err)
	}

	if unexpected := unexpectedEntries(entries); len(unexpected) > 0 {
		c.out.Failf("Destination repository contains unexpected files:")
		for _, name := range unexpected {
			c.out.Infof("  - %s", name)
		}

		return ErrNotEmpty
	}

	c.out.Successf("Destination repository is empty (only contains bootstrap files)")

	return nil
}

// unexpectedEntries returns the listing entries that match neither allow
// rule, case preserved.
func unexpectedEntries(entries []string) []string {
	unexpected := make([]string, 0)

	for _, name := range entries {
		if allowed(strings.ToLower(name)) {
			continue
		}

		unexpected = append(unexpected, name)
	}

	return unexpected
}

func allowed(name string) bool {
	if allowedExact.Contains(name) {
		return true
	}

	for _, prefix := range allowedPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}

	return false
}
