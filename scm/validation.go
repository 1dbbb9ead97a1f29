package scm

import (
	"fmt"
	"strings"
)

// ParseRepo parses an "owner/repo" identifier. Exactly one separator is
// required and both parts must be non-empty.
func ParseRepo(input string) (Repo, error) {
	parts := strings.Split(input, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repo{}, fmt.Errorf("invalid repository %q (expected format \"owner/repo\")", input)
	}

	return Repo{Owner: parts[0], Name: parts[1]}, nil
}
