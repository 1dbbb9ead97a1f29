package github

import (
	"fmt"
	"net/http"

	"github.com/ryclarke/copy-tool/scm"
)

// ListContents returns the entry names in the repository's root directory.
// A repository with no commits yet returns scm.ErrNoCommits.
func (g *Github) ListContents(repo scm.Repo) ([]string, error) {
	_, entries, resp, err := g.client.Repositories.GetContents(g.ctx, repo.Owner, repo.Name, "", nil)
	if err != nil {
		// GitHub responds 404 to a content listing of an empty repository
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, scm.ErrNoCommits
		}

		return nil, fmt.Errorf("failed to list contents of %s: %w", repo, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.GetName())
	}

	return names, nil
}
