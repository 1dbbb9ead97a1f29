package copier

import (
	"context"
	"fmt"
	"time"

	"github.com/ryclarke/copy-tool/config"
	"github.com/ryclarke/copy-tool/scm"
)

const noDescription = "(No description provided)"

// ReplicateIssues recreates the source repository's issues in the
// destination with provenance metadata, labels, and original open/closed
// state. Individual creation failures are counted but do not stop the
// batch; only a failed listing aborts the run.
func (c *Copier) ReplicateIssues(ctx context.Context) error {
	includeClosed := config.Viper(ctx).GetBool(config.IncludeClosed)

	if includeClosed {
		c.out.Section("COPYING ISSUES (including closed)")
	} else {
		c.out.Section("COPYING ISSUES (open only)")
	}

	issues, err := c.provider.ListIssues(c.Source, includeClosed)
	if err != nil {
		return err
	}

	if len(issues) == 0 {
		c.out.Infof("No issues to copy.")
		return nil
	}

	c.out.Infof("Creating %d issues in %s...", len(issues), c.Dest)

	var succeeded, failed int

	for _, issue := range issues {
		created, err := c.provider.CreateIssue(c.Dest, scm.NewIssue{
			Title:  issue.Title,
			Body:   provenanceBody(issue),
			Labels: issue.Labels,
		})
		if err != nil {
			c.out.Failf("Failed to create issue: %s: %v", issue.Title, err)
			failed++

			continue
		}

		succeeded++
		c.out.Successf("Created issue #%d: %s", created.Number, issue.Title)

		// The creation endpoint cannot set the initial state, so originally
		// closed issues need a follow-up state change.
		if issue.Closed() {
			if err := c.provider.CloseIssue(c.Dest, created.Number); err != nil {
				c.out.Failf("Failed to close issue #%d: %v", created.Number, err)
			} else {
				c.out.Successf("Closed issue #%d", created.Number)
			}
		}
	}

	c.out.Successf("Successfully created %d issues", succeeded)
	if failed > 0 {
		c.out.Failf("Failed to create %d issues", failed)
	}

	return nil
}

// provenanceBody prefixes the original issue body with authorship, date,
// and URL metadata so each copy can be traced back to its origin.
func provenanceBody(issue *scm.Issue) string {
	body := issue.Body
	if body == "" {
		body = noDescription
	}

	return fmt.Sprintf("*Originally created as issue #%d by @%s on %s*\n*Original URL: %s*\n\n---\n\n%s",
		issue.Number, issue.Author, issue.CreatedAt.Format(time.RFC3339), issue.URL, body)
}
