package github

import (
	"fmt"

	"github.com/google/go-github/v74/github"

	"github.com/ryclarke/copy-tool/config"
	"github.com/ryclarke/copy-tool/scm"
)

// ListIssues returns all issues of the repository in listing order. The
// issues endpoint conflates issues and pull requests, so pull requests are
// filtered out here. Closed issues are included only when requested.
func (g *Github) ListIssues(repo scm.Repo, includeClosed bool) ([]*scm.Issue, error) {
	state := "open"
	if includeClosed {
		state = "all"
	}

	opt := &github.IssueListByRepoOptions{
		State:       state,
		ListOptions: github.ListOptions{PerPage: config.Viper(g.ctx).GetInt(config.IssuePageSize)},
	}

	output := make([]*scm.Issue, 0)

	for {
		issues, resp, err := g.client.Issues.ListByRepo(g.ctx, repo.Owner, repo.Name, opt)
		if err != nil {
			return nil, fmt.Errorf("failed to list issues for %s: %w", repo, err)
		}

		for _, issue := range issues {
			if issue.IsPullRequest() {
				continue
			}

			output = append(output, parseIssue(issue))
		}

		if resp.NextPage == 0 {
			break
		}

		opt.ListOptions.Page = resp.NextPage
	}

	return output, nil
}

// CreateIssue creates a new issue in the repository.
func (g *Github) CreateIssue(repo scm.Repo, issue scm.NewIssue) (*scm.Issue, error) {
	labels := issue.Labels

	resp, _, err := g.client.Issues.Create(g.ctx, repo.Owner, repo.Name, &github.IssueRequest{
		Title:  &issue.Title,
		Body:   &issue.Body,
		Labels: &labels,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}

	return parseIssue(resp), nil
}

// CloseIssue closes an existing issue by number. The creation endpoint
// cannot set the initial state, so replicated closed issues require this
// follow-up request.
func (g *Github) CloseIssue(repo scm.Repo, number int) error {
	_, _, err := g.client.Issues.Edit(g.ctx, repo.Owner, repo.Name, number, &github.IssueRequest{
		State: github.Ptr("closed"),
	})
	if err != nil {
		return fmt.Errorf("failed to close issue #%d: %w", number, err)
	}

	return nil
}

func parseIssue(issue *github.Issue) *scm.Issue {
	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.GetName())
	}

	return &scm.Issue{
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		Body:      issue.GetBody(),
		Author:    issue.GetUser().GetLogin(),
		CreatedAt: issue.GetCreatedAt().Time,
		State:     issue.GetState(),
		URL:       issue.GetHTMLURL(),
		Labels:    labels,
	}
}
