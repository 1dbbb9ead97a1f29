// Package fake implements a mock SCM provider for testing purposes.
package fake

import (
	"context"
	"fmt"
	"maps"

	"github.com/ryclarke/copy-tool/scm"
)

var _ scm.Provider = new(Fake)

func init() {
	// Register the fake provider factory
	scm.Register("fake", New)
}

// Fake implements a mock SCM provider for testing purposes.
type Fake struct {
	User     string
	Contents []string
	Issues   []*scm.Issue

	// Created and Closed record mutating calls for assertions.
	Created []scm.NewIssue
	Closed  []int

	// Errors holds configurable errors keyed by method name.
	Errors map[string]error

	// FailCreateTitles marks issue titles whose creation should fail.
	FailCreateTitles map[string]bool

	nextNumber int
}

// New creates a new fake SCM provider.
func New(_ context.Context) scm.Provider {
	return NewFake()
}

// NewFake creates a new fake SCM provider with optional seed issues.
func NewFake(issues ...*scm.Issue) *Fake {
	f := &Fake{
		User:             "fake-user",
		Issues:           make([]*scm.Issue, 0, len(issues)),
		Created:          make([]scm.NewIssue, 0),
		Closed:           make([]int, 0),
		Errors:           make(map[string]error),
		FailCreateTitles: make(map[string]bool),
		nextNumber:       1,
	}

	// Deep copy issues to avoid mutations affecting tests
	for _, issue := range issues {
		cp := *issue
		cp.Labels = append([]string(nil), issue.Labels...)
		f.Issues = append(f.Issues, &cp)
	}

	return f
}

// SeedErrors configures errors to be returned by the named methods.
func (f *Fake) SeedErrors(errors map[string]error) {
	maps.Copy(f.Errors, errors)
}

// CurrentUser returns the configured account name.
func (f *Fake) CurrentUser() (string, error) {
	if err := f.Errors["CurrentUser"]; err != nil {
		return "", err
	}

	return f.User, nil
}

// ListContents returns the configured root directory listing.
func (f *Fake) ListContents(_ scm.Repo) ([]string, error) {
	if err := f.Errors["ListContents"]; err != nil {
		return nil, err
	}

	return append([]string(nil), f.Contents...), nil
}

// ListIssues returns the configured issues, excluding closed ones unless requested.
func (f *Fake) ListIssues(_ scm.Repo, includeClosed bool) ([]*scm.Issue, error) {
	if err := f.Errors["ListIssues"]; err != nil {
		return nil, err
	}

	result := make([]*scm.Issue, 0, len(f.Issues))

	for _, issue := range f.Issues {
		if issue.Closed() && !includeClosed {
			continue
		}

		// Return a copy to prevent mutations
		cp := *issue
		cp.Labels = append([]string(nil), issue.Labels...)
		result = append(result, &cp)
	}

	return result, nil
}

// CreateIssue records the new issue and assigns it the next sequential number.
func (f *Fake) CreateIssue(_ scm.Repo, issue scm.NewIssue) (*scm.Issue, error) {
	if err := f.Errors["CreateIssue"]; err != nil {
		return nil, err
	}

	if f.FailCreateTitles[issue.Title] {
		return nil, fmt.Errorf("failed to create issue %q", issue.Title)
	}

	f.Created = append(f.Created, issue)

	created := &scm.Issue{
		Number: f.nextNumber,
		Title:  issue.Title,
		Body:   issue.Body,
		State:  "open",
		Labels: append([]string(nil), issue.Labels...),
	}
	f.nextNumber++

	return created, nil
}

// CloseIssue records the closed issue number.
func (f *Fake) CloseIssue(_ scm.Repo, number int) error {
	if err := f.Errors["CloseIssue"]; err != nil {
		return err
	}

	f.Closed = append(f.Closed, number)

	return nil
}
