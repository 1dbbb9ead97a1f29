// Package scm defines the hosting-service abstraction used by the copier,
// along with the transient models exchanged with it.
package scm

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoCommits signals that a repository content listing failed because the
// repository has no commits yet. Callers treat this as an empty repository.
var ErrNoCommits = errors.New("repository has no commits yet")

var providerFactories = make(map[string]ProviderFactory)

type ProviderFactory func(ctx context.Context) Provider

// Provider defines the interface for SCM providers.
type Provider interface {
	// CurrentUser returns the account name associated with the configured
	// credential, performing a read-only identity check.
	CurrentUser() (string, error)

	// ListContents returns the names of the entries in the repository's
	// root directory. Returns ErrNoCommits for uninitialized repositories.
	ListContents(repo Repo) ([]string, error)

	// ListIssues returns all issues of the repository, excluding pull
	// requests. Closed issues are included only when requested.
	ListIssues(repo Repo, includeClosed bool) ([]*Issue, error)
	// CreateIssue creates a new issue in the repository.
	CreateIssue(repo Repo, issue NewIssue) (*Issue, error)
	// CloseIssue closes an existing issue by number.
	CloseIssue(repo Repo, number int) error
}

// Get retrieves a registered SCM provider by name.
// If the provider is not registered, it panics.
func Get(ctx context.Context, name string) Provider {
	if factory, exists := providerFactories[name]; exists {
		return factory(ctx)
	}

	panic(fmt.Sprintf("SCM provider %s not registered", name))
}

// Register a new SCM provider factory by name.
func Register(name string, factory ProviderFactory) {
	if _, exists := providerFactories[name]; !exists {
		providerFactories[name] = factory
	}
}
