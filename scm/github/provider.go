// Package github implements the SCM provider for the GitHub REST API.
package github

import (
	"context"
	"net/http"

	"github.com/google/go-github/v74/github"

	"github.com/ryclarke/copy-tool/config"
	"github.com/ryclarke/copy-tool/scm"
)

func init() {
	// Register the GitHub provider factory
	scm.Register("github", New)
}

func New(ctx context.Context) scm.Provider {
	return &Github{
		// TODO: Add support for enterprise GitHub instances (currently SaaS only)
		client: github.NewClient(http.DefaultClient).WithAuthToken(config.Viper(ctx).GetString(config.AuthToken)),
		ctx:    ctx,
	}
}

type Github struct {
	client *github.Client
	ctx    context.Context
}
