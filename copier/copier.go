// Package copier implements the sequential repository copy pipeline:
// validate the credential, check the destination precondition, mirror the
// source file tree, then replicate issues. Each step either carries the run
// forward or short-circuits it with an error.
package copier

import (
	"context"
	"errors"
	"os"

	"github.com/ryclarke/copy-tool/config"
	"github.com/ryclarke/copy-tool/gitcli"
	"github.com/ryclarke/copy-tool/output"
	"github.com/ryclarke/copy-tool/scm"
)

// ErrNotEmpty signals that the destination repository already has content
// beyond the allowed bootstrap files.
var ErrNotEmpty = errors.New("destination repository is not empty (use --force to copy anyway)")

// Copier sequences the copy of one repository's contents into another. All
// state is request-scoped; a new Copier is constructed per invocation.
type Copier struct {
	Source scm.Repo
	Dest   scm.Repo

	provider scm.Provider
	git      gitcli.Git
	out      *output.Reporter
}

// New constructs a Copier for the given repository pair using the
// configured SCM provider and the local git executable.
func New(ctx context.Context, source, dest scm.Repo) *Copier {
	return &Copier{
		Source:   source,
		Dest:     dest,
		provider: scm.Get(ctx, config.Viper(ctx).GetString(config.GitProvider)),
		git:      gitcli.New(),
		out:      output.New(os.Stdout),
	}
}

// Run executes the pipeline, aborting on the first fatal error. The
// credential is validated before any mutating operation is attempted.
func (c *Copier) Run(ctx context.Context) error {
	viper := config.Viper(ctx)

	c.out.Section(
		"REPOSITORY CONTENT COPY",
		"Source:      "+c.Source.String(),
		"Destination: "+c.Dest.String(),
	)

	login, err := c.provider.CurrentUser()
	if err != nil {
		c.out.Failf("Token validation failed")
		return err
	}

	c.out.Successf("Authenticated as: %s", login)

	if viper.GetBool(config.ForceCopy) {
		c.out.Warnf("Force flag set - skipping empty destination check")
	} else if err := c.checkDestEmpty(); err != nil {
		return err
	}

	if err := c.SyncContent(ctx); err != nil {
		return err
	}

	if err := c.ReplicateIssues(ctx); err != nil {
		return err
	}

	c.out.Section("COPY COMPLETE")

	return nil
}
