// Package gitcli wraps the local git executable behind a narrow capability
// interface so callers can be tested against a fake implementation.
package gitcli

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Git defines the version-control operations consumed by the copier. Each
// operation blocks until the underlying command completes; a non-zero exit
// is returned as an error carrying the captured diagnostic output.
type Git interface {
	// Clone the repository at url into dir.
	Clone(ctx context.Context, url, dir string) error
	// Config sets a configuration value local to the working copy at dir.
	Config(ctx context.Context, dir, key, value string) error
	// Add stages the given paths in the working copy at dir.
	Add(ctx context.Context, dir string, paths ...string) error
	// Commit creates a commit with the given message in the working copy at dir.
	Commit(ctx context.Context, dir, message string) error
	// Push the current branch to the given remote.
	Push(ctx context.Context, dir, remote, ref string) error
	// Status returns the porcelain status of the working copy at dir.
	Status(ctx context.Context, dir string) (string, error)
}

// New returns a Git implementation backed by the local git executable.
func New() Git {
	return &cli{}
}

type cli struct{}

func (c *cli) Clone(ctx context.Context, url, dir string) error {
	_, err := c.run(ctx, "", "clone", url, dir)
	return err
}

func (c *cli) Config(ctx context.Context, dir, key, value string) error {
	_, err := c.run(ctx, dir, "config", key, value)
	return err
}

func (c *cli) Add(ctx context.Context, dir string, paths ...string) error {
	_, err := c.run(ctx, dir, append([]string{"add"}, paths...)...)
	return err
}

func (c *cli) Commit(ctx context.Context, dir, message string) error {
	_, err := c.run(ctx, dir, "commit", "-m", message)
	return err
}

func (c *cli) Push(ctx context.Context, dir, remote, ref string) error {
	_, err := c.run(ctx, dir, "push", remote, ref)
	return err
}

func (c *cli) Status(ctx context.Context, dir string) (string, error) {
	return c.run(ctx, dir, "status", "--porcelain")
}

// run executes git with the given arguments, capturing combined output for
// error reporting. Clone URLs may embed credentials, so argument lists are
// never echoed back in errors beyond the subcommand name.
func (c *cli) run(ctx context.Context, dir string, arguments ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", arguments...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w: %s", arguments[0], err, strings.TrimSpace(string(out)))
	}

	return string(out), nil
}
