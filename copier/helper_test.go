package copier

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/ryclarke/copy-tool/config"
	"github.com/ryclarke/copy-tool/gitcli"
	"github.com/ryclarke/copy-tool/output"
	"github.com/ryclarke/copy-tool/scm"
)

// testContext returns a context carrying an isolated viper instance with the
// working area redirected to a temporary directory.
func testContext(t *testing.T) context.Context {
	t.Helper()

	v := config.New()
	v.Set(config.WorkDir, filepath.Join(t.TempDir(), "work"))
	v.Set(config.AuthToken, "test-token")

	return config.SetViper(context.Background(), v)
}

// newTestCopier builds a Copier wired to the given fakes, capturing reporter
// output in the returned buffer.
func newTestCopier(t *testing.T, provider scm.Provider, git gitcli.Git) (*Copier, *bytes.Buffer) {
	t.Helper()

	buf := new(bytes.Buffer)

	return &Copier{
		Source:   scm.Repo{Owner: "test-org", Name: "source-repo"},
		Dest:     scm.Repo{Owner: "test-org", Name: "dest-repo"},
		provider: provider,
		git:      git,
		out:      output.New(buf),
	}, buf
}

var _ gitcli.Git = new(fakeGit)

// fakeGit records git invocations and materializes fake clones on disk so
// the synchronizer can be exercised without a git executable.
type fakeGit struct {
	calls  [][]string
	failOn string

	// status is returned by Status; an empty value means a clean tree.
	status string

	// seed holds files written into the source clone, keyed by slash-separated
	// relative path.
	seed map[string]string

	// seen snapshots the destination tree when Status is called.
	seen map[string]string
}

func (g *fakeGit) record(args ...string) error {
	g.calls = append(g.calls, args)

	if g.failOn == args[0] {
		return fmt.Errorf("git %s failed", args[0])
	}

	return nil
}

// callNames returns the sequence of recorded git subcommands.
func (g *fakeGit) callNames() []string {
	names := make([]string, len(g.calls))
	for i, call := range g.calls {
		names[i] = call[0]
	}

	return names
}

func (g *fakeGit) Clone(_ context.Context, url, dir string) error {
	if err := g.record("clone", url, dir); err != nil {
		return err
	}

	// Fabricate version-control metadata; it must never be mirrored.
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0o755); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(dir, ".git", "HEAD"), []byte("ref: refs/heads/main\n"), 0o644); err != nil {
		return err
	}

	if filepath.Base(dir) != "source" {
		return nil
	}

	for rel, content := range g.seed {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}

	return nil
}

func (g *fakeGit) Config(_ context.Context, _, key, value string) error {
	return g.record("config", key, value)
}

func (g *fakeGit) Add(_ context.Context, _ string, paths ...string) error {
	return g.record(append([]string{"add"}, paths...)...)
}

func (g *fakeGit) Commit(_ context.Context, _, message string) error {
	return g.record("commit", message)
}

func (g *fakeGit) Push(_ context.Context, _, remote, ref string) error {
	return g.record("push", remote, ref)
}

func (g *fakeGit) Status(_ context.Context, dir string) (string, error) {
	if err := g.record("status"); err != nil {
		return "", err
	}

	g.seen = make(map[string]string)

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if entry.Name() == ".git" {
				return fs.SkipDir
			}

			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		g.seen[filepath.ToSlash(rel)] = string(content)

		return nil
	})
	if err != nil {
		return "", err
	}

	return g.status, nil
}
