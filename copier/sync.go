package copier

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ryclarke/copy-tool/config"
)

// SyncContent performs a one-shot mirror of the source repository's file
// tree into the destination: clone both repositories into an ephemeral
// working area, copy everything except git metadata, then commit and push
// if the tree actually changed. The working area is removed on every exit
// path.
func (c *Copier) SyncContent(ctx context.Context) error {
	viper := config.Viper(ctx)

	c.out.Section("COPYING SOURCE CODE")

	workdir, err := filepath.Abs(viper.GetString(config.WorkDir))
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	// Remove leftovers from a previously aborted run.
	if _, err := os.Stat(workdir); err == nil {
		c.out.Infof("Cleaning up existing working directory...")
		os.RemoveAll(workdir)
	}

	if err := os.MkdirAll(workdir, 0o755); err != nil {
		return fmt.Errorf("failed to create working directory: %w", err)
	}

	defer os.RemoveAll(workdir)

	srcDir := filepath.Join(workdir, "source")
	destDir := filepath.Join(workdir, "dest")
	host := viper.GetString(config.GitHost)

	// The source is cloned read-only over plain HTTPS; only the destination
	// clone carries the credential.
	c.out.Infof("Cloning source repository: %s", c.Source)
	if err := c.git.Clone(ctx, fmt.Sprintf(config.CloneURLTmpl, host, c.Source.Owner, c.Source.Name), srcDir); err != nil {
		return err
	}

	c.out.Infof("Cloning destination repository: %s", c.Dest)
	destURL := fmt.Sprintf(config.CloneAuthURLTmpl, viper.GetString(config.AuthToken), host, c.Dest.Owner, c.Dest.Name)
	if err := c.git.Clone(ctx, destURL, destDir); err != nil {
		return err
	}

	c.out.Infof("Copying files from source to destination...")

	files, dirs, err := mirrorTree(srcDir, destDir)
	if err != nil {
		return err
	}

	c.out.Successf("Created %d directories", dirs)
	c.out.Successf("Copied %d files", files)

	// Commit identity local to the destination working copy
	if err := c.git.Config(ctx, destDir, "user.email", viper.GetString(config.CommitEmail)); err != nil {
		return err
	}

	if err := c.git.Config(ctx, destDir, "user.name", viper.GetString(config.CommitName)); err != nil {
		return err
	}

	if err := c.git.Add(ctx, destDir, "."); err != nil {
		return err
	}

	status, err := c.git.Status(ctx, destDir)
	if err != nil {
		return err
	}

	if strings.TrimSpace(status) == "" {
		c.out.Successf("No changes to commit (destination already up to date)")
		return nil
	}

	if err := c.git.Commit(ctx, destDir, fmt.Sprintf(config.CommitMessageTmpl, c.Source)); err != nil {
		return err
	}

	if err := c.git.Push(ctx, destDir, "origin", "HEAD"); err != nil {
		return err
	}

	c.out.Successf("Changes pushed to destination repository")

	return nil
}

// mirrorTree reproduces every file and directory under src into dst,
// excluding git metadata. Existing destination files with the same relative
// path are overwritten; destination-only files are left untouched.
func mirrorTree(src, dst string) (files, dirs int, err error) {
	err = filepath.WalkDir(src, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		if rel == "." {
			return nil
		}

		if entry.IsDir() && entry.Name() == ".git" {
			return fs.SkipDir
		}

		target := filepath.Join(dst, rel)

		if entry.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}

			dirs++

			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}

		if err := os.WriteFile(target, content, 0o644); err != nil {
			return err
		}

		files++

		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to mirror file tree: %w", err)
	}

	return files, dirs, nil
}
