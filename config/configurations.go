// Package config manages tool configuration through context-scoped Viper instances.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

var (
	CfgFile string

	// Version is dynamically set at build time using the -X linker flag.
	// Default value is used for testing and development builds.
	Version = "dev"
)

const (
	GitHost     = "git.host"
	GitProvider = "git.provider"

	AuthToken          = "auth-token"
	TokenHelper        = "token.helper"
	TokenHelperTimeout = "token.helper-timeout"

	WorkDir   = "copy.workdir"
	ForceCopy = "copy.force"

	IncludeClosed = "issues.include-closed"
	IssuePageSize = "issues.page-size"

	CommitName  = "commit.name"
	CommitEmail = "commit.email"

	// Host, Owner, Repo
	CloneURLTmpl = "https://%s/%s/%s.git"
	// Token, Host, Owner, Repo
	CloneAuthURLTmpl = "https://%s@%s/%s/%s.git"

	// Source repository
	CommitMessageTmpl = "Copy content from %s"
)

// Init creates a new Viper instance, loads the config file if one is found,
// and saves the instance into the returned context.
func Init(ctx context.Context) context.Context {
	v := New()

	if CfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(CfgFile)
	} else {
		v.SetConfigName("copy-tool")

		// Search in the working directory
		v.AddConfigPath(".")

		// Search in the user's config directory
		if usrConfig, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(usrConfig)
		}

		// On Darwin, os.UserConfigDir() returns ~/Library/Application Support.  As this is to be used from
		// the command line, it's more likely that the user will want to use XDG_CONFIG_HOME instead.
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			v.AddConfigPath(xdgConfigHome)
		} else if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config"))
		}
	}

	// If a config file is found, read it in.
	if err := v.ReadInConfig(); err == nil {
		fmt.Printf("Using config file: %v\n\n", v.ConfigFileUsed())
	}

	return SetViper(ctx, v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(GitHost, "github.com")
	v.SetDefault(GitProvider, "github")

	// External CLI helper consulted when no token is provided explicitly
	// or through the environment.
	v.SetDefault(TokenHelper, []string{"gh", "auth", "token"})
	v.SetDefault(TokenHelperTimeout, "10s")

	v.SetDefault(WorkDir, ".copy-tool-work")
	v.SetDefault(ForceCopy, false)

	v.SetDefault(IncludeClosed, false)
	v.SetDefault(IssuePageSize, 100)

	v.SetDefault(CommitName, "copy-tool")
	v.SetDefault(CommitEmail, "copy-tool@localhost")
}
