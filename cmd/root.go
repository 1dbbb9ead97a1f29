// Package cmd configures the copy-tool command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ryclarke/copy-tool/config"
	"github.com/ryclarke/copy-tool/copier"
	"github.com/ryclarke/copy-tool/scm"
	"github.com/ryclarke/copy-tool/token"

	// Register the SCM providers
	_ "github.com/ryclarke/copy-tool/scm/github"
)

const (
	configFlag        = "config"
	tokenFlag         = "token"
	forceFlag         = "force"
	includeClosedFlag = "include-closed"
	workdirFlag       = "workdir"
)

// RootCmd configures the top-level root command along with all flags
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "copy-tool <source> <dest>",
		Short: "Copy the contents of one GitHub repository into another",
		Long: `Copy the contents of one GitHub repository into another

This tool copies the file tree and issues of a source repository into a
destination repository using the GitHub API and local git operations,
without fork or branch primitives. The destination must be effectively
empty (bootstrap files such as README, LICENSE, or CI config are allowed)
unless --force is given.`,
		Example: `  # Copy a repository into a freshly created one
  copy-tool some-org/source-repo my-org/dest-repo

  # Copy including closed issues, with an explicit token
  copy-tool -t ghp_xxxx --include-closed some-org/source-repo my-org/dest-repo`,
		Args: cobra.ExactArgs(2),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			viper := config.Viper(cmd.Context())

			viper.BindPFlag(config.AuthToken, cmd.Flags().Lookup(tokenFlag))
			viper.BindPFlag(config.ForceCopy, cmd.Flags().Lookup(forceFlag))
			viper.BindPFlag(config.IncludeClosed, cmd.Flags().Lookup(includeClosedFlag))
			viper.BindPFlag(config.WorkDir, cmd.Flags().Lookup(workdirFlag))

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Repository identifiers are validated before any network activity.
			source, err := scm.ParseRepo(args[0])
			if err != nil {
				return err
			}

			dest, err := scm.ParseRepo(args[1])
			if err != nil {
				return err
			}

			tok, err := token.Resolve(ctx)
			if err != nil {
				return err
			}

			config.Viper(ctx).Set(config.AuthToken, tok)

			return copier.New(ctx, source, dest).Run(ctx)
		},
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&config.CfgFile, configFlag, "", "config file (default is copy-tool.yaml)")

	rootCmd.Flags().StringP(tokenFlag, "t", "", "API token (or set GITHUB_TOKEN, or log in with the GitHub CLI)")
	rootCmd.Flags().BoolP(forceFlag, "f", false, "copy even if the destination repository is not empty")
	rootCmd.Flags().Bool(includeClosedFlag, false, "copy closed issues in addition to open issues")
	rootCmd.Flags().String(workdirFlag, "", "working directory for temporary clones")

	return rootCmd
}

// Execute sets up configuration and runs the root command.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	ctx := config.Init(context.Background())

	if err := RootCmd().ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
