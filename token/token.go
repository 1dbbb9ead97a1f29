// Package token resolves the API credential used for all mutating
// operations. Sources are consulted in priority order: explicit flag value,
// the GITHUB_TOKEN environment variable, then the output of an external CLI
// authentication helper.
package token

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/ryclarke/copy-tool/config"
)

// EnvToken is the environment variable consulted when no explicit token is provided.
const EnvToken = "GITHUB_TOKEN"

// ErrNoToken signals that no credential source yielded a usable value.
var ErrNoToken = errors.New("API token is required - provide --token, set GITHUB_TOKEN, or log in with the GitHub CLI (gh auth login)")

// Resolve returns the first non-empty credential from the configured
// sources. A missing or unresponsive CLI helper is not an error on its own;
// ErrNoToken is returned only when every source comes up empty.
func Resolve(ctx context.Context) (string, error) {
	if tok := config.Viper(ctx).GetString(config.AuthToken); tok != "" {
		return tok, nil
	}

	if tok := os.Getenv(EnvToken); tok != "" {
		return tok, nil
	}

	if tok := fromHelper(ctx); tok != "" {
		return tok, nil
	}

	return "", ErrNoToken
}

// fromHelper invokes the external authentication helper and captures its
// standard output. The invocation is bounded by a configurable timeout.
func fromHelper(ctx context.Context) string {
	viper := config.Viper(ctx)

	helper := viper.GetStringSlice(config.TokenHelper)
	if len(helper) == 0 {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, viper.GetDuration(config.TokenHelperTimeout))
	defer cancel()

	// Helper not installed or timed out: no credential from this source.
	out, err := exec.CommandContext(ctx, helper[0], helper[1:]...).Output()
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(out))
}
