package github

import "fmt"

// CurrentUser performs a read-only identity check against the configured
// credential and returns the authenticated account name.
func (g *Github) CurrentUser() (string, error) {
	user, _, err := g.client.Users.Get(g.ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to look up authenticated user: %w", err)
	}

	return user.GetLogin(), nil
}
