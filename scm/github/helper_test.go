package github

import (
	"context"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/ryclarke/copy-tool/config"
	"github.com/ryclarke/copy-tool/scm"
)

// newTestGithub creates a Github provider pointed at the given test server.
func newTestGithub(t *testing.T, server *httptest.Server) *Github {
	t.Helper()

	v := config.New()
	v.Set(config.AuthToken, "test-token")

	ctx := config.SetViper(context.Background(), v)
	g := New(ctx).(*Github)

	// go-github requires a trailing slash on the base URL
	baseURL, err := url.Parse(server.URL + "/")
	if err != nil {
		t.Fatalf("Failed to parse test server URL: %v", err)
	}

	g.client.BaseURL = baseURL

	return g
}

func testRepo() scm.Repo {
	return scm.Repo{Owner: "test-org", Name: "test-repo"}
}
