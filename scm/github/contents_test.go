package github

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ryclarke/copy-tool/scm"
)

func TestListContents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/test-org/test-repo/contents/" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}

		entries := []map[string]interface{}{
			{"name": "README.md", "type": "file"},
			{"name": ".github", "type": "dir"},
			{"name": "src", "type": "dir"},
		}
		json.NewEncoder(w).Encode(entries)
	}))
	defer server.Close()

	g := newTestGithub(t, server)

	names, err := g.ListContents(testRepo())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []string{"README.md", ".github", "src"}
	if len(names) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(names))
	}

	for i, name := range want {
		if names[i] != name {
			t.Errorf("Expected entry %q at index %d, got %q", name, i, names[i])
		}
	}
}

func TestListContents_NoCommits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// GitHub responds 404 to a content listing of an empty repository
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "This repository is empty."})
	}))
	defer server.Close()

	g := newTestGithub(t, server)

	_, err := g.ListContents(testRepo())
	if !errors.Is(err, scm.ErrNoCommits) {
		t.Errorf("Expected ErrNoCommits, got %v", err)
	}
}

func TestListContents_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	g := newTestGithub(t, server)

	_, err := g.ListContents(testRepo())
	if err == nil {
		t.Fatal("Expected error for server failure")
	}

	if errors.Is(err, scm.ErrNoCommits) {
		t.Error("Server failure must not be reported as an empty repository")
	}
}
