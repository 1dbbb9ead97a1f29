package scm

import "time"

// Repo identifies a repository by its owner and name.
type Repo struct {
	Owner string
	Name  string
}

func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}

// Issue is a request-scoped projection of a hosting-service issue. It is
// read from the source repository and never persisted.
type Issue struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	State     string    `json:"state"`
	URL       string    `json:"url"`
	Labels    []string  `json:"labels,omitempty"`
}

// Closed reports whether the issue was closed in the source repository.
func (i *Issue) Closed() bool {
	return i.State == "closed"
}

// NewIssue holds the fields required to create an issue. Labels are carried
// over by name only.
type NewIssue struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Labels []string `json:"labels,omitempty"`
}
