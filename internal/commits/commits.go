// Package commits carries the structured commit model consumed by release
// strategies. Commit values arrive from an external conventional-commit
// parser; this package never parses commit messages itself.
package commits

// Note is a structured title/text pair attached to a commit body.
type Note struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Commit is one structured commit since the last release. Values are treated
// as immutable input; helpers that need to alter a commit return a copy.
type Commit struct {
	SHA      string   `json:"sha"`
	Type     string   `json:"type"`
	Scope    string   `json:"scope,omitempty"`
	Breaking bool     `json:"breaking"`
	Message  string   `json:"message"`
	Notes    []Note   `json:"notes,omitempty"`
	Files    []string `json:"files,omitempty"`
}
