package commits

const (
	// SyntheticType is the commit type of the synthetic commit inserted when
	// the history since the last release is empty.
	SyntheticType = "fake"
	// SyntheticSHA is the sentinel identifier of the synthetic commit.
	SyntheticSHA = "0000000000000000000000000000000000000000"
)

// EnsureNonEmpty returns cs unchanged when it contains at least one commit.
// An empty history is replaced by a single synthetic commit so that downstream
// bump and snapshot logic always has something to evaluate instead of
// silently skipping the cycle.
func EnsureNonEmpty(cs []Commit) []Commit {
	if len(cs) > 0 {
		return cs
	}
	return []Commit{{
		SHA:     SyntheticSHA,
		Type:    SyntheticType,
		Message: "fake commit",
	}}
}

// IsSynthetic reports whether c is the synthetic commit produced by
// EnsureNonEmpty.
func IsSynthetic(c Commit) bool {
	return c.SHA == SyntheticSHA && c.Type == SyntheticType
}
