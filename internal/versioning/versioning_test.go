package versioning

import (
	"testing"

	"github.com/Masterminds/semver/v3"

	"github.com/conn-castle/release-layer/internal/commits"
)

func TestConventionalBump(t *testing.T) {
	tests := []struct {
		name     string
		strategy Conventional
		current  string
		cs       []commits.Commit
		want     string
	}{
		{
			name:    "no commits leaves version unchanged",
			current: "1.2.3",
			cs:      nil,
			want:    "1.2.3",
		},
		{
			name:    "breaking flag bumps major",
			current: "1.2.3",
			cs:      []commits.Commit{{SHA: "a1", Type: "fix", Breaking: true}},
			want:    "2.0.0",
		},
		{
			name:    "breaking note bumps major",
			current: "1.2.3",
			cs: []commits.Commit{{SHA: "a1", Type: "refactor", Notes: []commits.Note{
				{Title: "BREAKING CHANGE", Text: "api removed"},
			}}},
			want: "2.0.0",
		},
		{
			name:    "feature bumps minor",
			current: "1.2.3",
			cs:      []commits.Commit{{SHA: "a1", Type: "feat"}, {SHA: "b2", Type: "fix"}},
			want:    "1.3.0",
		},
		{
			name:    "fix bumps patch",
			current: "1.2.3",
			cs:      []commits.Commit{{SHA: "a1", Type: "fix"}},
			want:    "1.2.4",
		},
		{
			name:    "other commit types bump patch",
			current: "1.2.3",
			cs:      []commits.Commit{{SHA: "a1", Type: "chore"}, {SHA: "b2", Type: "docs"}},
			want:    "1.2.4",
		},
		{
			name:    "synthetic commit bumps patch",
			current: "1.2.3",
			cs:      commits.EnsureNonEmpty(nil),
			want:    "1.2.4",
		},
		{
			name:     "pre-major breaking softened to minor",
			strategy: Conventional{BumpMinorPreMajor: true},
			current:  "0.4.2",
			cs:       []commits.Commit{{SHA: "a1", Type: "feat", Breaking: true}},
			want:     "0.5.0",
		},
		{
			name:     "pre-major feature softened to patch",
			strategy: Conventional{BumpPatchForMinorPreMajor: true},
			current:  "0.4.2",
			cs:       []commits.Commit{{SHA: "a1", Type: "feat"}},
			want:     "0.4.3",
		},
		{
			name:     "pre-major options ignored past 1.0",
			strategy: Conventional{BumpMinorPreMajor: true, BumpPatchForMinorPreMajor: true},
			current:  "1.4.2",
			cs:       []commits.Commit{{SHA: "a1", Type: "feat", Breaking: true}},
			want:     "2.0.0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.strategy.Bump(semver.MustParse(tt.current), tt.cs)
			if err != nil {
				t.Fatalf("Bump error: %v", err)
			}
			if got.String() != tt.want {
				t.Fatalf("Bump = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestConventionalDoesNotMutateCurrent(t *testing.T) {
	current := semver.MustParse("1.2.3")
	if _, err := (Conventional{}).Bump(current, []commits.Commit{{SHA: "a1", Type: "feat"}}); err != nil {
		t.Fatalf("Bump error: %v", err)
	}
	if current.String() != "1.2.3" {
		t.Fatalf("current version was mutated to %s", current)
	}
}

func TestSnapshotBump(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{current: "1.2.3", want: "1.2.4-SNAPSHOT"},
		{current: "1.2.3-SNAPSHOT", want: "1.2.4-SNAPSHOT"},
		{current: "0.1.0", want: "0.1.1-SNAPSHOT"},
		{current: "2.0.0-beta.1", want: "2.0.1-SNAPSHOT"},
	}
	for _, tt := range tests {
		t.Run(tt.current, func(t *testing.T) {
			got, err := (Snapshot{}).Bump(semver.MustParse(tt.current), nil)
			if err != nil {
				t.Fatalf("Bump error: %v", err)
			}
			if got.String() != tt.want {
				t.Fatalf("Bump = %s, want %s", got, tt.want)
			}
		})
	}
}
