package apply

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conn-castle/release-layer/internal/release"
)

type stubUpdater struct {
	name string
	fn   func(content string) (string, error)
}

func (u stubUpdater) Name() string { return u.name }

func (u stubUpdater) Update(content string) (string, error) { return u.fn(content) }

func replaceUpdater(old, new string) stubUpdater {
	return stubUpdater{
		name: "replace",
		fn: func(content string) (string, error) {
			return strings.ReplaceAll(content, old, new), nil
		},
	}
}

func constantUpdater(out string) stubUpdater {
	return stubUpdater{
		name: "constant",
		fn:   func(string) (string, error) { return out, nil },
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRunRewritesExistingFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "versions.txt"), "core:1.2.3\n")

	results, err := Run(RealSystem{}, root, []release.Update{
		{Path: "versions.txt", Updater: replaceUpdater("1.2.3", "1.3.0")},
	}, Options{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.True(t, results[0].Changed)
	require.False(t, results[0].Created)
	require.Contains(t, results[0].Diff, "-core:1.2.3")
	require.Contains(t, results[0].Diff, "+core:1.3.0")

	data, err := os.ReadFile(filepath.Join(root, "versions.txt"))
	require.NoError(t, err)
	require.Equal(t, "core:1.3.0\n", string(data))
}

func TestRunUsesCachedContent(t *testing.T) {
	root := t.TempDir()
	// The on-disk copy is stale; the strategy already fetched the content.
	writeFile(t, filepath.Join(root, "versions.txt"), "stale\n")
	cached := "core:1.2.3\n"

	results, err := Run(RealSystem{}, root, []release.Update{
		{Path: "versions.txt", CachedContent: &cached, Updater: replaceUpdater("1.2.3", "2.0.0")},
	}, Options{})
	require.NoError(t, err)
	require.True(t, results[0].Changed)

	data, err := os.ReadFile(filepath.Join(root, "versions.txt"))
	require.NoError(t, err)
	require.Equal(t, "core:2.0.0\n", string(data))
}

func TestRunCreatesMissingFileWhenAllowed(t *testing.T) {
	root := t.TempDir()

	results, err := Run(RealSystem{}, root, []release.Update{
		{Path: "docs/CHANGELOG.md", CreateIfMissing: true, Updater: constantUpdater("## 1.0.0\n")},
	}, Options{})
	require.NoError(t, err)
	require.True(t, results[0].Created)
	require.True(t, results[0].Changed)

	data, err := os.ReadFile(filepath.Join(root, "docs", "CHANGELOG.md"))
	require.NoError(t, err)
	require.Equal(t, "## 1.0.0\n", string(data))
}

func TestRunRejectsMissingFileByDefault(t *testing.T) {
	root := t.TempDir()

	_, err := Run(RealSystem{}, root, []release.Update{
		{Path: "pom.xml", Updater: constantUpdater("x")},
	}, Options{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "pom.xml")
	require.Contains(t, err.Error(), "does not exist")
}

func TestRunDryRunWritesNothing(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "versions.txt"), "core:1.2.3\n")

	results, err := Run(RealSystem{}, root, []release.Update{
		{Path: "versions.txt", Updater: replaceUpdater("1.2.3", "1.3.0")},
		{Path: "CHANGELOG.md", CreateIfMissing: true, Updater: constantUpdater("## 1.3.0\n")},
	}, Options{DryRun: true})
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.True(t, results[0].Changed)
	require.True(t, results[1].Created)

	data, err := os.ReadFile(filepath.Join(root, "versions.txt"))
	require.NoError(t, err)
	require.Equal(t, "core:1.2.3\n", string(data))
	_, statErr := os.Stat(filepath.Join(root, "CHANGELOG.md"))
	require.True(t, os.IsNotExist(statErr))
}

func TestRunSkipsUnchangedFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "versions.txt"), "core:1.2.3\n")

	results, err := Run(RealSystem{}, root, []release.Update{
		{Path: "versions.txt", Updater: replaceUpdater("9.9.9", "1.3.0")},
	}, Options{})
	require.NoError(t, err)
	require.False(t, results[0].Changed)
	require.Empty(t, results[0].Diff)
}

func TestRunWrapsUpdaterFailure(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "versions.txt"), "core:1.2.3\n")

	boom := stubUpdater{name: "boom", fn: func(string) (string, error) {
		return "", os.ErrPermission
	}}
	_, err := Run(RealSystem{}, root, []release.Update{
		{Path: "versions.txt", Updater: boom},
	}, Options{})
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrPermission)
	require.Contains(t, err.Error(), "updater boom on versions.txt")
}

func TestRunRequiresSystem(t *testing.T) {
	_, err := Run(nil, t.TempDir(), nil, Options{})
	require.Error(t, err)
}

func TestRenderTruncatedUnifiedDiff(t *testing.T) {
	var from, to strings.Builder
	for i := 0; i < 100; i++ {
		from.WriteString("line\n")
		to.WriteString("LINE\n")
	}
	rendered, truncated := renderTruncatedUnifiedDiff("a", "a", from.String(), to.String(), 10)
	require.True(t, truncated)
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	require.Len(t, lines, 11)
	require.Contains(t, lines[10], "truncated to 10 lines")
}

func TestWriteFileAtomicPreservesContentOnOverwrite(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "file.txt")
	writeFile(t, path, "old")

	require.NoError(t, RealSystem{}.WriteFileAtomic(path, []byte("new"), 0o644))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
}
