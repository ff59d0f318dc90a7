package gitinfo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conflint/conflint/internal/adapters/outbound/gitinfo"
)

// initRepo creates a repository with one committed file and returns its root.
func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte("a: 1\n"), 0644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("app.yaml")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com"},
	})
	require.NoError(t, err)

	return dir
}

func TestIsRepo(t *testing.T) {
	g := gitinfo.New()
	assert.True(t, g.IsRepo(initRepo(t)))
	assert.False(t, g.IsRepo(t.TempDir()))
}

func TestCommitHash(t *testing.T) {
	g := gitinfo.New()

	hash, err := g.CommitHash(initRepo(t))
	require.NoError(t, err)
	assert.Len(t, hash, 40)

	_, err = g.CommitHash(t.TempDir())
	assert.Error(t, err)
}

func TestChangedFiles(t *testing.T) {
	dir := initRepo(t)
	g := gitinfo.New()

	changed, err := g.ChangedFiles(dir)
	require.NoError(t, err)
	assert.Empty(t, changed, "clean worktree has no changed files")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte("a: 2\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.json"), []byte("{}\n"), 0644))

	changed, err = g.ChangedFiles(dir)
	require.NoError(t, err)
	assert.Len(t, changed, 2)
	assert.Contains(t, changed, filepath.Join(dir, "app.yaml"))
	assert.Contains(t, changed, filepath.Join(dir, "new.json"))
}

func TestChangedFiles_NotARepo(t *testing.T) {
	_, err := gitinfo.New().ChangedFiles(t.TempDir())
	assert.Error(t, err)
}
