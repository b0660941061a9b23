package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// result captures one command execution.
type result struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes the root command with fresh flag values and an isolated
// user config directory.
func runCLI(t *testing.T, args ...string) result {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	prevNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prevNoColor })

	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// resetFlags restores every flag in the tree to its default so values do
// not leak between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeTestFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// gitFixture is a temporary repository with commits one minute apart.
type gitFixture struct {
	dir  string
	repo *git.Repository
	when time.Time
}

func newGitFixture(t *testing.T) *gitFixture {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return &gitFixture{dir: dir, repo: repo, when: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (g *gitFixture) commit(t *testing.T, messages ...string) plumbing.Hash {
	t.Helper()
	wt, err := g.repo.Worktree()
	require.NoError(t, err)

	var last plumbing.Hash
	for _, msg := range messages {
		g.when = g.when.Add(time.Minute)
		sig := &object.Signature{Name: "Test", Email: "test@test.com", When: g.when}
		last, err = wt.Commit(msg, &git.CommitOptions{Author: sig, Committer: sig, AllowEmptyCommits: true})
		require.NoError(t, err)
	}
	return last
}

func (g *gitFixture) tag(t *testing.T, name string, hash plumbing.Hash) {
	t.Helper()
	_, err := g.repo.CreateTag(name, hash, nil)
	require.NoError(t, err)
}

func (g *gitFixture) path(name string) string {
	return filepath.Join(g.dir, name)
}
