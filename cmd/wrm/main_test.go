package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("WRM_LOGGING_LEVEL", "error")
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDuel_PrintsNarrative(t *testing.T) {
	out, err := execute(t, "duel", "goblin", "bandit", "--seed", "7")
	require.NoError(t, err)

	assert.Contains(t, out, "[round 1]")
	assert.Regexp(t, `wins in round|Stalemate after|Both combatants fall`, out)
}

func TestDuel_SeedIsReproducible(t *testing.T) {
	first, err := execute(t, "duel", "town_guard", "giant_spider", "--seed", "99")
	require.NoError(t, err)
	second, err := execute(t, "duel", "town_guard", "giant_spider", "--seed", "99")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDuel_UnknownTemplate(t *testing.T) {
	_, err := execute(t, "duel", "goblin", "dragon")
	assert.Error(t, err)
}

func TestDuel_RequiresTwoArgs(t *testing.T) {
	_, err := execute(t, "duel", "goblin")
	assert.Error(t, err)
}

func TestDuel_MaxRoundsFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session:\n  max_rounds: 1\n"), 0644))

	out, err := execute(t, "duel", "goblin", "goblin", "--config", path, "--seed", "3")
	require.NoError(t, err)
	assert.NotContains(t, out, "[round 2]")
}

func TestTemplates_ListsContent(t *testing.T) {
	out, err := execute(t, "templates")
	require.NoError(t, err)
	for _, id := range []string{"bandit", "giant_spider", "goblin", "town_guard"} {
		assert.Contains(t, out, id)
	}
}

func TestSheet_EncodesSnapshot(t *testing.T) {
	out, err := execute(t, "sheet", "bandit")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Bandit")
	assert.Contains(t, out, "template_id: bandit")
}

func TestBadContentDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "npcs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "npcs", "broken.yaml"), []byte("id: broken\nkind: dragon\n"), 0644))

	_, err := execute(t, "templates", "--content", dir)
	assert.Error(t, err)
}
