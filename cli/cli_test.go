package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"caverna/config"

	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) (string, config.App) {
	t.Helper()
	dir := t.TempDir()
	app := config.Defaults()
	app.Folder = filepath.Join(dir, "data")
	app.LogLevel = "error"
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, app.Save(path))
	return path, app
}

func run(t *testing.T, configPath string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestBalanceCommand(t *testing.T) {
	path, app := newTestConfig(t)

	run(t, path, "balance", "default")
	for _, file := range app.BalanceFiles {
		_, err := os.Stat(app.Path(file))
		require.NoError(t, err)
	}

	run(t, path, "balance", "generate", "--out", "zero.yml")
	cfg, err := config.LoadBalance(app.Path("zero.yml"))
	require.NoError(t, err)
	require.Contains(t, cfg.Actions["fines"], "bias")
	require.Zero(t, cfg.Actions["fines"]["bias"])
}

func TestGameCommands(t *testing.T) {
	path, app := newTestConfig(t)

	t.Run("status without a game", func(t *testing.T) {
		cmd := NewRootCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"--config", path, "game", "status"})
		require.ErrorIs(t, cmd.Execute(), os.ErrNotExist)
	})

	run(t, path, "game", "new")
	out := run(t, path, "game", "status")
	require.Contains(t, out, "Turn 1")
	require.Contains(t, out, "entry_level_dwelling@0")

	t.Run("dry run leaves the game untouched", func(t *testing.T) {
		out := run(t, path, "moves", "show", "excavation")
		require.Contains(t, out, "Dry run of candidate 0")
		g, err := config.LoadGame(app.Path(app.GameFile))
		require.NoError(t, err)
		require.Empty(t, g.Players[0].Moves)
	})

	t.Run("apply claims the move", func(t *testing.T) {
		run(t, path, "moves", "show", "excavation", "--apply", "--candidate", "1")
		g, err := config.LoadGame(app.Path(app.GameFile))
		require.NoError(t, err)
		require.Equal(t, []string{"excavation"}, g.Players[0].Moves)
		require.Equal(t, "p2", g.Next)

		out := run(t, path, "moves", "list")
		require.Contains(t, out, "claimed by p1")
	})

	t.Run("round still in progress", func(t *testing.T) {
		cmd := NewRootCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"--config", path, "game", "finish-round"})
		require.Error(t, cmd.Execute())
	})
}

func TestSimulateCommand(t *testing.T) {
	path, _ := newTestConfig(t)
	run(t, path, "balance", "default")
	out := run(t, path, "simulate")
	require.Contains(t, out, "Final scores after 11 rounds")
}

func TestTournamentCommand(t *testing.T) {
	path, app := newTestConfig(t)
	run(t, path, "balance", "default")

	out := run(t, path, "tournament", "--games", "2", "--db", "--csv")
	require.Contains(t, out, "2 games")
	require.Contains(t, out, "Results written to")

	entries, err := os.ReadDir(filepath.Join(app.Path(app.Output), "tournament"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	out = run(t, path, "tournament", "history")
	require.Contains(t, out, "p1 vs p2")
}

func TestEvolveCommand(t *testing.T) {
	path, app := newTestConfig(t)
	run(t, path, "balance", "default")

	out := run(t, path, "evolve", "--generations", "1", "--population", "1", "--games", "2", "--out", "evolved.yml")
	require.Contains(t, out, "Champion saved")
	_, err := os.Stat(app.Path("evolved.yml"))
	require.NoError(t, err)
}

func TestRoundRobinCommand(t *testing.T) {
	path, _ := newTestConfig(t)
	run(t, path, "balance", "default")
	run(t, path, "balance", "generate", "--out", "zero.yml")

	out := run(t, path, "tournament", "round-robin", "balance_p1.yml", "balance_p2.yml", "zero.yml", "--games", "2", "--workers", "2")
	require.Contains(t, out, "Standings")
	require.Contains(t, out, "zero.yml")
}
