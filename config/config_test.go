package config

import (
	"os"
	"path/filepath"
	"testing"

	"caverna/balance"
	"caverna/engine"
	"caverna/game"
	"caverna/moves"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file gives defaults", func(t *testing.T) {
		app, err := Load(filepath.Join(t.TempDir(), "config.yml"))
		require.NoError(t, err)
		require.Equal(t, Defaults(), app)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("folder: /tmp/caverna\nlog_level: debug\n"), 0644))
		app, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "/tmp/caverna", app.Folder)
		require.Equal(t, "debug", app.LogLevel)
		require.Equal(t, Defaults().MovesFile, app.MovesFile)
		require.Equal(t, "/tmp/caverna/moves.yml", app.Path(app.MovesFile))
	})

	t.Run("broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("folder: [\n"), 0644))
		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestMovesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "moves.yml")

	cfg, err := LoadMoves(path)
	require.NoError(t, err)
	require.Equal(t, moves.DefaultConfig(), cfg)

	require.NoError(t, os.WriteFile(path, []byte("logging:\n  wood_incr: 5\n  secondary_wood_incr: 2\n"), 0644))
	cfg, err = LoadMoves(path)
	require.NoError(t, err)
	require.Equal(t, uint(5), cfg.Logging.WoodIncr)
	require.Equal(t, uint(2), cfg.Logging.SecondaryWoodIncr)
	require.Equal(t, moves.DefaultConfig().Supplies, cfg.Supplies, "Unset moves keep their defaults")
}

func TestBalanceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "balance.yml")
	cfg, err := LoadBalance(path)
	require.NoError(t, err)
	require.Equal(t, balance.Default(), cfg)

	tuned := balance.Generate()
	tuned.Resources["gold"][balance.BIAS] = 2.5
	require.NoError(t, SaveBalance(path, tuned))
	loaded, err := LoadBalance(path)
	require.NoError(t, err)
	require.Equal(t, tuned, loaded)
}

func TestGameFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yml")
	_, err := LoadGame(path)
	require.ErrorIs(t, err, os.ErrNotExist)

	g, err := engine.NewTwoPlayerGame(moves.DefaultConfig())
	require.NoError(t, err)
	g.Status = game.NextTurnPending
	g.FeedingStatus = game.FeedingOrBreeding
	require.NoError(t, g.Players[0].AddCaverns([]game.PlacedCavern{{Position: 1, Kind: game.MineHall}}))
	require.NoError(t, SaveGame(path, g))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "status: next_turn_pending", "Enums are stored by name")
	require.Contains(t, string(data), "kind: mine_hall")

	loaded, err := LoadGame(path)
	require.NoError(t, err)
	require.Equal(t, game.NextTurnPending, loaded.Status)
	require.Equal(t, game.FeedingOrBreeding, loaded.FeedingStatus)
	require.Equal(t, g.AvailableMoves, loaded.AvailableMoves)
	require.Equal(t, g.Moves, loaded.Moves)
	require.Equal(t, 1, loaded.Players[0].FreeCaverns(game.MineHall))
}
