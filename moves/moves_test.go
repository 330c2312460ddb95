package moves

import (
	"testing"

	"caverna/actions"
	"caverna/game"
	"caverna/resource"

	"github.com/stretchr/testify/require"
)

func newTestGame() *game.Game {
	g := game.NewGame(game.NewPlayer("p1", 2), game.NewPlayer("p2", 2))
	g.AvailableMoves = append([]string(nil), InitialPool...)
	return g
}

func mustResolve(t *testing.T, name string) Move {
	t.Helper()
	m, err := Resolve(name)
	require.NoError(t, err)
	return m
}

func TestRegistry(t *testing.T) {
	t.Run("every scripted move is registered", func(t *testing.T) {
		for _, name := range append(InitialPool, SHEEP_FARMING, BLACKSMITHING, ORE_MINE_CONSTRUCTION,
			WISH_FOR_CHILDREN, DONKEY_FARMING, RUBY_MINE_CONSTRUCTION, ORE_DELIVERY, FAMILY_LIFE,
			ADVENTURE, RUBY_DELIVERY, ORE_TRADING) {
			require.Equal(t, name, mustResolve(t, name).Name())
		}
		require.Len(t, Names(), 21)
	})

	t.Run("unknown move", func(t *testing.T) {
		_, err := Resolve("fishing")
		require.ErrorIs(t, err, ErrUnknownMove)
	})

	t.Run("every move offers a candidate", func(t *testing.T) {
		g := newTestGame()
		for _, name := range Names() {
			require.NotEmpty(t, mustResolve(t, name).Actions(g, DefaultConfig()), name)
		}
	})
}

func TestLogging(t *testing.T) {
	cfg := DefaultConfig()
	g := newTestGame()
	logging := mustResolve(t, LOGGING)

	logging.OnNextTurn(g, cfg)
	require.Equal(t, cfg.Logging.WoodIncr, g.Moves.Accumulated(LOGGING)["wood"], "Empty space gets the first yield")
	logging.OnNextTurn(g, cfg)
	require.Equal(t, cfg.Logging.WoodIncr+cfg.Logging.SecondaryWoodIncr, g.Moves.Accumulated(LOGGING)["wood"])

	candidates := logging.Actions(g, cfg)
	require.Len(t, candidates, 1)
	require.NoError(t, candidates[0].Apply(g))
	p1, _ := g.Player("p1")
	require.Equal(t, cfg.Logging.WoodIncr+cfg.Logging.SecondaryWoodIncr, p1.Resources["wood"])
	require.Empty(t, g.Moves.Accumulated(LOGGING), "Claimed space should be emptied")

	logging.OnNextTurn(g, cfg)
	require.Equal(t, cfg.Logging.WoodIncr, g.Moves.Accumulated(LOGGING)["wood"], "Emptied space gets the first yield again")
}

func TestRubyMining(t *testing.T) {
	cfg := DefaultConfig()
	g := newTestGame()
	ruby := mustResolve(t, RUBY_MINING)

	for g.Turn = 1; g.Turn <= cfg.RubyMining.FromTurn; g.Turn++ {
		ruby.OnNextTurn(g, cfg)
	}
	require.Empty(t, g.Moves.Accumulated(RUBY_MINING), "No gems before the opening turn")

	ruby.OnNextTurn(g, cfg)
	require.Equal(t, cfg.RubyMining.GemIncr, g.Moves.Accumulated(RUBY_MINING)["gem"])
}

func TestDriftMining(t *testing.T) {
	cfg := DefaultConfig()
	g := newTestGame()
	drift := mustResolve(t, DRIFT_MINING)
	drift.OnNextTurn(g, cfg)
	require.Empty(t, g.Moves.Accumulated(DRIFT_MINING))

	require.NoError(t, drift.Actions(g, cfg)[0].Apply(g))
	p1, _ := g.Player("p1")
	require.Equal(t, cfg.DriftMining.StoneIncr, p1.Resources["stone"])
}

func TestStartingPlayer(t *testing.T) {
	cfg := DefaultConfig()
	g := newTestGame()
	g.Next = "p2"
	m := mustResolve(t, STARTING_PLAYER)
	m.OnNextTurn(g, cfg)
	m.OnNextTurn(g, cfg)

	require.NoError(t, m.Actions(g, cfg)[0].Apply(g))
	p2, _ := g.Player("p2")
	require.Equal(t, resource.Amounts{"gem": 1, "coal": 1, "food": 2}, p2.Resources)
	require.Equal(t, "p2", g.FirstMove)
	require.Empty(t, g.Moves.Accumulated(STARTING_PLAYER))
}

func TestExcavationAndHousework(t *testing.T) {
	cfg := DefaultConfig()
	g := newTestGame()
	housework := mustResolve(t, HOUSEWORK)
	require.Len(t, housework.Actions(g, cfg), 1, "No free cavern to furnish yet")

	excavation := mustResolve(t, EXCAVATION)
	excavation.OnNextTurn(g, cfg)

	candidates := excavation.Actions(g, cfg)
	require.Len(t, candidates, 2)
	require.Equal(t, "1", candidates[1].Args["cavern_slot"])
	require.NoError(t, candidates[1].Apply(g))

	p1, _ := g.Player("p1")
	p1.ChangeResources(resource.Amounts{"wood": 4, "stone": 2})
	candidates = housework.Actions(g, cfg)
	require.Greater(t, len(candidates), 1)
	for _, c := range candidates[1:] {
		require.Equal(t, "1", c.Args["room_slot"])
		require.NoError(t, c.Apply(g.Copy()), "Offered furnishings should be affordable")
	}
}

func TestBlacksmithing(t *testing.T) {
	cfg := DefaultConfig()
	g := newTestGame()
	m := mustResolve(t, BLACKSMITHING)
	require.Len(t, m.Actions(g, cfg), 1, "No coal, no weapon")

	p1, _ := g.Player("p1")
	p1.ChangeResources(resource.Amounts{"coal": 20})
	candidates := m.Actions(g, cfg)
	require.Len(t, candidates, 2)
	require.NoError(t, candidates[1].Apply(g))
	p1, _ = g.Player("p1")
	require.Equal(t, []int{cfg.Blacksmithing.MaxLevel}, p1.Warriors)
	require.Equal(t, uint(20-cfg.Blacksmithing.MaxLevel), p1.Resources["coal"])
}

func TestFamilyGrowth(t *testing.T) {
	cfg := DefaultConfig()
	g := newTestGame()
	m := mustResolve(t, WISH_FOR_CHILDREN)
	require.True(t, m.Actions(g, cfg)[0].IsEmpty(), "Entry dwelling is full")

	p1, _ := g.Player("p1")
	p1.Rooms = append(p1.Rooms, game.PlacedRoom{Position: 1, Room: "dwelling"})
	require.NoError(t, m.Actions(g, cfg)[0].Apply(g))
	p1, _ = g.Player("p1")
	require.Equal(t, 1, p1.ChildGnomes)
}

func TestCollect(t *testing.T) {
	g := newTestGame()
	candidates, err := Collect(g, DefaultConfig(), []string{SUPPLIES, EXCAVATION})
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	require.Equal(t, SUPPLIES, candidates[0].Move)
	require.Equal(t, EXCAVATION, candidates[1].Move)

	_, err = Collect(g, DefaultConfig(), []string{"fishing"})
	require.ErrorIs(t, err, ErrUnknownMove)
}

func TestFeedingActions(t *testing.T) {
	t.Run("normal feeding with enough food", func(t *testing.T) {
		g := newTestGame()
		p1, _ := g.Player("p1")
		p1.ChangeResources(resource.Amounts{"food": 5})
		candidates := FeedingActions(g, "p1", game.Normal)
		require.Len(t, candidates, 1)
		require.Contains(t, candidates[0].Args, "hall_slot")
		require.NoError(t, candidates[0].Apply(g))
		p1, _ = g.Player("p1")
		require.Equal(t, uint(1), p1.Resources["food"])
		require.Equal(t, 0, p1.Fines)
	})

	t.Run("shortage is fined", func(t *testing.T) {
		g := newTestGame()
		p1, _ := g.Player("p1")
		p1.ChangeResources(resource.Amounts{"food": 1})
		p1.ChildGnomes = 1
		require.NoError(t, FeedingActions(g, "p1", game.Normal)[0].Apply(g))
		p1, _ = g.Player("p1")
		require.Equal(t, uint(0), p1.Resources["food"])
		require.Equal(t, 4, p1.Fines)
	})

	t.Run("feed by one", func(t *testing.T) {
		g := newTestGame()
		p1, _ := g.Player("p1")
		p1.ChangeResources(resource.Amounts{"food": 2, "sheep": 2})
		candidates := FeedingActions(g, "p1", game.FeedByOne)
		require.Len(t, candidates, 1)
		require.NoError(t, candidates[0].Apply(g))
		p1, _ = g.Player("p1")
		require.Equal(t, uint(0), p1.Resources["food"])
		require.Equal(t, uint(2), p1.Resources["sheep"], "No breeding on feed by one")
	})

	t.Run("breeding needs a pair and a clear slot", func(t *testing.T) {
		g := newTestGame()
		p1, _ := g.Player("p1")
		p1.ChangeResources(resource.Amounts{"food": 4, "sheep": 1, "donkey": 2})
		require.NoError(t, FeedingActions(g, "p1", game.Normal)[0].Apply(g))
		p1, _ = g.Player("p1")
		require.Equal(t, uint(1), p1.Resources["sheep"])
		require.Equal(t, uint(2), p1.Resources["donkey"], "Entry dwelling holds only two animals")
	})

	t.Run("feeding or breeding", func(t *testing.T) {
		g := newTestGame()
		candidates := FeedingActions(g, "p1", game.FeedingOrBreeding)
		require.Len(t, candidates, 2)
		require.IsType(t, actions.AddFines{}, candidates[0].Items[0])
		require.True(t, candidates[1].IsEmpty())
	})

	t.Run("no feeding", func(t *testing.T) {
		g := newTestGame()
		candidates := FeedingActions(g, "p1", game.NoFeeding)
		require.Len(t, candidates, 1)
		require.True(t, candidates[0].IsEmpty())
	})
}
