package actions

import (
	"testing"

	"caverna/game"
	"caverna/resource"
	"caverna/rooms"

	"github.com/stretchr/testify/require"
)

func newTestGame(names ...string) *game.Game {
	players := make([]*game.Player, len(names))
	for i, name := range names {
		players[i] = game.NewPlayer(name, 2)
	}
	g := game.NewGame(players...)
	g.AvailableMoves = []string{"logging", "supplies", "clearing"}
	return g
}

func TestUpdateResources(t *testing.T) {
	t.Run("adds to the named player only", func(t *testing.T) {
		g := newTestGame("p1", "p2")
		err := New("supplies", UpdateResources{Player: "p1", Delta: resource.Amounts{"gold": 30}}).Apply(g)
		require.NoError(t, err)

		p1, _ := g.Player("p1")
		p2, _ := g.Player("p2")
		require.Equal(t, uint(30), p1.Resources["gold"])
		require.Empty(t, p2.Resources)
	})

	t.Run("unknown player", func(t *testing.T) {
		g := newTestGame("p1", "p2")
		err := New("supplies", UpdateResources{Player: "p3", Delta: resource.Amounts{"gold": 1}}).Apply(g)
		require.ErrorIs(t, err, game.ErrPlayerNotFound)
	})
}

func TestReorderPlayers(t *testing.T) {
	t.Run("rotates the chosen player to the front", func(t *testing.T) {
		g := newTestGame("p1", "p2", "p3", "p4")
		require.NoError(t, New("", ReorderPlayers{Player: "p3"}).Apply(g))
		require.Equal(t, []string{"p3", "p4", "p1", "p2"}, g.Order)
	})

	t.Run("unknown player", func(t *testing.T) {
		g := newTestGame("p1", "p2")
		err := New("", ReorderPlayers{Player: "p9"}).Apply(g)
		require.ErrorIs(t, err, game.ErrPlayerNotFound)
		require.Equal(t, []string{"p1", "p2"}, g.Order)
	})
}

func TestApply(t *testing.T) {
	t.Run("failure commits nothing", func(t *testing.T) {
		g := newTestGame("p1", "p2")
		bundle := New("housework",
			UpdateResources{Player: "p1", Delta: resource.Amounts{"dog": 1}},
			SpendResources{Player: "p1", Cost: resource.Amounts{"wood": 4}},
		)
		err := bundle.Apply(g)
		require.ErrorIs(t, err, game.ErrInsufficientResources)
		require.Contains(t, err.Error(), "housework")

		p1, _ := g.Player("p1")
		require.Empty(t, p1.Resources, "The dog should not be kept after a failed bundle")
	})

	t.Run("items apply in order", func(t *testing.T) {
		g := newTestGame("p1", "p2")
		bundle := New("housework",
			UpdateResources{Player: "p1", Delta: resource.Amounts{"wood": 4, "stone": 3}},
			SpendResources{Player: "p1", Cost: resource.Amounts{"wood": 4, "stone": 3}},
			BuildCaverns{Player: "p1", Caverns: []game.PlacedCavern{{Position: 1, Kind: game.Room}}},
			BuildRooms{Player: "p1", Rooms: []game.PlacedRoom{{Position: 1, Room: rooms.DWELLING}}},
		)
		require.NoError(t, bundle.Apply(g))

		p1, _ := g.Player("p1")
		require.Equal(t, resource.Amounts{"wood": 0, "stone": 0}, p1.Resources)
		require.Len(t, p1.Rooms, 2)
		require.Len(t, bundle.Describe(), 4)
	})

	t.Run("empty bundle is a no-op", func(t *testing.T) {
		g := newTestGame("p1", "p2")
		before := g.Copy()
		require.NoError(t, New("adventure").Apply(g))
		require.Equal(t, before, g)
	})

	t.Run("arguments are copied", func(t *testing.T) {
		a := New("feeding").WithArg("room_slot", "1")
		b := a.WithArg("hall_slot", "2")
		require.Len(t, a.Args, 1)
		require.Len(t, b.Args, 2)
	})
}

func TestPlayerActions(t *testing.T) {
	t.Run("fines, warriors and children", func(t *testing.T) {
		g := newTestGame("p1", "p2")
		bundle := New("blacksmithing",
			AddFines{Player: "p1", Count: 2},
			ArmWarrior{Player: "p1", Level: 3},
			SpawnGnome{Player: "p1"},
			SetFirstPlayer{Player: "p2"},
		)
		require.NoError(t, bundle.Apply(g))

		p1, _ := g.Player("p1")
		require.Equal(t, 2, p1.Fines)
		require.Equal(t, []int{3}, p1.Warriors)
		require.Equal(t, 1, p1.ChildGnomes)
		require.Equal(t, "p2", g.FirstMove)
	})

	t.Run("every gnome armed", func(t *testing.T) {
		g := newTestGame("p1", "p2")
		p1, _ := g.Player("p1")
		p1.Warriors = []int{1, 1}
		err := New("blacksmithing", ArmWarrior{Player: "p1", Level: 2}).Apply(g)
		require.ErrorIs(t, err, game.ErrNoFreeGnome)
	})

	t.Run("collecting a move empties it", func(t *testing.T) {
		g := newTestGame("p1", "p2")
		g.Moves.Add("logging", resource.Amounts{"wood": 3})
		require.NoError(t, New("logging", CollectMove{Move: "logging"}).Apply(g))
		require.Empty(t, g.Moves.Accumulated("logging"))
	})
}

func TestBookkeeping(t *testing.T) {
	t.Run("player move reserves, blocks and passes the turn", func(t *testing.T) {
		g := newTestGame("p1", "p2")
		bundle, err := ForPlayerMove(g, "logging")
		require.NoError(t, err)
		require.NoError(t, bundle.Apply(g))

		p1, _ := g.Player("p1")
		require.Equal(t, 1, p1.MovedGnomes)
		require.Equal(t, []string{"logging"}, p1.Moves)
		require.Equal(t, []string{"supplies", "clearing"}, g.AvailableMoves)
		require.Equal(t, []string{"supplies", "clearing"}, g.FreeMoves())
		require.Equal(t, "p2", g.Next)
		require.Equal(t, game.PlayerMove, g.Status)
	})

	t.Run("last move ends the round", func(t *testing.T) {
		g := newTestGame("p1", "p2")
		g.Players[0].MovedGnomes = 2
		g.Players[1].MovedGnomes = 1
		g.Next = "p2"
		bundle, err := ForPlayerMove(g, "clearing")
		require.NoError(t, err)
		require.NoError(t, bundle.Apply(g))
		require.Equal(t, game.NextTurnPending, g.Status)
		require.Equal(t, 0, g.TurnMovesLeft())
	})

	t.Run("round finish restores the board", func(t *testing.T) {
		g := newTestGame("p1", "p2")
		for _, move := range []string{"logging", "supplies"} {
			bundle, err := ForPlayerMove(g, move)
			require.NoError(t, err)
			require.NoError(t, bundle.Apply(g))
		}
		g.Players[0].ChildGnomes = 1
		g.FirstMove = "p2"

		require.NoError(t, ForRoundFinish(g, "sheep_farming").Apply(g))
		require.Equal(t, []string{"clearing", "logging", "supplies", "sheep_farming"}, g.AvailableMoves)
		require.Equal(t, []string{"p2", "p1"}, g.Order)
		require.Equal(t, "p2", g.Next)
		require.Equal(t, 2, g.Turn)
		require.Equal(t, game.PlayerMove, g.Status)
		require.Equal(t, 3, g.Players[0].Gnomes)
		require.Equal(t, 0, g.Players[0].MovedGnomes)
		require.Empty(t, g.Players[1].Moves)
	})

	t.Run("feeding start", func(t *testing.T) {
		g := newTestGame("p1", "p2")
		g.Next = "p2"
		require.NoError(t, ForFeedingStart(g, game.FeedByOne).Apply(g))
		require.Equal(t, game.FeedingAndBreeding, g.Status)
		require.Equal(t, game.FeedByOne, g.FeedingStatus)
		require.Equal(t, "p1", g.Next)
	})
}
