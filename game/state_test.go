package game

import (
	"testing"

	"caverna/resource"
	"caverna/rooms"

	"github.com/stretchr/testify/require"
)

func newTestGame() *Game {
	g := NewGame(NewPlayer("p1", 2), NewPlayer("p2", 2))
	g.AvailableMoves = []string{"logging", "supplies", "clearing"}
	return g
}

func TestPlayer(t *testing.T) {
	t.Run("change resources inserts missing keys", func(t *testing.T) {
		p := NewPlayer("p1", 2)
		p.ChangeResources(resource.Amounts{"gold": 30})
		p.ChangeResources(resource.Amounts{"gold": 2, "wood": 1})
		require.Equal(t, resource.Amounts{"gold": 32, "wood": 1}, p.Resources)
	})

	t.Run("spending more than held leaves player untouched", func(t *testing.T) {
		p := NewPlayer("p1", 2)
		p.ChangeResources(resource.Amounts{"wood": 3})
		err := p.SpendResources(resource.Amounts{"wood": 4})
		require.ErrorIs(t, err, ErrInsufficientResources)
		require.Equal(t, uint(3), p.Resources["wood"])

		require.NoError(t, p.SpendResources(resource.Amounts{"wood": 3}))
		require.Equal(t, uint(0), p.Resources["wood"])
	})

	t.Run("rooms on taken positions are rejected atomically", func(t *testing.T) {
		p := NewPlayer("p1", 2)
		err := p.AddRooms([]PlacedRoom{{Position: 1, Room: rooms.CARPENTER}, {Position: 0, Room: rooms.MINER}})
		require.ErrorIs(t, err, ErrPositionTaken)
		require.Len(t, p.Rooms, 1, "No room should be added on rejection")

		err = p.AddRooms([]PlacedRoom{{Position: 2, Room: rooms.CARPENTER}, {Position: 2, Room: rooms.MINER}})
		require.ErrorIs(t, err, ErrPositionTaken, "Incoming rooms should not collide with each other")

		require.NoError(t, p.AddRooms([]PlacedRoom{{Position: 1, Room: rooms.CARPENTER}}))
		require.Len(t, p.Rooms, 2)
	})

	t.Run("unknown rooms are rejected", func(t *testing.T) {
		p := NewPlayer("p1", 2)
		err := p.AddRooms([]PlacedRoom{{Position: 1, Room: "castle"}})
		require.ErrorIs(t, err, rooms.ErrUnknownRoom)
	})

	t.Run("unique rooms are built once", func(t *testing.T) {
		p := NewPlayer("p1", 2)
		err := p.AddRooms([]PlacedRoom{{Position: 1, Room: rooms.ENTRY_LEVEL_DWELLING}})
		require.ErrorIs(t, err, ErrUniqueRoom)
		require.NoError(t, p.AddRooms([]PlacedRoom{{Position: 1, Room: rooms.DWELLING}, {Position: 2, Room: rooms.DWELLING}}),
			"Plain dwellings may repeat")
	})

	t.Run("fields and caverns use their own positions", func(t *testing.T) {
		p := NewPlayer("p1", 2)
		require.NoError(t, p.AddFields([]PlacedField{{Position: 0, Kind: Field}}))
		require.ErrorIs(t, p.AddFields([]PlacedField{{Position: 0, Kind: Meadow}}), ErrPositionTaken)
		require.ErrorIs(t, p.AddCaverns([]PlacedCavern{{Position: 0, Kind: Hall}}), ErrPositionTaken)
		require.NoError(t, p.AddCaverns([]PlacedCavern{{Position: 1, Kind: Hall}}))
		require.Equal(t, 1, p.FreeCaverns(Hall))
		require.Equal(t, 0, p.FreeCaverns(Room), "Entry cavern holds the dwelling")
	})

	t.Run("reserving gnomes", func(t *testing.T) {
		p := NewPlayer("p1", 2)
		require.NoError(t, p.ReserveGnome())
		require.NoError(t, p.ReserveGnome())
		require.ErrorIs(t, p.ReserveGnome(), ErrNoFreeGnome)
		require.Equal(t, 2, p.MovedGnomes)

		p.SpawnNewGnome()
		p.ReturnGnomes()
		require.Equal(t, 0, p.MovedGnomes)
		require.Equal(t, 3, p.Gnomes, "Children should grow up")
		require.Equal(t, 0, p.ChildGnomes)
	})

	t.Run("derived counts", func(t *testing.T) {
		p := NewPlayer("p1", 2)
		require.Equal(t, 0, p.FreeGnomeSlots(), "Entry dwelling houses two gnomes")
		require.Equal(t, 15, p.FreeRoomSlots())
		require.Equal(t, 16, p.FreeFieldSlots())
		require.Equal(t, 1, p.TierCount(rooms.Ginger))
		require.Equal(t, 2, p.MaxSlotsFor(resource.Sheep))
		p.ChangeResources(resource.Amounts{"sheep": 1})
		require.Equal(t, 1, p.ClearSlotsFor(resource.Sheep))
		require.Equal(t, 0, p.ClearSlotsFor(resource.Wood))

		p.Warriors = []int{3, 7}
		require.Equal(t, 2, p.WarriorCount())
		require.Equal(t, 0, p.PeacefulGnomes())
		require.Equal(t, 7, p.MaxWarriorLevel())
	})

	t.Run("board slots", func(t *testing.T) {
		p := NewPlayer("p1", 2)
		require.Equal(t, []int{1, 4}, p.CavernSlots())
		require.Equal(t, []int{0}, p.FieldNeighbourSlots())
		require.Equal(t, [][2]int{{1, 2}, {1, 5}, {4, 5}, {4, 8}}, p.MineSlots())
	})
}

func TestGame(t *testing.T) {
	t.Run("player lookup", func(t *testing.T) {
		g := newTestGame()
		p, err := g.Player("p2")
		require.NoError(t, err)
		require.Equal(t, "p2", p.Name)

		_, err = g.Player("P2")
		require.ErrorIs(t, err, ErrPlayerNotFound)
	})

	t.Run("free moves exclude claimed ones", func(t *testing.T) {
		g := newTestGame()
		g.Players[1].Moves = []string{"supplies"}
		require.Equal(t, []string{"logging", "clearing"}, g.FreeMoves())
		require.False(t, g.IsFree("supplies"))
		require.True(t, g.IsFree("logging"))
	})

	t.Run("moves left", func(t *testing.T) {
		g := newTestGame()
		require.Equal(t, 4, g.TurnMovesLeft())
		require.False(t, g.IsLastMove())
		g.Players[0].MovedGnomes = 2
		g.Players[1].MovedGnomes = 1
		require.True(t, g.IsLastMove())
	})

	t.Run("next user alternates and skips exhausted players", func(t *testing.T) {
		g := newTestGame()
		next, err := g.NextUser()
		require.NoError(t, err)
		require.Equal(t, "p2", next)

		g.Players[1].MovedGnomes = 2
		next, err = g.NextUser()
		require.NoError(t, err)
		require.Equal(t, "p1", next, "Current player should be considered last")

		g.Players[0].MovedGnomes = 2
		_, err = g.NextUser()
		require.ErrorIs(t, err, ErrNoEligiblePlayer)
	})

	t.Run("copy is deep", func(t *testing.T) {
		g := newTestGame()
		g.Moves.Add("logging", resource.Amounts{"wood": 3})
		c := g.Copy()
		c.Players[0].ChangeResources(resource.Amounts{"gold": 1})
		c.Players[0].Moves = append(c.Players[0].Moves, "logging")
		c.Moves.Add("logging", resource.Amounts{"wood": 1})
		c.Order[0] = "x"
		c.AvailableMoves[0] = "x"

		require.Empty(t, g.Players[0].Resources)
		require.Empty(t, g.Players[0].Moves)
		require.Equal(t, uint(3), g.Moves["logging"]["wood"])
		require.Equal(t, []string{"p1", "p2"}, g.Order)
		require.Equal(t, "logging", g.AvailableMoves[0])
	})

	t.Run("taking a move empties it", func(t *testing.T) {
		g := newTestGame()
		g.Moves.Add("clearing", resource.Amounts{"wood": 2})
		require.Equal(t, resource.Amounts{"wood": 2}, g.Moves.Take("clearing"))
		require.Empty(t, g.Moves.Accumulated("clearing"))
		require.Equal(t, resource.Amounts{}, g.Moves.Take("clearing"))
	})
}

func TestStatusText(t *testing.T) {
	var s FeedingStatus
	require.NoError(t, s.UnmarshalText([]byte("feeding_or_breeding")))
	require.Equal(t, FeedingOrBreeding, s)
	require.True(t, s.Breeds())
	require.False(t, FeedByOne.Breeds())
	require.False(t, NoFeeding.Feeds())
	require.Error(t, s.UnmarshalText([]byte("famine")))
	require.Equal(t, "next_turn_pending", NextTurnPending.String())
}
