package engine

import (
	"errors"

	"caverna/game"
	"caverna/meta"
	"caverna/moves"
)

var (
	ErrNoCandidates = errors.New("no candidate moves")
	ErrNoBalance    = errors.New("no balance config for player")
)

// Round is one scripted round: the harvest that closes it and the move it unlocks.
type Round struct {
	Number  int
	Harvest bool
	Feeding game.FeedingStatus
	Unlock  string
}

type Script []Round

// TwoPlayerScript skips round 9, as two player games do.
var TwoPlayerScript = Script{
	{Number: 1, Unlock: moves.SHEEP_FARMING},
	{Number: 2, Unlock: moves.BLACKSMITHING},
	{Number: 3, Harvest: true, Feeding: game.Normal, Unlock: moves.ORE_MINE_CONSTRUCTION},
	{Number: 4, Harvest: true, Feeding: game.FeedByOne, Unlock: moves.WISH_FOR_CHILDREN},
	{Number: 5, Harvest: true, Feeding: game.Normal, Unlock: moves.DONKEY_FARMING},
	{Number: 6, Harvest: true, Feeding: game.Normal, Unlock: moves.RUBY_MINE_CONSTRUCTION},
	{Number: 7, Harvest: true, Feeding: game.NoBreeding, Unlock: moves.ORE_DELIVERY},
	{Number: 8, Harvest: true, Feeding: game.FeedByOne, Unlock: moves.FAMILY_LIFE},
	{Number: 10, Harvest: true, Feeding: game.Normal, Unlock: moves.ADVENTURE},
	{Number: 11, Harvest: true, Feeding: game.FeedingOrBreeding, Unlock: moves.RUBY_DELIVERY},
	{Number: 12, Harvest: true, Feeding: game.Normal, Unlock: moves.ORE_TRADING},
}

// NewTwoPlayerGame seats p1 and p2 in their entry dwellings with the opening moves
// already stocked.
func NewTwoPlayerGame(cfg moves.Config) (*game.Game, error) {
	g := game.NewGame(
		game.NewPlayer("p1", meta.START_GNOMES),
		game.NewPlayer("p2", meta.START_GNOMES),
	)
	g.AvailableMoves = append([]string(nil), moves.InitialPool...)
	if err := moves.NextTurn(g, cfg); err != nil {
		return nil, err
	}
	return g, nil
}
