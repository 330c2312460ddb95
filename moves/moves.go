package moves

import (
	"errors"
	"fmt"

	"caverna/actions"
	"caverna/game"
)

var ErrUnknownMove = errors.New("unknown move")

const (
	DRIFT_MINING           = "drift_mining"
	LOGGING                = "logging"
	WOOD_GATHERING         = "wood_gathering"
	EXCAVATION             = "excavation"
	SUPPLIES               = "supplies"
	CLEARING               = "clearing"
	STARTING_PLAYER        = "starting_player"
	RUBY_MINING            = "ruby_mining"
	HOUSEWORK              = "housework"
	SLASH_AND_BURN         = "slash_and_burn"
	SHEEP_FARMING          = "sheep_farming"
	BLACKSMITHING          = "blacksmithing"
	ORE_MINE_CONSTRUCTION  = "ore_mine_construction"
	WISH_FOR_CHILDREN      = "wish_for_children"
	DONKEY_FARMING         = "donkey_farming"
	RUBY_MINE_CONSTRUCTION = "ruby_mine_construction"
	ORE_DELIVERY           = "ore_delivery"
	FAMILY_LIFE            = "family_life"
	ADVENTURE              = "adventure"
	RUBY_DELIVERY          = "ruby_delivery"
	ORE_TRADING            = "ore_trading"
)

// InitialPool is the set of moves open from the first round of a two player game.
var InitialPool = []string{
	DRIFT_MINING, LOGGING, WOOD_GATHERING, EXCAVATION, SUPPLIES,
	CLEARING, STARTING_PLAYER, RUBY_MINING, HOUSEWORK, SLASH_AND_BURN,
}

// Move is an action space players can claim with a gnome.
type Move interface {
	Name() string
	// Actions lists the candidate outcomes for the player to act. There is always at
	// least one, possibly empty.
	Actions(g *game.Game, cfg Config) []actions.Actions
	// OnNextTurn refills the space at the start of a round.
	OnNextTurn(g *game.Game, cfg Config)
}

var registry = map[string]Move{}
var order []string

func register(moves ...Move) {
	for _, m := range moves {
		if _, dup := registry[m.Name()]; dup {
			panic("duplicate move " + m.Name())
		}
		registry[m.Name()] = m
		order = append(order, m.Name())
	}
}

func Resolve(name string) (Move, error) {
	m, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMove, name)
	}
	return m, nil
}

// Names returns every registered move in registration order.
func Names() []string {
	return append([]string(nil), order...)
}

// All resolves every available move of g.
func All(g *game.Game) ([]Move, error) {
	out := make([]Move, 0, len(g.AvailableMoves))
	for _, name := range g.AvailableMoves {
		m, err := Resolve(name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Collect gathers the candidates of the named moves, in name order then candidate order.
// Every bundle is tagged with its move name.
func Collect(g *game.Game, cfg Config, names []string) ([]actions.Actions, error) {
	var candidates []actions.Actions
	for _, name := range names {
		m, err := Resolve(name)
		if err != nil {
			return nil, err
		}
		for _, c := range m.Actions(g, cfg) {
			c.Move = name
			candidates = append(candidates, c)
		}
	}
	return candidates, nil
}

// NextTurn runs the refill hook of every available move.
func NextTurn(g *game.Game, cfg Config) error {
	all, err := All(g)
	if err != nil {
		return err
	}
	for _, m := range all {
		m.OnNextTurn(g, cfg)
	}
	return nil
}
