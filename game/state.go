package game

import (
	"fmt"

	"caverna/resource"
	"caverna/utils"
)

// MovesData holds the goods accumulated on each action space, keyed by move name.
type MovesData map[string]resource.Amounts

// Accumulated returns what lies on a move's space. The result must not be modified.
func (m MovesData) Accumulated(move string) resource.Amounts {
	return m[move]
}

func (m MovesData) Add(move string, delta resource.Amounts) {
	if m[move] == nil {
		m[move] = resource.Amounts{}
	}
	m[move].Add(delta)
}

// Take empties a move's space and returns what was on it.
func (m MovesData) Take(move string) resource.Amounts {
	taken := m[move]
	delete(m, move)
	if taken == nil {
		taken = resource.Amounts{}
	}
	return taken
}

func (m MovesData) Copy() MovesData {
	c := make(MovesData, len(m))
	for move, amounts := range m {
		c[move] = amounts.Copy()
	}
	return c
}

// Game is the full mutable state of one match.
type Game struct {
	Turn           int           `yaml:"turn"`
	Status         Status        `yaml:"status"`
	FeedingStatus  FeedingStatus `yaml:"feeding_status"`
	Next           string        `yaml:"next"`       // Player to act
	FirstMove      string        `yaml:"first_move"` // Starting player of the next round
	Order          []string      `yaml:"order"`
	Players        []*Player     `yaml:"players"`
	Moves          MovesData     `yaml:"moves"`
	AvailableMoves []string      `yaml:"available_moves"`
}

// NewGame seats the players in the given order, the first one to act.
func NewGame(players ...*Player) *Game {
	g := &Game{
		Turn:  1,
		Moves: MovesData{},
	}
	for _, p := range players {
		g.Order = append(g.Order, p.Name)
		g.Players = append(g.Players, p)
	}
	if len(players) > 0 {
		g.Next = players[0].Name
		g.FirstMove = players[0].Name
	}
	return g
}

func (g Game) Copy() *Game {
	c := g
	c.Order = append([]string(nil), g.Order...)
	c.AvailableMoves = append([]string(nil), g.AvailableMoves...)
	c.Moves = g.Moves.Copy()
	c.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		c.Players[i] = p.Copy()
	}
	return &c
}

func (g *Game) Player(name string) (*Player, error) {
	for _, p := range g.Players {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPlayerNotFound, name)
}

// CurrentPlayer returns the player to act.
func (g *Game) CurrentPlayer() (*Player, error) {
	return g.Player(g.Next)
}

// FreeMoves returns the available moves not claimed by any player, in pool order.
func (g *Game) FreeMoves() []string {
	free := make([]string, 0, len(g.AvailableMoves))
	for _, move := range g.AvailableMoves {
		if !g.isClaimed(move) {
			free = append(free, move)
		}
	}
	return free
}

// IsFree reports whether move is in the pool and unclaimed.
func (g *Game) IsFree(move string) bool {
	return utils.Contains(g.FreeMoves(), move)
}

func (g *Game) isClaimed(move string) bool {
	for _, p := range g.Players {
		if utils.Contains(p.Moves, move) {
			return true
		}
	}
	return false
}

// TurnMovesLeft is the number of gnomes still to be placed this round.
func (g *Game) TurnMovesLeft() int {
	left := 0
	for _, p := range g.Players {
		left += p.FreeGnomes()
	}
	return left
}

func (g *Game) IsLastMove() bool {
	return g.TurnMovesLeft() <= 1
}

// NextUser finds the next player in seating order, after the current one, with a free
// gnome. The current player is considered last.
func (g *Game) NextUser() (string, error) {
	n := len(g.Order)
	start := utils.FindIndex(g.Order, g.Next)
	for i := 1; i <= n; i++ {
		name := g.Order[(start+i+n)%n]
		p, err := g.Player(name)
		if err != nil {
			return "", err
		}
		if p.FreeGnomes() > 0 {
			return name, nil
		}
	}
	return "", ErrNoEligiblePlayer
}
