package gamemaster

import (
	"errors"
	"fmt"

	"caverna/actions"
	"caverna/game"
	"caverna/moves"
	"caverna/score"
)

var (
	ErrIllegalMove      = errors.New("illegal move")
	ErrUnknownCandidate = errors.New("unknown candidate")
	ErrRoundInProgress  = errors.New("round still in progress")
)

// Session drives a game one command at a time on behalf of human players.
type Session struct {
	Game  *game.Game
	Moves moves.Config
}

func NewSession(g *game.Game, cfg moves.Config) *Session {
	return &Session{Game: g, Moves: cfg}
}

type PlayerStatus struct {
	Name      string
	Gnomes    int
	Children  int
	Moved     int
	Fines     int
	Warriors  []int
	Resources string
	Rooms     []string
	Claimed   []string
	Score     int
}

type Status struct {
	Turn      int
	Phase     game.Status
	Feeding   game.FeedingStatus
	Next      string
	FirstMove string
	MovesLeft int
	Players   []PlayerStatus
}

// Status summarizes the game, players listed in seating order.
func (s *Session) Status() (Status, error) {
	g := s.Game
	st := Status{
		Turn:      g.Turn,
		Phase:     g.Status,
		Feeding:   g.FeedingStatus,
		Next:      g.Next,
		FirstMove: g.FirstMove,
		MovesLeft: g.TurnMovesLeft(),
	}
	for _, name := range g.Order {
		p, err := g.Player(name)
		if err != nil {
			return Status{}, err
		}
		points, err := score.Final(g, name)
		if err != nil {
			return Status{}, err
		}
		ps := PlayerStatus{
			Name:      p.Name,
			Gnomes:    p.Gnomes,
			Children:  p.ChildGnomes,
			Moved:     p.MovedGnomes,
			Fines:     p.Fines,
			Warriors:  p.Warriors,
			Resources: p.Resources.String(),
			Claimed:   p.Moves,
			Score:     points,
		}
		for _, r := range p.Rooms {
			ps.Rooms = append(ps.Rooms, fmt.Sprintf("%s@%d", r.Room, r.Position))
		}
		st.Players = append(st.Players, ps)
	}
	return st, nil
}

// AvailableMoves lists the moves the player to act may still claim.
func (s *Session) AvailableMoves() []string {
	return s.Game.FreeMoves()
}

// Propose lists the candidate outcomes of a free move for the player to act.
func (s *Session) Propose(move string) ([]actions.Actions, error) {
	if _, err := moves.Resolve(move); err != nil {
		return nil, err
	}
	if s.Game.Status != game.PlayerMove || !s.Game.IsFree(move) {
		return nil, fmt.Errorf("%w: %s", ErrIllegalMove, move)
	}
	return moves.Collect(s.Game.Copy(), s.Moves, []string{move})
}
