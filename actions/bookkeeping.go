package actions

import (
	"caverna/game"
)

// ForPlayerMove is the bookkeeping that follows a player claiming move. It is computed
// from the state before the gnome is placed.
func ForPlayerMove(g *game.Game, move string) (Actions, error) {
	next, err := g.NextUser()
	if err != nil {
		return Actions{}, err
	}
	b := New(move,
		ReserveGnome{Player: g.Next},
		BlockMove{Player: g.Next, Move: move},
		NextUser{Player: next},
	)
	if g.IsLastMove() {
		b = b.With(ChangeStatus{Status: game.NextTurnPending})
	}
	return b, nil
}

// ForRoundFinish resets the board for the next round and optionally unlocks newMove.
func ForRoundFinish(g *game.Game, newMove string) Actions {
	first := g.FirstMove
	if first == "" && len(g.Order) > 0 {
		first = g.Order[0]
	}
	b := New("",
		ChangeStatus{Status: game.PlayerMove},
		ReleaseMoves{},
		ReturnGnomes{},
		ReorderPlayers{Player: first},
		NextUser{Player: first},
	)
	if newMove != "" {
		b = b.With(OpenNewMove{Move: newMove})
	}
	return b.With(IncreaseTurn{})
}

// ForFeedingStart enters the harvest with the first seated player to feed.
func ForFeedingStart(g *game.Game, status game.FeedingStatus) Actions {
	b := New("",
		ChangeStatus{Status: game.FeedingAndBreeding},
		SetFeedingStatus{Status: status},
	)
	if len(g.Order) > 0 {
		b = b.With(NextUser{Player: g.Order[0]})
	}
	return b
}
