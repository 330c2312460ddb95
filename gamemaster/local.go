package gamemaster

import (
	"fmt"

	"caverna/actions"
	"caverna/moves"

	"github.com/rs/zerolog/log"
)

// Play applies a candidate of move together with the turn bookkeeping and returns what
// happened. A dry run leaves the game untouched.
func (s *Session) Play(move string, candidate int, dryRun bool) ([]string, error) {
	candidates, err := s.Propose(move)
	if err != nil {
		return nil, err
	}
	if candidate < 0 || candidate >= len(candidates) {
		return nil, fmt.Errorf("%w: %d of %d", ErrUnknownCandidate, candidate, len(candidates))
	}

	target := s.Game
	if dryRun {
		target = s.Game.Copy()
	}
	player := target.Next
	chosen := candidates[candidate]
	if err := chosen.Apply(target); err != nil {
		return nil, err
	}
	bookkeeping, err := actions.ForPlayerMove(target, move)
	if err != nil {
		return nil, err
	}
	if err := bookkeeping.Apply(target); err != nil {
		return nil, err
	}

	if !dryRun {
		log.Info().Msgf("%s played %s", player, move)
	}
	return append(chosen.Describe(), bookkeeping.Describe()...), nil
}

// FinishRound closes a completed round, unlocking newMove when not empty.
func (s *Session) FinishRound(newMove string) error {
	if left := s.Game.TurnMovesLeft(); left != 0 {
		return fmt.Errorf("%w: %d gnomes to place", ErrRoundInProgress, left)
	}
	if newMove != "" {
		if _, err := moves.Resolve(newMove); err != nil {
			return err
		}
	}
	if err := actions.ForRoundFinish(s.Game, newMove).Apply(s.Game); err != nil {
		return err
	}
	if err := moves.NextTurn(s.Game, s.Moves); err != nil {
		return err
	}
	log.Info().Msgf("turn %d starts with %s", s.Game.Turn, s.Game.Next)
	return nil
}
