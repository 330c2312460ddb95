package engine

import (
	"fmt"
	"time"

	"caverna/actions"
	"caverna/balance"
	"caverna/experiments/metrics"
	"caverna/game"
	"caverna/moves"
	"caverna/score"

	"github.com/rs/zerolog/log"
)

// Simulator plays scripted games where every seat picks its best scored candidate.
type Simulator struct {
	Moves     moves.Config
	Balances  map[string]balance.Config // Keyed by player name
	Script    Script
	Collector metrics.Collector
}

type Result struct {
	Scores    map[string]int
	Winner    string // Empty on a draw
	Rounds    int
	Decisions []metrics.MoveMetric
}

func NewSimulator(cfg moves.Config, balances map[string]balance.Config) *Simulator {
	return &Simulator{
		Moves:     cfg,
		Balances:  balances,
		Script:    TwoPlayerScript,
		Collector: metrics.NewDummyCollector(),
	}
}

// Run plays every scripted round on g and scores the outcome.
func (s *Simulator) Run(g *game.Game) (Result, error) {
	if s.Collector == nil {
		s.Collector = metrics.NewDummyCollector()
	}
	result := Result{Scores: map[string]int{}}

	log.Info().Msgf("player %s is starting", g.Next)

	for _, round := range s.Script {
		decisions, err := s.PlayRound(g, round.Number)
		if err != nil {
			return result, err
		}
		result.Decisions = append(result.Decisions, decisions...)

		if round.Harvest {
			if err := s.Harvest(g, round.Feeding); err != nil {
				return result, fmt.Errorf("round %d harvest: %w", round.Number, err)
			}
		}
		if err := s.FinishRound(g, round.Unlock); err != nil {
			return result, fmt.Errorf("round %d finish: %w", round.Number, err)
		}
		result.Rounds++
	}

	best := 0
	for i, name := range g.Order {
		points, err := score.Final(g, name)
		if err != nil {
			return result, err
		}
		result.Scores[name] = points
		switch {
		case i == 0 || points > best:
			best, result.Winner = points, name
		case points == best:
			result.Winner = ""
		}
	}
	log.Info().Msgf("game over after %d rounds, scores %v, winner %q", result.Rounds, result.Scores, result.Winner)
	return result, nil
}

// PlayRound lets players claim moves until every gnome is placed.
func (s *Simulator) PlayRound(g *game.Game, round int) ([]metrics.MoveMetric, error) {
	var decisions []metrics.MoveMetric
	for g.TurnMovesLeft() != 0 {
		decision, err := s.Step(g, round)
		if err != nil {
			return decisions, err
		}
		decision.Step = len(decisions) + 1
		decisions = append(decisions, decision)
	}
	return decisions, nil
}

// Step plays the best move of the player to act.
func (s *Simulator) Step(g *game.Game, round int) (metrics.MoveMetric, error) {
	snapshot := g.Copy()
	player := snapshot.Next
	cfg, ok := s.Balances[player]
	if !ok {
		return metrics.MoveMetric{}, fmt.Errorf("%w: %s", ErrNoBalance, player)
	}

	s.Collector.Start()
	candidates, err := moves.Collect(snapshot, s.Moves, snapshot.FreeMoves())
	if err != nil {
		return metrics.MoveMetric{}, fmt.Errorf("round %d, %s: %w", round, player, err)
	}
	best, weight, err := s.pick(snapshot, player, cfg, candidates)
	if err != nil {
		return metrics.MoveMetric{}, fmt.Errorf("round %d, %s: %w", round, player, err)
	}

	chosen := candidates[best]
	if err := chosen.Apply(g); err != nil {
		return metrics.MoveMetric{}, fmt.Errorf("round %d, %s: %w", round, player, err)
	}
	bookkeeping, err := actions.ForPlayerMove(g, chosen.Move)
	if err != nil {
		return metrics.MoveMetric{}, fmt.Errorf("round %d, %s: %w", round, player, err)
	}
	if err := bookkeeping.Apply(g); err != nil {
		return metrics.MoveMetric{}, fmt.Errorf("round %d, %s: %w", round, player, err)
	}

	log.Debug().
		Int("round", round).
		Str("player", player).
		Str("move", chosen.Move).
		Int("weight", weight).
		Strs("actions", chosen.Describe()).
		Msg("move played")

	return metrics.MoveMetric{
		Round:          round,
		Player:         player,
		Move:           chosen.Move,
		Weight:         weight,
		DecisionMetric: s.Collector.Complete(),
	}, nil
}

// pick returns the index and weight of the first best candidate.
func (s *Simulator) pick(snapshot *game.Game, player string, cfg balance.Config, candidates []actions.Actions) (int, int, error) {
	if len(candidates) == 0 {
		return 0, 0, ErrNoCandidates
	}
	best, bestWeight := -1, 0
	for i, c := range candidates {
		w, err := balance.Weight(snapshot, player, cfg, c)
		if err != nil {
			return 0, 0, err
		}
		s.Collector.AddCandidate()
		if best < 0 || w > bestWeight {
			best, bestWeight = i, w
		}
	}
	return best, bestWeight, nil
}

// Harvest feeds every player in seating order.
func (s *Simulator) Harvest(g *game.Game, status game.FeedingStatus) error {
	if err := actions.ForFeedingStart(g, status).Apply(g); err != nil {
		return err
	}
	for _, name := range append([]string(nil), g.Order...) {
		cfg, ok := s.Balances[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrNoBalance, name)
		}
		snapshot := g.Copy()
		candidates := moves.FeedingActions(snapshot, name, status)
		best, _, err := s.pick(snapshot, name, cfg, candidates)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := candidates[best].Apply(g); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	log.Debug().Msgf("harvest %s done", status)
	return nil
}

// FinishRound returns the gnomes, unlocks the next move and refills the board.
func (s *Simulator) FinishRound(g *game.Game, unlock string) error {
	if err := actions.ForRoundFinish(g, unlock).Apply(g); err != nil {
		return err
	}
	if err := moves.NextTurn(g, s.Moves); err != nil {
		return err
	}
	log.Info().Msgf("turn %d starts with %s, %d moves open", g.Turn, g.Next, len(g.AvailableMoves))
	return nil
}

// Play is a convenience for running a fresh two player game.
func Play(cfg moves.Config, p1, p2 balance.Config, collector metrics.Collector) (Result, time.Duration, error) {
	g, err := NewTwoPlayerGame(cfg)
	if err != nil {
		return Result{}, 0, err
	}
	sim := NewSimulator(cfg, map[string]balance.Config{"p1": p1, "p2": p2})
	if collector != nil {
		sim.Collector = collector
	}
	start := time.Now()
	result, err := sim.Run(g)
	return result, time.Since(start), err
}
