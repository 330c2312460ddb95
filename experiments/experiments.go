package experiments

import (
	"fmt"
	"sync"
	"time"

	"caverna/balance"
	"caverna/engine"
	"caverna/experiments/metrics"
	"caverna/meta"
	"caverna/moves"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Agent is a named strategy.
type Agent struct {
	metrics.AgentConfig
	Balance balance.Config
}

// Tournament plays a series of games between two agents, swapping seats every game.
type Tournament struct {
	Moves   moves.Config
	Games   int
	Workers int // Games played in parallel
	Script  engine.Script
}

type Summary struct {
	Games  int
	Wins   map[int]int // By AgentConfig.ID
	Points map[int]int // Final scores summed by AgentConfig.ID
	Draws  int
}

func NewTournament(cfg moves.Config, games int) Tournament {
	if games <= 0 {
		games = meta.TOURNAMENT_GAMES
	}
	return Tournament{Moves: cfg, Games: games, Workers: 1, Script: engine.TwoPlayerScript}
}

// outcome is one finished game, seats in play order.
type outcome struct {
	seats  [2]Agent
	result engine.Result
	metric metrics.GameMetric
	err    error
}

func (t Tournament) Run(a, b Agent) (Summary, []metrics.GameRecord, []metrics.MoveRecord, error) {
	summary := Summary{Wins: map[int]int{}, Points: map[int]int{}}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting tournament between %s and %s...", a.Name, b.Name)

	outcomes := t.playAll(a, b)
	for i, o := range outcomes {
		if o.err != nil {
			return summary, nil, nil, fmt.Errorf("game %d: %w", i+1, o.err)
		}

		summary.Games++
		ids := map[string]int{"p1": o.seats[0].ID, "p2": o.seats[1].ID}
		for seat, points := range o.result.Scores {
			summary.Points[ids[seat]] += points
		}
		if o.result.Winner == "" {
			summary.Draws++
		} else {
			summary.Wins[ids[o.result.Winner]]++
		}

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Agent1:     o.seats[0].ID,
			Agent2:     o.seats[1].ID,
			GameMetric: o.metric,
		})
		for _, mm := range o.result.Decisions {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i + 1, MoveMetric: mm})
		}
	}

	log.Info().Msgf("completed tournament: %s won %d, %s won %d, %d draws",
		a.Name, summary.Wins[a.ID], b.Name, summary.Wins[b.ID], summary.Draws)
	return summary, gameRecords, moveRecords, nil
}

// playAll hands the games out to the workers. Outcomes keep game order.
func (t Tournament) playAll(a, b Agent) []outcome {
	outcomes := make([]outcome, t.Games)
	task := make(chan int, t.Games)
	for i := 0; i < t.Games; i++ {
		task <- i
	}
	close(task)

	workers := max(t.Workers, 1)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				seats := [2]Agent{a, b}
				if i%2 == 1 {
					seats = [2]Agent{b, a}
				}
				outcomes[i] = t.play(seats)
				if outcomes[i].err == nil {
					log.Info().Msgf("completed game %d of %d with winner: %q, scores %v",
						i+1, t.Games, outcomes[i].result.Winner, outcomes[i].result.Scores)
				}
			}
		}()
	}
	wg.Wait()
	return outcomes
}

func (t Tournament) play(seats [2]Agent) outcome {
	o := outcome{seats: seats}
	g, err := engine.NewTwoPlayerGame(t.Moves)
	if err != nil {
		o.err = err
		return o
	}
	sim := engine.NewSimulator(t.Moves, map[string]balance.Config{
		"p1": seats[0].Balance,
		"p2": seats[1].Balance,
	})
	if t.Script != nil {
		sim.Script = t.Script
	}
	sim.Collector = metrics.NewCollector()

	o.metric = metrics.GameMetric{StartingPlayer: g.Next, StartTime: time.Now().UTC()}
	o.result, o.err = sim.Run(g)
	o.metric.EndTime = time.Now().UTC()
	o.metric.Duration = o.metric.EndTime.Sub(o.metric.StartTime)
	o.metric.Winner = o.result.Winner
	o.metric.Scores = o.result.Scores
	o.metric.TotalMoves = len(o.result.Decisions)
	return o
}

// Beats reports whether challenger did better than champion: more wins, then more points.
func (s Summary) Beats(challenger, champion int) bool {
	if s.Wins[challenger] != s.Wins[champion] {
		return s.Wins[challenger] > s.Wins[champion]
	}
	return s.Points[challenger] > s.Points[champion]
}

type EvolveConfig struct {
	Generations int
	Population  int // Challengers per generation
	Rate        float64
	Sigma       float64
	Seed        uint64
}

// Generation records the champion kept after each round of challenges.
type Generation struct {
	Number   int
	Champion int // AgentConfig.ID
	Wins     int
	Points   int
	Replaced bool
}

// Evolve hill-climbs from base: every generation mutated challengers play the champion
// and the best one that beats it takes its place.
func (t Tournament) Evolve(base balance.Config, cfg EvolveConfig) (balance.Config, []Generation, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	champion := Agent{AgentConfig: metrics.AgentConfig{ID: 0, Name: "base"}, Balance: base}
	nextID := 1
	var history []Generation

	for gen := 1; gen <= cfg.Generations; gen++ {
		log.Info().Msgf("starting generation %d of %d...", gen, cfg.Generations)
		record := Generation{Number: gen, Champion: champion.ID}

		var best *Agent
		var bestSummary Summary
		for i := 0; i < cfg.Population; i++ {
			challenger := Agent{
				AgentConfig: metrics.AgentConfig{ID: nextID, Name: fmt.Sprintf("gen%d-%d", gen, i+1)},
				Balance:     balance.Mutate(champion.Balance, rng, cfg.Rate, cfg.Sigma),
			}
			nextID++

			summary, _, _, err := t.Run(champion, challenger)
			if err != nil {
				return champion.Balance, history, err
			}
			if !summary.Beats(challenger.ID, champion.ID) {
				continue
			}
			if best == nil || better(summary, challenger.ID, bestSummary, best.ID) {
				c := challenger
				best, bestSummary = &c, summary
			}
		}

		if best != nil {
			champion = *best
			record.Champion = champion.ID
			record.Wins = bestSummary.Wins[champion.ID]
			record.Points = bestSummary.Points[champion.ID]
			record.Replaced = true
		}
		history = append(history, record)
		log.Info().Msgf("generation %d champion: %s", gen, champion.Name)
	}
	return champion.Balance, history, nil
}

func better(a Summary, aID int, b Summary, bID int) bool {
	if a.Wins[aID] != b.Wins[bID] {
		return a.Wins[aID] > b.Wins[bID]
	}
	return a.Points[aID] > b.Points[bID]
}

// WriteResults stores an experiment as CSV files under root/name/<timestamp>.
func WriteResults(root, name string, agents []metrics.AgentConfig, games []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}
