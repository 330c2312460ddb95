package experiments

import (
	"sort"

	"caverna/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// Standing is the record of one agent over a round robin.
type Standing struct {
	Agent  metrics.AgentConfig
	Games  int
	Wins   int
	Draws  int
	Points int
}

// RoundRobin runs a tournament for every pair of agents. Game ids keep counting across
// matchups so the records of all pairs can share one set of files. Standings are sorted
// by wins, then points.
func (t Tournament) RoundRobin(agents []Agent) ([]Standing, []metrics.GameRecord, []metrics.MoveRecord, error) {
	standings := make(map[int]*Standing, len(agents))
	for _, a := range agents {
		standings[a.ID] = &Standing{Agent: a.AgentConfig}
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting round robin between %d agents...", len(agents))

	for i := 0; i < len(agents); i++ {
		for j := i + 1; j < len(agents); j++ {
			a, b := agents[i], agents[j]
			summary, games, moveRecs, err := t.Run(a, b)
			if err != nil {
				return nil, nil, nil, err
			}

			for _, id := range []int{a.ID, b.ID} {
				s := standings[id]
				s.Games += summary.Games
				s.Wins += summary.Wins[id]
				s.Draws += summary.Draws
				s.Points += summary.Points[id]
			}

			// Renumber from matchup-local ids
			offset := count
			for _, g := range games {
				g.ID += offset
				gameRecords = append(gameRecords, g)
			}
			for _, m := range moveRecs {
				m.Game += offset
				moveRecords = append(moveRecords, m)
			}
			count += len(games)
		}
	}

	log.Info().Msg("completed round robin")

	out := make([]Standing, 0, len(agents))
	for _, a := range agents {
		out = append(out, *standings[a.ID])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].Points > out[j].Points
	})
	return out, gameRecords, moveRecords, nil
}
