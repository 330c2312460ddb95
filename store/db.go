package store

import (
	"time"

	"caverna/experiments/metrics"
)

// DB persists tournament results.
type DB interface {
	Close() error
	Migrate() error
	SaveTournament(t *Tournament) error
	SaveGames(tournamentID string, games []metrics.GameRecord, moves []metrics.MoveRecord) error
	GetTournament(id string) (*Tournament, error)
	ListTournaments(limit int) ([]Tournament, error)
	GetGames(tournamentID string) ([]Game, error)
}

// Tournament is one series of games between two agents.
type Tournament struct {
	ID        string
	Agent1    string
	Agent2    string
	Games     int
	Wins1     int
	Wins2     int
	Draws     int
	CreatedAt time.Time
}

type Game struct {
	TournamentID string
	Number       int
	Agent1       int
	Agent2       int
	Winner       string
	Score1       int
	Score2       int
	Duration     time.Duration
	TotalMoves   int
}
