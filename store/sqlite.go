package store

import (
	"database/sql"
	"fmt"
	"time"

	"caverna/experiments/metrics"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteDB implements DB on an SQLite file.
type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

func (s *SQLiteDB) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS tournaments (
			id TEXT PRIMARY KEY,
			agent1 TEXT NOT NULL,
			agent2 TEXT NOT NULL,
			games INTEGER NOT NULL,
			wins1 INTEGER NOT NULL DEFAULT 0,
			wins2 INTEGER NOT NULL DEFAULT 0,
			draws INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS games (
			tournament_id TEXT NOT NULL,
			number INTEGER NOT NULL,
			agent1 INTEGER NOT NULL,
			agent2 INTEGER NOT NULL,
			winner TEXT NOT NULL,
			score1 INTEGER NOT NULL,
			score2 INTEGER NOT NULL,
			duration_ns INTEGER NOT NULL,
			total_moves INTEGER NOT NULL,
			PRIMARY KEY (tournament_id, number),
			FOREIGN KEY (tournament_id) REFERENCES tournaments(id)
		)`,
		`CREATE TABLE IF NOT EXISTS moves (
			tournament_id TEXT NOT NULL,
			game INTEGER NOT NULL,
			step INTEGER NOT NULL,
			round INTEGER NOT NULL,
			player TEXT NOT NULL,
			move TEXT NOT NULL,
			weight INTEGER NOT NULL,
			candidates INTEGER NOT NULL,
			FOREIGN KEY (tournament_id, game) REFERENCES games(tournament_id, number)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_moves_game ON moves(tournament_id, game)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// SaveTournament inserts t, assigning a new ID when it has none.
func (s *SQLiteDB) SaveTournament(t *Tournament) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO tournaments (id, agent1, agent2, games, wins1, wins2, draws, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.Exec(query, t.ID, t.Agent1, t.Agent2, t.Games, t.Wins1, t.Wins2, t.Draws, t.CreatedAt)
	return err
}

// SaveGames stores the games of a tournament and their moves in one transaction.
func (s *SQLiteDB) SaveGames(tournamentID string, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	gameStmt, err := tx.Prepare(`INSERT INTO games (tournament_id, number, agent1, agent2, winner,
		score1, score2, duration_ns, total_moves) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer gameStmt.Close()

	for _, g := range games {
		_, err := gameStmt.Exec(tournamentID, g.ID, g.Agent1, g.Agent2, g.Winner,
			g.Scores["p1"], g.Scores["p2"], int64(g.Duration), g.TotalMoves)
		if err != nil {
			return fmt.Errorf("game %d: %w", g.ID, err)
		}
	}

	moveStmt, err := tx.Prepare(`INSERT INTO moves (tournament_id, game, step, round, player, move,
		weight, candidates) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer moveStmt.Close()

	for _, m := range moves {
		_, err := moveStmt.Exec(tournamentID, m.Game, m.Step, m.Round, m.Player, m.Move, m.Weight, m.Candidates)
		if err != nil {
			return fmt.Errorf("game %d step %d: %w", m.Game, m.Step, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteDB) GetTournament(id string) (*Tournament, error) {
	query := `SELECT id, agent1, agent2, games, wins1, wins2, draws, created_at
		FROM tournaments WHERE id = ?`

	var t Tournament
	err := s.db.QueryRow(query, id).Scan(
		&t.ID, &t.Agent1, &t.Agent2, &t.Games, &t.Wins1, &t.Wins2, &t.Draws, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTournaments returns the latest tournaments first.
func (s *SQLiteDB) ListTournaments(limit int) ([]Tournament, error) {
	query := `SELECT id, agent1, agent2, games, wins1, wins2, draws, created_at
		FROM tournaments ORDER BY created_at DESC LIMIT ?`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Tournament
	for rows.Next() {
		var t Tournament
		if err := rows.Scan(&t.ID, &t.Agent1, &t.Agent2, &t.Games, &t.Wins1, &t.Wins2, &t.Draws, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *SQLiteDB) GetGames(tournamentID string) ([]Game, error) {
	query := `SELECT tournament_id, number, agent1, agent2, winner, score1, score2, duration_ns, total_moves
		FROM games WHERE tournament_id = ? ORDER BY number`

	rows, err := s.db.Query(query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Game
	for rows.Next() {
		var g Game
		var duration int64
		err := rows.Scan(&g.TournamentID, &g.Number, &g.Agent1, &g.Agent2, &g.Winner,
			&g.Score1, &g.Score2, &duration, &g.TotalMoves)
		if err != nil {
			return nil, err
		}
		g.Duration = time.Duration(duration)
		out = append(out, g)
	}
	return out, rows.Err()
}

// CountMoves returns how many moves were stored for a game.
func (s *SQLiteDB) CountMoves(tournamentID string, game int) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM moves WHERE tournament_id = ? AND game = ?`, tournamentID, game).Scan(&n)
	return n, err
}
