package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"caverna/config"
	"caverna/experiments"
	"caverna/experiments/metrics"
	"caverna/store"

	"github.com/spf13/cobra"
)

func newTournamentCommand(s *state) *cobra.Command {
	var games, workers int
	var saveDB, saveCSV bool
	tournamentCmd := &cobra.Command{
		Use:   "tournament",
		Short: "Play a series of games between the p1 and p2 strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.movesConfig()
			if err != nil {
				return err
			}
			a, b, err := s.agents()
			if err != nil {
				return err
			}

			t := experiments.NewTournament(cfg, games)
			t.Workers = workers
			summary, gameRecords, moveRecords, err := t.Run(a, b)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			title(out, "%d games", summary.Games)
			renderTable(out, []string{"Agent", "Wins", "Points"}, [][]string{
				{a.Name, strconv.Itoa(summary.Wins[a.ID]), strconv.Itoa(summary.Points[a.ID])},
				{b.Name, strconv.Itoa(summary.Wins[b.ID]), strconv.Itoa(summary.Points[b.ID])},
			})
			info(out, "Draws: %d", summary.Draws)

			if saveCSV {
				dir, err := experiments.WriteResults(s.app.Path(s.app.Output), "tournament",
					[]metrics.AgentConfig{a.AgentConfig, b.AgentConfig}, gameRecords, moveRecords)
				if err != nil {
					return err
				}
				success(out, "✓ Results written to %s", dir)
			}
			if saveDB {
				db, err := s.openDB()
				if err != nil {
					return err
				}
				defer db.Close()

				record := &store.Tournament{
					Agent1: a.Name,
					Agent2: b.Name,
					Games:  summary.Games,
					Wins1:  summary.Wins[a.ID],
					Wins2:  summary.Wins[b.ID],
					Draws:  summary.Draws,
				}
				if err := db.SaveTournament(record); err != nil {
					return err
				}
				if err := db.SaveGames(record.ID, gameRecords, moveRecords); err != nil {
					return err
				}
				success(out, "✓ Tournament %s saved", record.ID)
			}
			return nil
		},
	}
	tournamentCmd.PersistentFlags().IntVarP(&games, "games", "g", 0, "Number of games per pairing, alternating seats")
	tournamentCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 1, "Games played in parallel")
	tournamentCmd.Flags().BoolVar(&saveDB, "db", false, "Save results to the database")
	tournamentCmd.PersistentFlags().BoolVar(&saveCSV, "csv", false, "Write CSV results to the output folder")

	var limit int
	historyCmd := &cobra.Command{
		Use:   "history [id]",
		Short: "List saved tournaments, or the games of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := s.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				return printTournamentGames(out, db, args[0])
			}

			tournaments, err := db.ListTournaments(limit)
			if err != nil {
				return err
			}
			if len(tournaments) == 0 {
				info(out, "No tournaments saved yet")
				return nil
			}
			rows := make([][]string, len(tournaments))
			for i, t := range tournaments {
				rows[i] = []string{
					t.ID,
					t.CreatedAt.Format("2006-01-02 15:04"),
					fmt.Sprintf("%s vs %s", t.Agent1, t.Agent2),
					strconv.Itoa(t.Games),
					fmt.Sprintf("%d-%d-%d", t.Wins1, t.Wins2, t.Draws),
				}
			}
			renderTable(out, []string{"ID", "Created", "Agents", "Games", "W-L-D"}, rows)
			return nil
		},
	}
	historyCmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of tournaments to list")

	roundRobinCmd := &cobra.Command{
		Use:   "round-robin <balance file>...",
		Short: "Play every pair of strategies against each other",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.movesConfig()
			if err != nil {
				return err
			}
			agents := make([]experiments.Agent, len(args))
			configs := make([]metrics.AgentConfig, len(args))
			for i, file := range args {
				path := s.app.Path(file)
				b, err := config.LoadBalance(path)
				if err != nil {
					return err
				}
				configs[i] = metrics.AgentConfig{ID: i + 1, Name: file, Source: path}
				agents[i] = experiments.Agent{AgentConfig: configs[i], Balance: b}
			}

			t := experiments.NewTournament(cfg, games)
			t.Workers = workers
			standings, gameRecords, moveRecords, err := t.RoundRobin(agents)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			title(out, "Standings")
			rows := make([][]string, len(standings))
			for i, st := range standings {
				rows[i] = []string{
					strconv.Itoa(i + 1),
					st.Agent.Name,
					strconv.Itoa(st.Games),
					strconv.Itoa(st.Wins),
					strconv.Itoa(st.Draws),
					strconv.Itoa(st.Points),
				}
			}
			renderTable(out, []string{"Rank", "Agent", "Games", "Wins", "Draws", "Points"}, rows)

			if saveCSV {
				dir, err := experiments.WriteResults(s.app.Path(s.app.Output), "round_robin", configs, gameRecords, moveRecords)
				if err != nil {
					return err
				}
				success(out, "✓ Results written to %s", dir)
			}
			return nil
		},
	}

	tournamentCmd.AddCommand(historyCmd, roundRobinCmd)
	return tournamentCmd
}

func printTournamentGames(out io.Writer, db store.DB, id string) error {
	t, err := db.GetTournament(id)
	if err != nil {
		return err
	}
	games, err := db.GetGames(id)
	if err != nil {
		return err
	}
	title(out, "%s vs %s", t.Agent1, t.Agent2)
	rows := make([][]string, len(games))
	for i, g := range games {
		rows[i] = []string{
			strconv.Itoa(g.Number),
			fmt.Sprintf("%d-%d", g.Score1, g.Score2),
			orDash(g.Winner),
			g.Duration.String(),
		}
	}
	renderTable(out, []string{"Game", "Score", "Winner", "Duration"}, rows)
	return nil
}

func (s *state) agents() (experiments.Agent, experiments.Agent, error) {
	balances, err := s.balances()
	if err != nil {
		return experiments.Agent{}, experiments.Agent{}, err
	}
	var agents [2]experiments.Agent
	for i, file := range s.app.BalanceFiles {
		agents[i] = experiments.Agent{
			AgentConfig: metrics.AgentConfig{ID: i + 1, Name: fmt.Sprintf("p%d", i+1), Source: s.app.Path(file)},
			Balance:     balances[fmt.Sprintf("p%d", i+1)],
		}
	}
	return agents[0], agents[1], nil
}

func (s *state) openDB() (store.DB, error) {
	path := s.app.Path(s.app.Database)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	db, err := store.NewSQLiteDB(path)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
