package cli

import (
	"fmt"
	"strings"

	"caverna/balance"
	"caverna/config"
	"caverna/engine"
	"caverna/game"
	"caverna/gamemaster"
	"caverna/moves"

	"github.com/spf13/cobra"
)

func newGameCommand(s *state) *cobra.Command {
	gameCmd := &cobra.Command{
		Use:   "game",
		Short: "Create and inspect the saved game",
	}

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new two player game",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.movesConfig()
			if err != nil {
				return err
			}
			g, err := engine.NewTwoPlayerGame(cfg)
			if err != nil {
				return err
			}
			path := s.app.Path(s.app.GameFile)
			if err := config.SaveGame(path, g); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "✓ New game saved to %s", path)
			return nil
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show players and open moves",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := s.session()
			if err != nil {
				return err
			}
			return printStatus(cmd, session)
		},
	}

	var unlock string
	finishCmd := &cobra.Command{
		Use:   "finish-round",
		Short: "Return gnomes, unlock a move and refill the board",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := s.session()
			if err != nil {
				return err
			}
			if err := session.FinishRound(unlock); err != nil {
				return err
			}
			if err := s.saveGame(session.Game); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "✓ Turn %d starts with %s", session.Game.Turn, session.Game.Next)
			return nil
		},
	}
	finishCmd.Flags().StringVarP(&unlock, "unlock", "u", "", "Move to open for the coming rounds")

	var feeding string
	harvestCmd := &cobra.Command{
		Use:   "harvest",
		Short: "Feed and breed, each player picking with their strategy",
		RunE: func(cmd *cobra.Command, args []string) error {
			var status game.FeedingStatus
			if err := status.UnmarshalText([]byte(feeding)); err != nil {
				return err
			}
			session, err := s.session()
			if err != nil {
				return err
			}
			balances, err := s.balances()
			if err != nil {
				return err
			}
			sim := engine.NewSimulator(session.Moves, balances)
			if err := sim.Harvest(session.Game, status); err != nil {
				return err
			}
			if err := s.saveGame(session.Game); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "✓ Harvest %s done", status)
			return printStatus(cmd, session)
		},
	}
	harvestCmd.Flags().StringVarP(&feeding, "feeding", "f", game.Normal.String(), "Feeding status")

	gameCmd.AddCommand(newCmd, statusCmd, finishCmd, harvestCmd)
	return gameCmd
}

func printStatus(cmd *cobra.Command, session *gamemaster.Session) error {
	st, err := session.Status()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	title(out, "Turn %d: %s", st.Turn, st.Phase)
	fmt.Fprintf(out, "   Next: %s, first next round: %s, gnomes to place: %d\n", st.Next, orDash(st.FirstMove), st.MovesLeft)

	rows := make([][]string, len(st.Players))
	for i, p := range st.Players {
		warriors := make([]string, len(p.Warriors))
		for j, w := range p.Warriors {
			warriors[j] = itoa(w)
		}
		rows[i] = []string{
			p.Name,
			fmt.Sprintf("%d/%d", p.Gnomes-p.Moved, p.Gnomes),
			itoa(p.Children),
			joinOrDash(warriors),
			itoa(p.Fines),
			orDash(p.Resources),
			joinOrDash(p.Rooms),
			joinOrDash(p.Claimed),
			itoa(p.Score),
		}
	}
	renderTable(out, []string{"Player", "Free", "Children", "Warriors", "Fines", "Resources", "Rooms", "Claimed", "Score"}, rows)

	info(out, "Open moves: %s", strings.Join(session.AvailableMoves(), ", "))
	return nil
}

func (s *state) session() (*gamemaster.Session, error) {
	cfg, err := s.movesConfig()
	if err != nil {
		return nil, err
	}
	g, err := config.LoadGame(s.app.Path(s.app.GameFile))
	if err != nil {
		return nil, fmt.Errorf("%w (run `caverna game new` first)", err)
	}
	return gamemaster.NewSession(g, cfg), nil
}

func (s *state) saveGame(g *game.Game) error {
	return config.SaveGame(s.app.Path(s.app.GameFile), g)
}

// balances loads the strategies of p1 and p2.
func (s *state) balances() (map[string]balance.Config, error) {
	out := map[string]balance.Config{}
	for i, file := range s.app.BalanceFiles {
		cfg, err := config.LoadBalance(s.app.Path(file))
		if err != nil {
			return nil, err
		}
		out[fmt.Sprintf("p%d", i+1)] = cfg
	}
	return out, nil
}

func (s *state) movesConfig() (moves.Config, error) {
	return config.LoadMoves(s.app.Path(s.app.MovesFile))
}
