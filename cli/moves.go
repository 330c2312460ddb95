package cli

import (
	"strconv"
	"strings"

	"caverna/balance"
	"caverna/game"
	"caverna/moves"
	"caverna/utils"

	"github.com/spf13/cobra"
)

func newMovesCommand(s *state) *cobra.Command {
	movesCmd := &cobra.Command{
		Use:   "moves",
		Short: "Inspect and play moves of the saved game",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every move with what lies on it",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := s.session()
			if err != nil {
				return err
			}
			g := session.Game
			rows := [][]string{}
			for _, name := range moves.Names() {
				rows = append(rows, []string{name, moveState(g, name), orDash(g.Moves.Accumulated(name).String())})
			}
			renderTable(cmd.OutOrStdout(), []string{"Move", "State", "Accumulated"}, rows)
			return nil
		},
	}

	var apply bool
	var candidate int
	showCmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show the candidate outcomes of a move for the player to act",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			session, err := s.session()
			if err != nil {
				return err
			}
			balances, err := s.balances()
			if err != nil {
				return err
			}
			candidates, err := session.Propose(name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			player := session.Game.Next
			title(out, "%s for %s", name, player)
			if len(candidates) == 0 {
				info(out, "Nothing affordable")
				return nil
			}
			rows := make([][]string, len(candidates))
			for i, c := range candidates {
				weight, err := balance.Weight(session.Game, player, balances[player], c)
				if err != nil {
					return err
				}
				rows[i] = []string{strconv.Itoa(i), strconv.Itoa(weight), joinOrDash(c.Describe())}
			}
			renderTable(out, []string{"#", "Weight", "Actions"}, rows)

			described, err := session.Play(name, candidate, !apply)
			if err != nil {
				return err
			}
			if !apply {
				info(out, "Dry run of candidate %d: %s", candidate, strings.Join(described, "; "))
				return nil
			}
			if err := s.saveGame(session.Game); err != nil {
				return err
			}
			success(out, "✓ %s played %s: %s", player, name, strings.Join(described, "; "))
			return nil
		},
	}
	showCmd.Flags().BoolVarP(&apply, "apply", "a", false, "Apply the candidate to the saved game")
	showCmd.Flags().IntVarP(&candidate, "candidate", "n", 0, "Candidate to play")

	movesCmd.AddCommand(listCmd, showCmd)
	return movesCmd
}

func moveState(g *game.Game, name string) string {
	if g.IsFree(name) {
		return "free"
	}
	for _, p := range g.Players {
		if utils.Contains(p.Moves, name) {
			return "claimed by " + p.Name
		}
	}
	return "locked"
}
