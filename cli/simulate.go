package cli

import (
	"sort"
	"strconv"
	"time"

	"caverna/engine"
	"caverna/experiments/metrics"

	"github.com/spf13/cobra"
)

func newSimulateCommand(s *state) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play one full game between the p1 and p2 strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.movesConfig()
			if err != nil {
				return err
			}
			balances, err := s.balances()
			if err != nil {
				return err
			}

			result, elapsed, err := engine.Play(cfg, balances["p1"], balances["p2"], metrics.NewCollector())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if verbose {
				title(out, "Decisions")
				rows := make([][]string, len(result.Decisions))
				for i, d := range result.Decisions {
					rows[i] = []string{
						strconv.Itoa(d.Round),
						strconv.Itoa(d.Step),
						d.Player,
						d.Move,
						strconv.Itoa(d.Weight),
						strconv.Itoa(d.Candidates),
					}
				}
				renderTable(out, []string{"Round", "Step", "Player", "Move", "Weight", "Candidates"}, rows)
			}

			title(out, "Final scores after %d rounds (%s)", result.Rounds, elapsed.Round(time.Millisecond))
			names := make([]string, 0, len(result.Scores))
			for name := range result.Scores {
				names = append(names, name)
			}
			sort.Strings(names)
			rows := make([][]string, len(names))
			for i, name := range names {
				rows[i] = []string{name, strconv.Itoa(result.Scores[name])}
			}
			renderTable(out, []string{"Player", "Score"}, rows)

			if result.Winner == "" {
				info(out, "Draw")
			} else {
				success(out, "✓ %s wins", result.Winner)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every decision")
	return cmd
}
