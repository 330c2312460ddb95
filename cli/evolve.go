package cli

import (
	"strconv"

	"caverna/config"
	"caverna/experiments"

	"github.com/spf13/cobra"
)

func newEvolveCommand(s *state) *cobra.Command {
	var games, workers int
	var out string
	evolveCfg := experiments.EvolveConfig{}
	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "Tune the p1 strategy by playing mutated challengers against it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.movesConfig()
			if err != nil {
				return err
			}
			base, err := config.LoadBalance(s.app.Path(s.app.BalanceFiles[0]))
			if err != nil {
				return err
			}

			t := experiments.NewTournament(cfg, games)
			t.Workers = workers
			champion, history, err := t.Evolve(base, evolveCfg)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			title(w, "Evolution over %d generations", evolveCfg.Generations)
			rows := make([][]string, len(history))
			for i, gen := range history {
				replaced := "-"
				if gen.Replaced {
					replaced = "yes"
				}
				rows[i] = []string{
					strconv.Itoa(gen.Number),
					strconv.Itoa(gen.Champion),
					replaced,
					strconv.Itoa(gen.Wins),
					strconv.Itoa(gen.Points),
				}
			}
			renderTable(w, []string{"Generation", "Champion", "Replaced", "Wins", "Points"}, rows)

			if out == "" {
				out = s.app.BalanceFiles[0]
			}
			path := s.app.Path(out)
			if err := config.SaveBalance(path, champion); err != nil {
				return err
			}
			success(w, "✓ Champion saved to %s", path)
			return nil
		},
	}
	cmd.Flags().IntVar(&evolveCfg.Generations, "generations", 5, "Number of generations")
	cmd.Flags().IntVar(&evolveCfg.Population, "population", 4, "Challengers per generation")
	cmd.Flags().Float64Var(&evolveCfg.Rate, "rate", 0.2, "Probability of mutating each weight")
	cmd.Flags().Float64Var(&evolveCfg.Sigma, "sigma", 0.5, "Deviation of a mutation step")
	cmd.Flags().Uint64Var(&evolveCfg.Seed, "seed", 1, "Random seed")
	cmd.Flags().IntVarP(&games, "games", "g", 0, "Games per challenge")
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "Games played in parallel")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Balance file to write the champion to, p1's by default")
	return cmd
}
