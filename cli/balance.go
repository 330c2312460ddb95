package cli

import (
	"caverna/balance"
	"caverna/config"

	"github.com/spf13/cobra"
)

func newBalanceCommand(s *state) *cobra.Command {
	balanceCmd := &cobra.Command{
		Use:   "balance",
		Short: "Write strategy files",
	}

	var out string
	write := func(name, short string, cfg func() balance.Config) *cobra.Command {
		return &cobra.Command{
			Use:   name,
			Short: short,
			RunE: func(cmd *cobra.Command, args []string) error {
				files := s.app.BalanceFiles[:]
				if out != "" {
					files = []string{out}
				}
				for _, file := range files {
					path := s.app.Path(file)
					if err := config.SaveBalance(path, cfg()); err != nil {
						return err
					}
					success(cmd.OutOrStdout(), "✓ Wrote %s", path)
				}
				return nil
			},
		}
	}

	balanceCmd.PersistentFlags().StringVarP(&out, "out", "o", "", "Balance file to write")
	balanceCmd.AddCommand(
		write("generate", "Write a zero strategy holding every feature", balance.Generate),
		write("default", "Write the hand tuned strategy", balance.Default),
	)
	return balanceCmd
}
