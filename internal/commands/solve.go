package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/statementlab/internal/solution"
)

func newSolveCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [statement]",
		Short: "Show the correct zone for every account of a statement",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stmt, err := st.statementArg(args)
			if err != nil {
				return err
			}

			universe := st.catalog.ForStatement(stmt)
			zs := st.registry.Zones(stmt)
			out := cmd.OutOrStdout()

			if err := printTitle(out, "Solutions - "+stmt.Label()); err != nil {
				return err
			}
			if err := printSolutions(cmd, solution.All(zs, universe)); err != nil {
				return err
			}

			if missing := solution.Unassigned(zs, universe); len(missing) > 0 {
				for _, a := range missing {
					st.logger.Warn("account fits no zone", "account", a.Title, "classification", a.Classification)
				}
				_, err := fmt.Fprintf(out, "%d account(s) fit no zone\n", len(missing))
				return err
			}
			return nil
		},
	}
}

func printSolutions(cmd *cobra.Command, sols []solution.ZoneSolution) error {
	out := cmd.OutOrStdout()
	for _, sol := range sols {
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
		if err := printTitle(out, sol.Zone.Label); err != nil {
			return err
		}
		t := newTable("Account", "Classification", "Normal Balance")
		for _, a := range sol.Accounts {
			t.Row(a.Title, a.Classification, a.NormalBalance)
		}
		if err := printTable(out, t); err != nil {
			return err
		}
	}
	return nil
}
