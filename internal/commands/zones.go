package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/statementlab/internal/solution"
)

func newZonesCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "zones [statement]",
		Short: "List the zones of a statement and the classifications they accept",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stmt, err := st.statementArg(args)
			if err != nil {
				return err
			}

			universe := st.catalog.ForStatement(stmt)
			t := newTable("ID", "Label", "Accepts", "Accounts")
			for _, z := range st.registry.Zones(stmt) {
				t.Row(z.ID, z.Label, strings.Join(z.MatchRules, ", "), strconv.Itoa(len(solution.For(z, universe))))
			}

			out := cmd.OutOrStdout()
			if err := printTitle(out, stmt.Label()); err != nil {
				return err
			}
			return printTable(out, t)
		},
	}
}
