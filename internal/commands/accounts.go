package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"

	"github.com/cleared-dev/statementlab/internal/classify"
)

func newAccountsCommand(st *state) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "accounts [statement]",
		Short: "List the accounts of a statement",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stmt, err := st.statementArg(args)
			if err != nil {
				return err
			}

			fold := cases.Fold()
			needle := fold.String(search)

			t := newTable("Account", "Classification", "Family", "Normal Balance")
			n := 0
			for _, a := range st.catalog.ForStatement(stmt) {
				if needle != "" && !strings.Contains(fold.String(a.Title), needle) {
					continue
				}
				t.Row(a.Title, a.Classification, string(classify.FamilyOf(a.Classification)), a.NormalBalance)
				n++
			}

			out := cmd.OutOrStdout()
			if n == 0 {
				_, err := fmt.Fprintln(out, "No accounts found")
				return err
			}
			if err := printTitle(out, fmt.Sprintf("%s (%d accounts)", stmt.Label(), n)); err != nil {
				return err
			}
			return printTable(out, t)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "only show titles containing this text")

	return cmd
}
