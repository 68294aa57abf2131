package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newAccountsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tTYPE\tNORMAL\tCATEGORY")
			for _, acc := range app.Chart.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					acc.Code, acc.Name, acc.Type, acc.NormalBalance, acc.Category)
			}
			return w.Flush()
		},
	}
	return cmd
}
