package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ledgerlift/ledgerlift/internal/dto"
	"github.com/spf13/cobra"
)

func newTrialBalanceCommand(app *App) *cobra.Command {
	var userID string
	var dateFrom string
	var dateTo string
	var includeZero bool
	var csvPath string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Compute the trial balance from coded transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, cleanup, err := app.DBServices(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			opts := dto.TrialBalanceOptions{
				DateFrom:            dateFrom,
				DateTo:              dateTo,
				IncludeZeroBalances: includeZero,
			}
			tb, err := container.TrialBalance.GetTrialBalance(cmd.Context(), userID, opts)
			if err != nil {
				return err
			}

			if csvPath != "" {
				out, err := container.TrialBalance.ExportToCSV(tb)
				if err != nil {
					return err
				}
				if csvPath == "-" {
					_, err = cmd.OutOrStdout().Write(out)
					return err
				}
				if err := os.WriteFile(csvPath, out, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", csvPath, err)
				}
				cmd.Printf("Wrote %s\n", csvPath)
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tDEBIT\tCREDIT\tNET")
			for _, row := range tb.Rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					row.Code, row.Name,
					row.DebitAmount.StringFixed(2),
					row.CreditAmount.StringFixed(2),
					row.NetBalance.StringFixed(2))
			}
			fmt.Fprintf(w, "\tTOTALS\t%s\t%s\t%s\n",
				tb.Totals.TotalDebits.StringFixed(2),
				tb.Totals.TotalCredits.StringFixed(2),
				tb.Totals.Difference.StringFixed(2))
			if err := w.Flush(); err != nil {
				return err
			}

			if tb.Totals.IsBalanced {
				cmd.Println("\nLedger is balanced.")
			} else {
				cmd.Printf("\nLedger is OUT OF BALANCE by %s.\n", tb.Totals.Difference.Abs().StringFixed(2))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "local", "owning user ID")
	cmd.Flags().StringVar(&dateFrom, "from", "", "inclusive start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dateTo, "to", "", "inclusive end date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&includeZero, "include-zero", false, "include accounts that net to zero")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write CSV to this path ('-' for stdout)")

	return cmd
}
