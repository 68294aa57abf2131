package commands

import (
	"github.com/spf13/cobra"
)

func newValidateCommand(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check whether the ledger is ready to commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, cleanup, err := app.DBServices(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			v, err := container.TrialBalance.ValidateForCommit(cmd.Context(), userID)
			if err != nil {
				return err
			}

			cmd.Printf("Transactions: %d (uncoded: %d)\n", v.TransactionCount, v.UncodedCount)
			for _, e := range v.Errors {
				cmd.Printf("error: %s\n", e)
			}
			for _, w := range v.Warnings {
				cmd.Printf("warning: %s\n", w)
			}
			if v.ReadyForCommit {
				cmd.Println("Ready to commit.")
			} else {
				cmd.Println("Not ready to commit.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "local", "owning user ID")
	return cmd
}
