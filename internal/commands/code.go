package commands

import (
	"github.com/ledgerlift/ledgerlift/internal/dto"
	"github.com/spf13/cobra"
)

func newCodeCommand(app *App) *cobra.Command {
	var userID string
	var txnID string
	var accountCode string

	cmd := &cobra.Command{
		Use:   "code",
		Short: "Assign account codes to stored transactions",
		Long:  "Without flags, auto-codes every uncoded transaction. With --txn and --account, assigns one code explicitly.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, cleanup, err := app.DBServices(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			var result *dto.BulkCodeResult
			if txnID != "" || accountCode != "" {
				if txnID == "" || accountCode == "" {
					return cmd.Help()
				}
				result, err = container.Coding.ApplyCodes(cmd.Context(), userID, []dto.CodeAssignment{
					{TransactionID: txnID, AccountCode: accountCode},
				})
			} else {
				result, err = container.Coding.BulkAutoCode(cmd.Context(), userID)
			}
			if err != nil {
				return err
			}

			cmd.Printf("Coded %d transactions\n", result.Updated)
			for _, e := range result.Errors {
				cmd.Printf("error: %s: %s\n", e.TransactionID, e.Error)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "local", "owning user ID")
	cmd.Flags().StringVar(&txnID, "txn", "", "transaction ID to code explicitly")
	cmd.Flags().StringVar(&accountCode, "account", "", "account code to assign with --txn")

	return cmd
}
