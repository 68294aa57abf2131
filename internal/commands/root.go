package commands

import (
	"github.com/spf13/cobra"
)

// Version is the CLI version reported by --version.
const Version = "0.1.0"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ledgerlift",
		Short:   "Bank statements to a coded ledger",
		Long:    "ledgerlift extracts transactions from bank statement documents, codes them against a chart of accounts, and reports the resulting trial balance.",
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newParseCommand(app))
	rootCmd.AddCommand(newAccountsCommand(app))
	rootCmd.AddCommand(newCodeCommand(app))
	rootCmd.AddCommand(newTrialBalanceCommand(app))
	rootCmd.AddCommand(newValidateCommand(app))

	return rootCmd
}
