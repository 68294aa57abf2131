package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/ledgerlift/ledgerlift/internal/core/domain"
	"github.com/ledgerlift/ledgerlift/internal/dto"
	"github.com/spf13/cobra"
)

func newParseCommand(app *App) *cobra.Command {
	var userID string
	var mediaType string
	var save bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Extract transactions from a statement document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			mt, err := resolveMediaType(mediaType, path)
			if err != nil {
				return err
			}

			req := dto.ParseStatementRequest{
				UserID:    userID,
				Filename:  filepath.Base(path),
				MediaType: mt,
				Data:      data,
			}

			if save {
				container, cleanup, err := app.DBServices(cmd.Context())
				if err != nil {
					return err
				}
				defer cleanup()

				resp, err := container.Statement.IngestStatement(cmd.Context(), req)
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(cmd, resp)
				}
				cmd.Printf("Saved upload %s (%d transactions)\n", resp.Upload.UploadID, resp.Upload.TransactionCount)
				return printParseResult(cmd, resp.Result)
			}

			result, err := app.LocalServices().Statement.ParseStatement(cmd.Context(), req)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, result)
			}
			return printParseResult(cmd, result)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "local", "owning user ID")
	cmd.Flags().StringVar(&mediaType, "type", "", "document type: pdf, csv or txt (default: by file extension)")
	cmd.Flags().BoolVar(&save, "save", false, "persist the upload and its transactions")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")

	return cmd
}

// resolveMediaType maps the --type flag, or failing that the file extension,
// onto a media type.
func resolveMediaType(flag, path string) (domain.MediaType, error) {
	key := strings.ToLower(flag)
	if key == "" {
		key = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch key {
	case "pdf":
		return domain.MediaPDF, nil
	case "csv":
		return domain.MediaCSV, nil
	case "txt", "text":
		return domain.MediaText, nil
	default:
		return "", fmt.Errorf("cannot determine document type for %s, pass --type pdf|csv|txt", path)
	}
}

func printParseResult(cmd *cobra.Command, result domain.ParseResult) error {
	if !result.Success {
		cmd.Printf("No transactions extracted: %s\n", result.Error)
		return nil
	}

	if result.AccountInfo.BankName != "" {
		cmd.Printf("Bank: %s\n", result.AccountInfo.BankName)
	}
	if result.AccountInfo.AccountNumber != "" {
		cmd.Printf("Account: %s\n", result.AccountInfo.AccountNumber)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDESCRIPTION\tAMOUNT\tDIRECTION\tCODE\tCONFIDENCE")
	for _, txn := range result.Transactions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			txn.Date, txn.Description, txn.Amount.StringFixed(2),
			txn.Direction, txn.AccountCode, txn.Confidence)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	cmd.Printf("\n%d transactions (strategy: %s)\n", len(result.Transactions), result.Transactions[0].Strategy)
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
