package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SharmiliRS/money-manager-frontend/internal/api"
	"github.com/SharmiliRS/money-manager-frontend/internal/core"
	"github.com/SharmiliRS/money-manager-frontend/internal/export"
	"github.com/SharmiliRS/money-manager-frontend/internal/export/sheets"
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("type", "", "Filter by type (income or expense)")
	exportCmd.Flags().Int("month", 0, "Filter by month (1-12)")
	exportCmd.Flags().Int("year", 0, "Filter by year")
	exportCmd.Flags().String("category", "", "Filter by category")
	exportCmd.Flags().String("division", "", "Filter by division")
	exportCmd.Flags().String("account", "", "Filter by account")
	exportCmd.Flags().StringP("output", "o", "", "Output file (default transactions_<date>.csv, '-' for stdout)")
	exportCmd.Flags().Bool("sheets", false, "Append to the configured Google Sheets spreadsheet instead of writing CSV")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions to CSV or Google Sheets",
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := sessionStore(cfg)
	if err != nil {
		return err
	}
	sess, err := requireSession(store)
	if err != nil {
		return err
	}

	filter := core.Filter{}
	if v, _ := cmd.Flags().GetString("type"); v == string(core.Income) || v == string(core.Expense) {
		filter.Type = core.TransactionType(v)
	}
	filter.Month, _ = cmd.Flags().GetInt("month")
	filter.Year, _ = cmd.Flags().GetInt("year")
	filter.Category, _ = cmd.Flags().GetString("category")
	filter.Division, _ = cmd.Flags().GetString("division")
	filter.Account, _ = cmd.Flags().GetString("account")

	logger := newLogger()
	client := newClient(cfg, logger).WithToken(sess.Token)
	txs, err := client.Transactions(cmd.Context(), sess.Email, api.ListOptions{Filter: filter})
	if err != nil {
		return err
	}
	core.SortNewestFirst(txs)
	txs = filter.Apply(txs)

	if toSheets, _ := cmd.Flags().GetBool("sheets"); toSheets {
		sink, err := sheets.New(cmd.Context(), cfg.GoogleSpreadsheetID, cfg.GoogleSheetName, logger)
		if err != nil {
			return err
		}
		if err := sink.Append(cmd.Context(), txs); err != nil {
			return err
		}
		printf("Appended %d transactions to sheet %q\n", len(txs), cfg.GoogleSheetName)
		return nil
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "-" {
		return export.WriteCSV(os.Stdout, txs)
	}
	if output == "" {
		output = export.Filename(time.Now())
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer f.Close()

	if err := export.WriteCSV(f, txs); err != nil {
		return err
	}
	printf("Wrote %d transactions to %s\n", len(txs), output)
	return nil
}
