package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/commission-tracker/backend/internal/application/usecase/ledger"
	"github.com/commission-tracker/backend/internal/domain/entity"
	"github.com/commission-tracker/backend/internal/integration/entrypoint/dto"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the account ledgers of a brand",
	Long: `Print one line per account with its order value, commission due, paid
amount, remaining balance and aggregate pay status. Short-shipped and
overpaid groups also show their adjusted sale value.`,
	Example: `  # Ledgers of one tracker
  ledgerctl report --brand <brand-id> --tracker <tracker-id>

  # Combined view across all trackers, as JSON
  ledgerctl report --brand <brand-id> --all --format json`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("brand", "", "Brand ID (required)")
	reportCmd.Flags().String("tracker", "", "Tracker ID")
	reportCmd.Flags().Bool("all", false, "Aggregate across all trackers of the brand")
	reportCmd.Flags().String("format", "table", "Output format: table or json")
	_ = reportCmd.MarkFlagRequired("brand")
	reportCmd.MarkFlagsMutuallyExclusive("tracker", "all")
}

func runReport(cmd *cobra.Command, args []string) error {
	brandFlag, _ := cmd.Flags().GetString("brand")
	trackerFlag, _ := cmd.Flags().GetString("tracker")
	allTrackers, _ := cmd.Flags().GetBool("all")
	format, _ := cmd.Flags().GetString("format")

	if format != "table" && format != "json" {
		return fmt.Errorf("unknown format %q, expected table or json", format)
	}

	brandID, err := uuid.Parse(brandFlag)
	if err != nil {
		return fmt.Errorf("invalid --brand: %w", err)
	}
	trackerID, err := dto.ParseOptionalUUID(trackerFlag)
	if err != nil {
		return fmt.Errorf("invalid --tracker: %w", err)
	}

	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.Close()

	output, err := s.useCases.ListLedgers.Execute(cmd.Context(), ledger.ListLedgersInput{
		Scope: ledger.ScopeInput{
			BrandID:     brandID,
			TrackerID:   trackerID,
			AllTrackers: allTrackers,
		},
	})
	if err != nil {
		return err
	}

	if format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(dto.ToLedgerListResponse(output))
	}

	accounts, err := s.useCases.ListAccounts.Execute(cmd.Context())
	if err != nil {
		return err
	}
	names := make(map[uuid.UUID]string, len(accounts.Accounts))
	for _, a := range accounts.Accounts {
		names[a.ID] = a.Name
	}

	return writeLedgerTable(cmd.OutOrStdout(), output, names)
}

// writeLedgerTable renders ledgers as aligned columns followed by any issues.
func writeLedgerTable(out io.Writer, output *ledger.ListLedgersOutput, names map[uuid.UUID]string) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight|tabwriter.Debug)
	fmt.Fprintln(w, "ACCOUNT\tORDERS\tORDER VALUE\tDUE\tPAID\tREMAINING\tSTATUS\tADJUSTED SALE\t")

	for _, l := range output.Ledgers {
		name := names[l.AccountID]
		if name == "" {
			name = l.AccountID.String()
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			name,
			len(l.Members),
			l.TotalOrderValue,
			l.TotalCommissionDue,
			l.TotalPaid,
			l.AmountRemaining,
			l.AggregatePayStatus,
			adjustedSale(l),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, issue := range output.Issues {
		fmt.Fprintf(out, "issue: order %s: %s\n", issue.OrderID, issue.Reason)
	}
	return nil
}

func adjustedSale(l *entity.AccountLedger) string {
	switch {
	case l.IsShortShipped:
		return l.AdjustedSaleValue.String()
	case l.IsOverpaid:
		return l.OverpaidAdjustedSaleValue.String()
	default:
		return "-"
	}
}
