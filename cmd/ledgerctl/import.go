package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	paymentimport "github.com/commission-tracker/backend/internal/application/usecase/payment_import"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
	"github.com/commission-tracker/backend/internal/integration/entrypoint/dto"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Preview and commit a remittance file of tokenized rows",
	Long: `Classify remittance rows against the live ledgers of a tracker.

The file is a JSON array of rows with account_number and/or account_name,
amount and an optional date (YYYY-MM-DD). Without --commit the command only
prints the preview. With --commit every underpaid row needs a decision given
as --decision <row>=<accept_partial|mark_short_shipped|skip>.

Imports keep their preview session in Redis (REDIS_URL).`,
	Example: `  # Preview only
  ledgerctl import --brand <brand-id> --tracker <tracker-id> --file remittance.json

  # Commit, accepting row 3 as a partial payment
  ledgerctl import --brand <brand-id> --tracker <tracker-id> --file remittance.json \
    --commit --decision 3=accept_partial`,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().String("brand", "", "Brand ID (required)")
	importCmd.Flags().String("tracker", "", "Tracker ID (required)")
	importCmd.Flags().String("file", "", "JSON file of rows, - for stdin (required)")
	importCmd.Flags().Bool("commit", false, "Write the payments after previewing")
	importCmd.Flags().StringToString("decision", nil, "Decision for an underpaid row, as row=decision")
	_ = importCmd.MarkFlagRequired("brand")
	_ = importCmd.MarkFlagRequired("tracker")
	_ = importCmd.MarkFlagRequired("file")
}

func runImport(cmd *cobra.Command, args []string) error {
	brandFlag, _ := cmd.Flags().GetString("brand")
	trackerFlag, _ := cmd.Flags().GetString("tracker")
	file, _ := cmd.Flags().GetString("file")
	commit, _ := cmd.Flags().GetBool("commit")
	rawDecisions, _ := cmd.Flags().GetStringToString("decision")

	brandID, err := uuid.Parse(brandFlag)
	if err != nil {
		return fmt.Errorf("invalid --brand: %w", err)
	}
	trackerID, err := uuid.Parse(trackerFlag)
	if err != nil {
		return fmt.Errorf("invalid --tracker: %w", err)
	}
	decisions, err := parseDecisions(rawDecisions)
	if err != nil {
		return err
	}

	rows, err := readRows(cmd.InOrStdin(), file)
	if err != nil {
		return err
	}

	s, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	defer s.Close()

	preview, err := s.useCases.PreviewImport.Execute(cmd.Context(), paymentimport.PreviewImportInput{
		BrandID:   brandID,
		TrackerID: trackerID,
		Rows:      dto.ToImportRows(rows),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !commit {
		return writeJSON(out, dto.ToPreviewImportResponse(preview))
	}

	result, err := s.useCases.CommitImport.Execute(cmd.Context(), paymentimport.CommitImportInput{
		SessionID: preview.SessionID,
		Decisions: decisions,
	})
	if err != nil {
		return err
	}
	if err := writeJSON(out, dto.ToCommitImportResponse(result)); err != nil {
		return err
	}

	if len(result.Failed) > 0 {
		return fmt.Errorf("%d account group(s) failed to commit", len(result.Failed))
	}
	return nil
}

// readRows decodes the row file, or stdin when path is "-".
func readRows(stdin io.Reader, path string) ([]dto.ImportRowRequest, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var rows []dto.ImportRowRequest
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	return rows, nil
}

// parseDecisions converts row=decision flags into the commit input.
func parseDecisions(raw map[string]string) (map[int]valueobject.UnderpaidDecision, error) {
	decisions := make(map[int]valueobject.UnderpaidDecision, len(raw))

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		index, err := strconv.Atoi(k)
		if err != nil || index < 0 {
			return nil, fmt.Errorf("invalid --decision row %q", k)
		}
		decision := valueobject.UnderpaidDecision(raw[k])
		if !decision.IsValid() {
			return nil, fmt.Errorf("invalid --decision %s=%s", k, raw[k])
		}
		decisions[index] = decision
	}
	return decisions, nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
