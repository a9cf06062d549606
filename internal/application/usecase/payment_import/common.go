// Package paymentimport contains remittance import use cases.
package paymentimport

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/application/usecase/ledger"
	"github.com/commission-tracker/backend/internal/domain/entity"
	"github.com/commission-tracker/backend/internal/domain/service"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

// Summary counts classified rows.
type Summary struct {
	TotalRows      int
	Matched        int
	Underpaid      int
	Overpaid       int
	NotFound       int
	Invalid        int
	WritableAmount valueobject.Money // Sum of matched, underpaid and overpaid rows
}

func summarize(rows []service.ClassifiedRow) Summary {
	s := Summary{TotalRows: len(rows)}
	for _, row := range rows {
		switch row.Classification {
		case valueobject.ImportClassificationMatched:
			s.Matched++
		case valueobject.ImportClassificationUnderpaid:
			s.Underpaid++
		case valueobject.ImportClassificationOverpaid:
			s.Overpaid++
		case valueobject.ImportClassificationNotFound:
			s.NotFound++
		case valueobject.ImportClassificationInvalid:
			s.Invalid++
		}
		if row.Classification.IsWritable() {
			s.WritableAmount = s.WritableAmount.Add(row.Amount)
		}
	}
	return s
}

// classifyAgainstLive classifies rows against ledgers rebuilt from current state.
func classifyAgainstLive(
	ctx context.Context,
	accountRepo adapter.AccountRepository,
	loader *ledger.Loader,
	scope entity.LedgerScope,
	rows []entity.ImportRow,
) ([]service.ClassifiedRow, error) {
	_, result, err := loader.Load(ctx, scope)
	if err != nil {
		return nil, err
	}

	accounts, err := accountRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	ledgers := make(map[uuid.UUID]*entity.AccountLedger, len(result.Ledgers))
	for _, l := range result.Ledgers {
		ledgers[l.AccountID] = l
	}

	return service.ClassifyRows(rows, service.NewAccountIndex(accounts), ledgers), nil
}
