package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/domain/entity"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

// ClassifiedRow is an import row resolved to an account and classified
// against that account's outstanding balance.
type ClassifiedRow struct {
	Index          int
	Row            entity.ImportRow
	Amount         valueobject.Money
	Date           *time.Time
	AccountID      *uuid.UUID
	AccountName    string
	Outstanding    valueobject.Money
	Classification valueobject.ImportClassification
	Reason         string
}

// AccountIndex resolves external identifiers to known accounts.
type AccountIndex struct {
	byNumber map[string]*entity.Account
	byName   map[string]*entity.Account
	// names shared by more than one account cannot be matched by name
	ambiguous map[string]struct{}
}

// NewAccountIndex indexes accounts by external number and lower-cased name.
func NewAccountIndex(accounts []*entity.Account) *AccountIndex {
	idx := &AccountIndex{
		byNumber:  make(map[string]*entity.Account, len(accounts)),
		byName:    make(map[string]*entity.Account, len(accounts)),
		ambiguous: make(map[string]struct{}),
	}

	for _, acc := range accounts {
		if number := strings.TrimSpace(acc.AccountNumber); number != "" {
			idx.byNumber[number] = acc
		}

		name := normalizeName(acc.Name)
		if name == "" {
			continue
		}
		if _, taken := idx.byName[name]; taken {
			idx.ambiguous[name] = struct{}{}
			continue
		}
		idx.byName[name] = acc
	}

	for name := range idx.ambiguous {
		delete(idx.byName, name)
	}
	return idx
}

// Lookup matches by exact account number first, then by case-insensitive name.
func (idx *AccountIndex) Lookup(accountNumber, accountName string) (*entity.Account, bool) {
	if number := strings.TrimSpace(accountNumber); number != "" {
		if acc, ok := idx.byNumber[number]; ok {
			return acc, true
		}
	}
	if acc, ok := idx.byName[normalizeName(accountName)]; ok {
		return acc, true
	}
	return nil, false
}

// MatchAndClassify resolves a row and classifies it against the account's
// live outstanding balance. It never writes state.
func MatchAndClassify(row entity.ImportRow, idx *AccountIndex, ledgers map[uuid.UUID]*entity.AccountLedger) ClassifiedRow {
	outstanding := make(map[uuid.UUID]valueobject.Money)
	for id, l := range ledgers {
		outstanding[id] = l.Outstanding()
	}
	return classify(0, row, idx, outstanding)
}

// ClassifyRows classifies a batch in order. Each writable row reduces the
// running outstanding balance of its account, so two rows paying the same
// account are not both classified against the full balance.
func ClassifyRows(rows []entity.ImportRow, idx *AccountIndex, ledgers map[uuid.UUID]*entity.AccountLedger) []ClassifiedRow {
	outstanding := make(map[uuid.UUID]valueobject.Money, len(ledgers))
	for id, l := range ledgers {
		outstanding[id] = l.Outstanding()
	}

	classified := make([]ClassifiedRow, 0, len(rows))
	for i, row := range rows {
		c := classify(i, row, idx, outstanding)
		if c.Classification.IsWritable() {
			outstanding[*c.AccountID] = outstanding[*c.AccountID].Sub(c.Amount)
		}
		classified = append(classified, c)
	}
	return classified
}

func classify(index int, row entity.ImportRow, idx *AccountIndex, outstanding map[uuid.UUID]valueobject.Money) ClassifiedRow {
	c := ClassifiedRow{Index: index, Row: row}

	acc, ok := idx.Lookup(row.AccountNumber, row.AccountName)
	if !ok {
		c.Classification = valueobject.ImportClassificationNotFound
		c.Reason = "no account matches the row's account number or name"
		return c
	}
	id := acc.ID
	c.AccountID = &id
	c.AccountName = acc.Name

	amount, err := valueobject.ParseMoney(row.Amount)
	if err != nil {
		c.Classification = valueobject.ImportClassificationInvalid
		c.Reason = err.Error()
		return c
	}
	c.Amount = amount

	date, err := parseRowDate(row.Date)
	if err != nil {
		c.Classification = valueobject.ImportClassificationInvalid
		c.Reason = "invalid payment date " + row.Date
		return c
	}
	c.Date = date

	c.Outstanding = outstanding[acc.ID]
	c.Classification = valueobject.ClassifyPayment(amount, c.Outstanding)
	if c.Classification == valueobject.ImportClassificationInvalid {
		c.Reason = "payment amount must be positive"
	}
	return c
}

func parseRowDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if d, err := time.Parse(layout, s); err == nil {
			d = d.UTC()
			return &d, nil
		}
	}
	return nil, &time.ParseError{Layout: "2006-01-02", Value: s}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
