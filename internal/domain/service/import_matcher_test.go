package service

import (
	"testing"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/domain/entity"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

func TestAccountIndex_Lookup(t *testing.T) {
	boutique := entity.NewAccount("Blue Door Boutique", "A-100")
	outfitters := entity.NewAccount("Summit Outfitters", "A-200")
	twinA := entity.NewAccount("Main Street Gifts", "")
	twinB := entity.NewAccount("main street gifts", "")
	idx := NewAccountIndex([]*entity.Account{boutique, outfitters, twinA, twinB})

	tests := []struct {
		name     string
		number   string
		account  string
		expected *entity.Account
	}{
		{name: "number wins over name", number: "A-200", account: "Blue Door Boutique", expected: outfitters},
		{name: "name fallback is case-insensitive", number: "X-999", account: "  blue door   BOUTIQUE", expected: boutique},
		{name: "ambiguous name does not match", account: "Main Street Gifts"},
		{name: "nothing matches", number: "Z-1", account: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := idx.Lookup(tt.number, tt.account)
			if tt.expected == nil {
				if ok {
					t.Errorf("expected no match, got %s", got.Name)
				}
				return
			}
			if !ok || got.ID != tt.expected.ID {
				t.Errorf("expected %s, got %v", tt.expected.Name, got)
			}
		})
	}
}

func TestMatchAndClassify(t *testing.T) {
	paidUp := entity.NewAccount("Paid Up", "P-1")
	owing := entity.NewAccount("Owing", "O-1")
	idx := NewAccountIndex([]*entity.Account{paidUp, owing})
	ledgers := map[uuid.UUID]*entity.AccountLedger{
		paidUp.ID: {AccountID: paidUp.ID, TotalCommissionDue: 10000, TotalPaid: 10000},
		owing.ID:  {AccountID: owing.ID, TotalCommissionDue: 10000},
	}

	tests := []struct {
		name     string
		row      entity.ImportRow
		expected valueobject.ImportClassification
	}{
		{name: "fully paid account is overpaid", row: entity.ImportRow{AccountNumber: "P-1", Amount: "0.01"}, expected: valueobject.ImportClassificationOverpaid},
		{name: "exact outstanding matches", row: entity.ImportRow{AccountNumber: "O-1", Amount: "100.00"}, expected: valueobject.ImportClassificationMatched},
		{name: "more than outstanding matches", row: entity.ImportRow{AccountNumber: "O-1", Amount: "$120"}, expected: valueobject.ImportClassificationMatched},
		{name: "less than outstanding is underpaid", row: entity.ImportRow{AccountName: "owing", Amount: "40"}, expected: valueobject.ImportClassificationUnderpaid},
		{name: "boundary one cent short", row: entity.ImportRow{AccountNumber: "O-1", Amount: "99.99"}, expected: valueobject.ImportClassificationUnderpaid},
		{name: "unknown account", row: entity.ImportRow{AccountNumber: "N-1", AccountName: "Nobody", Amount: "40"}, expected: valueobject.ImportClassificationNotFound},
		{name: "unparsable amount", row: entity.ImportRow{AccountNumber: "O-1", Amount: "forty"}, expected: valueobject.ImportClassificationInvalid},
		{name: "negative amount", row: entity.ImportRow{AccountNumber: "O-1", Amount: "-5"}, expected: valueobject.ImportClassificationInvalid},
		{name: "amount beyond range", row: entity.ImportRow{AccountNumber: "O-1", Amount: "100000000000000000"}, expected: valueobject.ImportClassificationInvalid},
		{name: "bad date", row: entity.ImportRow{AccountNumber: "O-1", Amount: "5", Date: "03/01/2024"}, expected: valueobject.ImportClassificationInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchAndClassify(tt.row, idx, ledgers)
			if got.Classification != tt.expected {
				t.Errorf("expected %s, got %s (%s)", tt.expected, got.Classification, got.Reason)
			}
			if tt.expected == valueobject.ImportClassificationNotFound && got.AccountID != nil {
				t.Error("expected not_found row to carry no account")
			}
		})
	}
}

func TestClassifyRows_RunningBalance(t *testing.T) {
	owing := entity.NewAccount("Owing", "O-1")
	idx := NewAccountIndex([]*entity.Account{owing})
	ledgers := map[uuid.UUID]*entity.AccountLedger{
		owing.ID: {AccountID: owing.ID, TotalCommissionDue: 10000},
	}

	rows := ClassifyRows([]entity.ImportRow{
		{AccountNumber: "O-1", Amount: "60", Date: "2024-03-01"},
		{AccountNumber: "O-1", Amount: "40", Date: "2024-03-02"},
		{AccountNumber: "O-1", Amount: "10", Date: "2024-03-03"},
		{AccountNumber: "X-1", Amount: "10"},
	}, idx, ledgers)

	expected := []valueobject.ImportClassification{
		valueobject.ImportClassificationUnderpaid,
		valueobject.ImportClassificationMatched,
		valueobject.ImportClassificationOverpaid,
		valueobject.ImportClassificationNotFound,
	}
	for i, want := range expected {
		if rows[i].Classification != want {
			t.Errorf("row %d: expected %s, got %s", i, want, rows[i].Classification)
		}
		if rows[i].Index != i {
			t.Errorf("row %d: expected index preserved, got %d", i, rows[i].Index)
		}
	}
	if rows[0].Date == nil || rows[0].Date.Format("2006-01-02") != "2024-03-01" {
		t.Errorf("expected parsed date, got %v", rows[0].Date)
	}
}
