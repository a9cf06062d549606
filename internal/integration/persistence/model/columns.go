// Package model defines database models for persistence layer.
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/commission-tracker/backend/internal/domain/entity"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

const dateLayout = "2006-01-02"

// StringList is a text array column: text[] on postgres, array literal text elsewhere.
type StringList pq.StringArray

// Value implements the driver.Valuer interface.
func (l StringList) Value() (driver.Value, error) {
	return pq.StringArray(l).Value()
}

// Scan implements the sql.Scanner interface.
func (l *StringList) Scan(src interface{}) error {
	return (*pq.StringArray)(l).Scan(src)
}

// GormDataType marks the field as a plain column rather than a relation.
func (StringList) GormDataType() string {
	return "text[]"
}

// GormDBDataType picks the column type per dialect.
func (StringList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// PaymentRecord is the JSON shape of one payment inside a payments column.
type PaymentRecord struct {
	ID          uuid.UUID `json:"id"`
	AmountCents int64     `json:"amount_cents"`
	Date        string    `json:"date,omitempty"`
	Reference   string    `json:"reference,omitempty"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

// paymentsToJSON encodes a payment list for a payments column.
func paymentsToJSON(payments []entity.Payment) datatypes.JSON {
	records := make([]PaymentRecord, 0, len(payments))
	for _, p := range payments {
		record := PaymentRecord{
			ID:          p.ID,
			AmountCents: p.Amount.Cents(),
			Reference:   p.Reference,
			Source:      string(p.Source),
			CreatedAt:   p.CreatedAt,
		}
		if p.Date != nil {
			record.Date = p.Date.UTC().Format(dateLayout)
		}
		records = append(records, record)
	}

	data, _ := json.Marshal(records)
	return datatypes.JSON(data)
}

// paymentsFromJSON decodes a payments column. An empty column is an empty list.
func paymentsFromJSON(data datatypes.JSON) ([]entity.Payment, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	var records []PaymentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}

	payments := make([]entity.Payment, 0, len(records))
	for _, r := range records {
		var date *time.Time
		if r.Date != "" {
			d, err := time.Parse(dateLayout, r.Date)
			if err != nil {
				return nil, fmt.Errorf("decode payment date %q: %w", r.Date, err)
			}
			date = &d
		}
		payments = append(payments, entity.Payment{
			ID:        r.ID,
			Amount:    valueobject.MoneyFromCents(r.AmountCents),
			Date:      date,
			Reference: r.Reference,
			Source:    entity.PaymentSource(r.Source),
			CreatedAt: r.CreatedAt,
		})
	}
	return payments, nil
}
