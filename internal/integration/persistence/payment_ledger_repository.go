// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/domain/entity"
	"github.com/commission-tracker/backend/internal/integration/persistence/model"
)

// paymentLedgerRepository implements the adapter.PaymentLedgerRepository interface.
type paymentLedgerRepository struct {
	db *gorm.DB
}

// NewPaymentLedgerRepository creates a new payment ledger repository instance.
func NewPaymentLedgerRepository(db *gorm.DB) adapter.PaymentLedgerRepository {
	return &paymentLedgerRepository{
		db: db,
	}
}

// FindByKey retrieves the payment ledger of an account group, or nil when there is none.
func (r *paymentLedgerRepository) FindByKey(ctx context.Context, key entity.GroupKey) (*entity.AccountPaymentLedger, error) {
	var ledgerModel model.PaymentLedgerModel
	result := r.db.WithContext(ctx).
		Where("account_id = ? AND brand_id = ? AND tracker_id = ?", key.AccountID, key.BrandID, key.TrackerID).
		First(&ledgerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return ledgerModel.ToEntity()
}

// FindByBrand retrieves every payment ledger of a brand.
func (r *paymentLedgerRepository) FindByBrand(ctx context.Context, brandID uuid.UUID) ([]*entity.AccountPaymentLedger, error) {
	var ledgerModels []model.PaymentLedgerModel
	result := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("created_at ASC").
		Find(&ledgerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	ledgers := make([]*entity.AccountPaymentLedger, 0, len(ledgerModels))
	for i := range ledgerModels {
		ledger, err := ledgerModels[i].ToEntity()
		if err != nil {
			return nil, err
		}
		ledgers = append(ledgers, ledger)
	}
	return ledgers, nil
}

// Upsert writes the ledger keyed by account, brand and tracker.
func (r *paymentLedgerRepository) Upsert(ctx context.Context, ledger *entity.AccountPaymentLedger) error {
	ledgerModel := model.PaymentLedgerFromEntity(ledger)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}, {Name: "brand_id"}, {Name: "tracker_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payments", "updated_at"}),
		}).
		Create(ledgerModel).Error
}
