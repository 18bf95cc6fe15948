package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/marketledger/backend/internal/domain/accounting"
	"github.com/marketledger/backend/internal/domain/invoice"
	"github.com/marketledger/backend/internal/infrastructure/persistence/models"
)

// GormInvoiceRepository implements invoice.Repository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// Save creates or updates an invoice with its posting lines
func (r *GormInvoiceRepository) Save(ctx context.Context, inv *invoice.Invoice) error {
	var model models.SettlementInvoice
	model.FromDomainInvoice(inv)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Replace posting lines wholesale; the aggregate owns them.
		if err := tx.Where("invoice_id = ?", inv.ID).
			Delete(&models.SettlementPosting{}).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&model).Error
	})
}

// FindByID finds an invoice by its ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	var model models.SettlementInvoice
	if err := r.db.WithContext(ctx).
		Preload("Postings").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invoice.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPeriod lists a platform's invoices whose period overlaps [from, to]
func (r *GormInvoiceRepository) FindByPeriod(ctx context.Context, platform accounting.Platform, from, to time.Time) ([]*invoice.Invoice, error) {
	var rows []models.SettlementInvoice
	if err := r.db.WithContext(ctx).
		Preload("Postings").
		Where("platform = ? AND period_start <= ? AND period_end >= ?", string(platform), to, from).
		Order("period_start ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	invoices := make([]*invoice.Invoice, 0, len(rows))
	for i := range rows {
		invoices = append(invoices, rows[i].ToDomain())
	}
	return invoices, nil
}

// Ensure GormInvoiceRepository implements invoice.Repository
var _ invoice.Repository = (*GormInvoiceRepository)(nil)
