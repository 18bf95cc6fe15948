// Package models defines the GORM persistence models and their conversions
// to and from the domain aggregates.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketledger/backend/internal/domain/accounting"
	"github.com/marketledger/backend/internal/domain/invoice"
)

// SettlementInvoice maps the invoice aggregate to the settlement_invoices table.
type SettlementInvoice struct {
	ID          uuid.UUID           `gorm:"type:uuid;primary_key"`
	Platform    string              `gorm:"type:varchar(16);not null;index"`
	Variant     string              `gorm:"type:varchar(16);not null"`
	PeriodStart time.Time           `gorm:"not null;index"`
	PeriodEnd   time.Time           `gorm:"not null"`
	Total       decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	CreatedAt   time.Time           `gorm:"not null"`
	Postings    []SettlementPosting `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the default table name
func (SettlementInvoice) TableName() string {
	return "settlement_invoices"
}

// SettlementPosting maps one resolved posting line of an invoice.
type SettlementPosting struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Field     string          `gorm:"type:varchar(64);not null"`
	Account   string          `gorm:"type:varchar(16);not null"`
	Column    string          `gorm:"column:ledger_column;type:varchar(32);not null"`
	Row       int             `gorm:"column:report_row;not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName overrides the default table name
func (SettlementPosting) TableName() string {
	return "settlement_postings"
}

// FromDomainInvoice populates the model from the domain aggregate.
func (m *SettlementInvoice) FromDomainInvoice(inv *invoice.Invoice) {
	m.ID = inv.ID
	m.Platform = string(inv.Platform)
	m.Variant = string(inv.Variant)
	m.PeriodStart = inv.PeriodStart
	m.PeriodEnd = inv.PeriodEnd
	m.Total = inv.Total
	m.CreatedAt = inv.CreatedAt

	m.Postings = make([]SettlementPosting, 0, len(inv.Postings))
	for _, posting := range inv.Postings {
		m.Postings = append(m.Postings, SettlementPosting{
			InvoiceID: inv.ID,
			Field:     posting.Field,
			Account:   posting.Account,
			Column:    posting.Column,
			Row:       posting.Row,
			Amount:    posting.Amount,
		})
	}
}

// ToDomain converts the model back to the domain aggregate.
func (m *SettlementInvoice) ToDomain() *invoice.Invoice {
	postings := make([]accounting.Posting, 0, len(m.Postings))
	for _, posting := range m.Postings {
		postings = append(postings, accounting.Posting{
			Field:   posting.Field,
			Account: posting.Account,
			Column:  posting.Column,
			Row:     posting.Row,
			Amount:  posting.Amount,
		})
	}

	return &invoice.Invoice{
		ID:          m.ID,
		Platform:    accounting.Platform(m.Platform),
		Variant:     accounting.ReportVariant(m.Variant),
		PeriodStart: m.PeriodStart,
		PeriodEnd:   m.PeriodEnd,
		Postings:    postings,
		Total:       m.Total,
		CreatedAt:   m.CreatedAt,
	}
}
