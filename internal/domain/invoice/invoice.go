// Package invoice holds the settlement invoice aggregate: the persisted
// outcome of mapping one marketplace settlement report onto accounting
// postings.
package invoice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketledger/backend/internal/domain/accounting"
)

var (
	// ErrInvalidPlatform indicates an unknown marketplace platform
	ErrInvalidPlatform = errors.New("invoice: invalid platform")
	// ErrInvalidVariant indicates an unknown report variant
	ErrInvalidVariant = errors.New("invoice: invalid report variant")
	// ErrInvalidPeriod indicates the settlement period is empty or inverted
	ErrInvalidPeriod = errors.New("invoice: invalid settlement period")
	// ErrNoPostings indicates the invoice would carry no posting lines
	ErrNoPostings = errors.New("invoice: no postings")
	// ErrNotFound indicates the invoice does not exist
	ErrNotFound = errors.New("invoice: not found")
)

// Invoice is one settlement invoice: the postings of a single marketplace
// settlement report for one period.
type Invoice struct {
	// ID is the invoice identity
	ID uuid.UUID
	// Platform is the source marketplace
	Platform accounting.Platform
	// Variant is the report variant the postings came from
	Variant accounting.ReportVariant
	// PeriodStart and PeriodEnd bound the settlement period
	PeriodStart time.Time
	PeriodEnd   time.Time
	// Postings are the resolved accounting postings
	Postings []accounting.Posting
	// Total is the sum of all posted amounts
	Total decimal.Decimal
	// CreatedAt is when the invoice was created
	CreatedAt time.Time
}

// NewInvoice builds a settlement invoice from resolved postings.
func NewInvoice(platform accounting.Platform, variant accounting.ReportVariant, periodStart, periodEnd time.Time, postings []accounting.Posting) (*Invoice, error) {
	if !platform.IsValid() {
		return nil, ErrInvalidPlatform
	}
	if !variant.IsValid() {
		return nil, ErrInvalidVariant
	}
	if periodStart.IsZero() || periodEnd.IsZero() || periodEnd.Before(periodStart) {
		return nil, ErrInvalidPeriod
	}
	if len(postings) == 0 {
		return nil, ErrNoPostings
	}

	total := decimal.Zero
	for _, posting := range postings {
		total = total.Add(posting.Amount)
	}

	return &Invoice{
		ID:          uuid.New(),
		Platform:    platform,
		Variant:     variant,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Postings:    postings,
		Total:       total,
		CreatedAt:   time.Now(),
	}, nil
}

// Repository persists settlement invoices.
type Repository interface {
	// Save creates or updates an invoice
	Save(ctx context.Context, inv *Invoice) error

	// FindByID finds an invoice by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByPeriod lists invoices whose period overlaps the given range
	FindByPeriod(ctx context.Context, platform accounting.Platform, from, to time.Time) ([]*Invoice, error)
}
