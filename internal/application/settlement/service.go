// Package settlement converts raw marketplace settlement payloads into
// accounting postings and settlement invoices.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/marketledger/backend/internal/domain/accounting"
	"github.com/marketledger/backend/internal/domain/invoice"
)

var (
	// ErrUnknownTable indicates no fee table exists for the platform/variant
	ErrUnknownTable = errors.New("settlement: no fee table for platform/variant")
)

// DefaultLedgerColumn is the ledger column postings route to when the
// matched rule declares no override.
const DefaultLedgerColumn = "chi_phi"

// Result is the outcome of mapping one settlement payload.
type Result struct {
	// Postings are the resolved accounting postings
	Postings []accounting.Posting
	// Unmatched are the fee lines no rule recognized
	Unmatched []accounting.SettlementLine
}

// Service maps settlement payloads and stores the resulting invoices.
type Service struct {
	invoices invoice.Repository
	logger   *zap.Logger
}

// NewService creates a settlement service. The fee mapping tables are
// validated here once; a duplicate rule is a configuration bug and aborts
// startup.
func NewService(invoices invoice.Repository, logger *zap.Logger) (*Service, error) {
	if err := accounting.ValidateAllTables(); err != nil {
		return nil, fmt.Errorf("settlement: fee table validation failed: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		invoices: invoices,
		logger:   logger.Named("settlement"),
	}, nil
}

// MapFees resolves a settlement payload's fee lines against the table for
// the given platform and report variant.
func (s *Service) MapFees(platform accounting.Platform, variant accounting.ReportVariant, lines []accounting.SettlementLine) (*Result, error) {
	rules, ok := accounting.TableFor(platform, variant)
	if !ok {
		return nil, ErrUnknownTable
	}

	postings, unmatched := accounting.MapSettlement(lines, rules, DefaultLedgerColumn)

	if len(unmatched) > 0 {
		labels := make([]string, 0, len(unmatched))
		for _, line := range unmatched {
			labels = append(labels, line.Description)
		}
		s.logger.Warn("unmatched settlement fee lines",
			zap.String("platform", string(platform)),
			zap.String("variant", string(variant)),
			zap.Strings("descriptions", labels),
		)
	}

	return &Result{Postings: postings, Unmatched: unmatched}, nil
}

// CreateInvoice maps a settlement payload and persists the resulting invoice.
func (s *Service) CreateInvoice(ctx context.Context, platform accounting.Platform, variant accounting.ReportVariant, periodStart, periodEnd time.Time, lines []accounting.SettlementLine) (*invoice.Invoice, *Result, error) {
	result, err := s.MapFees(platform, variant, lines)
	if err != nil {
		return nil, nil, err
	}

	inv, err := invoice.NewInvoice(platform, variant, periodStart, periodEnd, result.Postings)
	if err != nil {
		return nil, nil, err
	}

	if err := s.invoices.Save(ctx, inv); err != nil {
		return nil, nil, err
	}

	s.logger.Info("settlement invoice created",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("platform", string(platform)),
		zap.String("variant", string(variant)),
		zap.Int("postings", len(inv.Postings)),
		zap.Int("unmatched", len(result.Unmatched)),
		zap.String("total", inv.Total.String()),
	)

	return inv, result, nil
}

// GetInvoice loads one settlement invoice.
func (s *Service) GetInvoice(ctx context.Context, id string) (*invoice.Invoice, error) {
	uid, err := parseInvoiceID(id)
	if err != nil {
		return nil, err
	}
	return s.invoices.FindByID(ctx, uid)
}

// ListInvoices lists the invoices of a platform whose settlement period
// overlaps the given range.
func (s *Service) ListInvoices(ctx context.Context, platform accounting.Platform, from, to time.Time) ([]*invoice.Invoice, error) {
	if !platform.IsValid() {
		return nil, invoice.ErrInvalidPlatform
	}
	return s.invoices.FindByPeriod(ctx, platform, from, to)
}
