// Package enrichment orchestrates one enrichment batch: code extraction,
// reference fetching through the catalog port, cache assembly and the domain
// enrichment pass.
package enrichment

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/marketledger/backend/internal/domain/enrichment"
)

// ErrNilOrders indicates the caller handed a nil order batch.
var ErrNilOrders = errors.New("enrichment: nil order batch")

// ReferenceFetcher is the port to the external catalog service. It returns a
// key→record association for each requested code; codes the catalog does not
// know are simply absent from the result, never an error.
type ReferenceFetcher interface {
	// FetchProducts resolves item codes to canonical product records
	FetchProducts(ctx context.Context, codes []string) (map[string]*enrichment.OrderProduct, error)

	// FetchPromotions resolves normalized promotion codes to promotion records
	FetchPromotions(ctx context.Context, codes []string) (map[string]*enrichment.OrderPromotion, error)

	// FetchDepartments resolves branch codes to department records
	FetchDepartments(ctx context.Context, codes []string) (map[string]*enrichment.OrderDepartment, error)
}

// Service runs enrichment batches.
type Service struct {
	fetcher ReferenceFetcher
	logger  *zap.Logger
}

// NewService creates an enrichment service.
func NewService(fetcher ReferenceFetcher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		fetcher: fetcher,
		logger:  logger.Named("enrichment"),
	}
}

// EnrichOrders runs one batch: extract the distinct item, promotion and
// branch codes, fetch the corresponding reference records, and join the
// orders against the resulting caches. The caches live only for this batch,
// so concurrent batches never share mutable state.
func (s *Service) EnrichOrders(ctx context.Context, orders []*enrichment.Order) ([]*enrichment.Order, error) {
	if orders == nil {
		return nil, ErrNilOrders
	}

	itemCodes := enrichment.CollectItemCodes(orders)
	promCodes := enrichment.CollectPromotionCodes(orders)
	branchCodes := enrichment.CollectBranchCodes(orders)

	products, err := s.fetchProducts(ctx, itemCodes)
	if err != nil {
		return nil, err
	}
	promotions, err := s.fetchPromotions(ctx, promCodes)
	if err != nil {
		return nil, err
	}
	departments, err := s.fetchDepartments(ctx, branchCodes)
	if err != nil {
		return nil, err
	}

	enriched := enrichment.Enrich(orders, products, promotions, departments)

	s.logger.Info("enriched order batch",
		zap.Int("orders", len(enriched)),
		zap.Int("item_codes", len(itemCodes)),
		zap.Int("products", len(products)),
		zap.Int("promotion_codes", len(promCodes)),
		zap.Int("promotions", len(promotions)),
		zap.Int("branch_codes", len(branchCodes)),
		zap.Int("departments", len(departments)),
	)

	return enriched, nil
}

func (s *Service) fetchProducts(ctx context.Context, codes []string) (enrichment.ProductCache, error) {
	if len(codes) == 0 {
		return enrichment.ProductCache{}, nil
	}
	records, err := s.fetcher.FetchProducts(ctx, codes)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = map[string]*enrichment.OrderProduct{}
	}
	return enrichment.ProductCache(records), nil
}

func (s *Service) fetchPromotions(ctx context.Context, codes []string) (enrichment.PromotionCache, error) {
	if len(codes) == 0 {
		return enrichment.PromotionCache{}, nil
	}
	records, err := s.fetcher.FetchPromotions(ctx, codes)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = map[string]*enrichment.OrderPromotion{}
	}
	return enrichment.PromotionCache(records), nil
}

func (s *Service) fetchDepartments(ctx context.Context, codes []string) (enrichment.DepartmentCache, error) {
	if len(codes) == 0 {
		return enrichment.DepartmentCache{}, nil
	}
	records, err := s.fetcher.FetchDepartments(ctx, codes)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = map[string]*enrichment.OrderDepartment{}
	}
	return enrichment.DepartmentCache(records), nil
}
