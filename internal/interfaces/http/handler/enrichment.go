package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	appenrichment "github.com/marketledger/backend/internal/application/enrichment"
	"github.com/marketledger/backend/internal/domain/enrichment"
)

// EnrichmentHandler handles order-enrichment API endpoints
type EnrichmentHandler struct {
	BaseHandler
	service           *appenrichment.Service
	warehousePrefixes map[string]string
}

// NewEnrichmentHandler creates a new EnrichmentHandler
func NewEnrichmentHandler(service *appenrichment.Service, warehousePrefixes map[string]string) *EnrichmentHandler {
	return &EnrichmentHandler{
		service:           service,
		warehousePrefixes: warehousePrefixes,
	}
}

// EnrichRequest carries one batch of marketplace orders to enrich.
type EnrichRequest struct {
	Orders []*enrichment.Order `json:"orders" binding:"required"`
}

// EnrichedSale is one enriched order line plus the derived accounting
// attributes.
type EnrichedSale struct {
	*enrichment.SaleItem
	VCType        string          `json:"vc_type"`
	GiaBan        decimal.Decimal `json:"gia_ban"`
	VoucherLabels string          `json:"voucher_labels"`
	WarehouseCode string          `json:"warehouse_code"`
}

// EnrichedOrder is one enriched order with its derived sale lines.
type EnrichedOrder struct {
	*enrichment.Order
	Sales []EnrichedSale `json:"sales"`
}

// EnrichResponse is the enrichment batch result.
type EnrichResponse struct {
	Orders []EnrichedOrder `json:"orders"`
}

// EnrichOrders enriches a batch of marketplace orders with catalog reference
// data and derives the per-line accounting attributes.
// POST /api/v1/orders/enrich
func (h *EnrichmentHandler) EnrichOrders(c *gin.Context) {
	var req EnrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid order batch: "+err.Error())
		return
	}

	enriched, err := h.service.EnrichOrders(c.Request.Context(), req.Orders)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	response := EnrichResponse{Orders: make([]EnrichedOrder, 0, len(enriched))}
	for _, order := range enriched {
		out := EnrichedOrder{
			Order: order,
			Sales: make([]EnrichedSale, 0, len(order.Sales)),
		}
		for _, sale := range order.Sales {
			out.Sales = append(out.Sales, EnrichedSale{
				SaleItem:      sale,
				VCType:        saleVCType(sale),
				GiaBan:        enrichment.CalculateGiaBan(sale.Revenue, sale.Quantity),
				VoucherLabels: enrichment.CalculateVoucherLabels(sale),
				WarehouseCode: enrichment.WarehouseCode(h.warehousePrefixes, order.OrderType, sale.BranchCode),
			})
		}
		response.Orders = append(response.Orders, out)
	}

	h.Success(c, response)
}

// saleVCType classifies a sale line from its attached product, "" when no
// product is attached.
func saleVCType(sale *enrichment.SaleItem) string {
	if sale.Product == nil {
		return ""
	}
	var productType string
	if sale.Product.ProductType != nil {
		productType = *sale.Product.ProductType
	}
	return enrichment.CalculateVCType(productType, sale.Product.TrackInventory)
}

// RegisterRoutes registers the enrichment routes
func (h *EnrichmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("/enrich", h.EnrichOrders)
	}
}
