package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/marketledger/backend/internal/application/settlement"
	"github.com/marketledger/backend/internal/domain/accounting"
	"github.com/marketledger/backend/internal/domain/invoice"
)

// SettlementHandler handles settlement fee-mapping API endpoints
type SettlementHandler struct {
	BaseHandler
	service *settlement.Service
}

// NewSettlementHandler creates a new SettlementHandler
func NewSettlementHandler(service *settlement.Service) *SettlementHandler {
	return &SettlementHandler{service: service}
}

// MapFeesRequest carries the raw fee lines of one settlement report.
type MapFeesRequest struct {
	Lines []accounting.SettlementLine `json:"lines" binding:"required"`
}

// MapFeesResponse carries the resolved postings and the fee lines no rule
// recognized.
type MapFeesResponse struct {
	Postings  []accounting.Posting        `json:"postings"`
	Unmatched []accounting.SettlementLine `json:"unmatched"`
}

// MapFees resolves a settlement report's fee lines into accounting postings.
// POST /api/v1/settlements/:platform/:variant/postings
func (h *SettlementHandler) MapFees(c *gin.Context) {
	platform, variant, ok := h.bindTable(c)
	if !ok {
		return
	}

	var req MapFeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid settlement payload: "+err.Error())
		return
	}

	result, err := h.service.MapFees(platform, variant, req.Lines)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, MapFeesResponse{
		Postings:  result.Postings,
		Unmatched: result.Unmatched,
	})
}

// CreateInvoiceRequest carries one settlement report with its period.
type CreateInvoiceRequest struct {
	PeriodStart time.Time                   `json:"period_start" binding:"required"`
	PeriodEnd   time.Time                   `json:"period_end" binding:"required"`
	Lines       []accounting.SettlementLine `json:"lines" binding:"required"`
}

// InvoiceResponse is the wire form of a settlement invoice.
type InvoiceResponse struct {
	ID          string               `json:"id"`
	Platform    string               `json:"platform"`
	Variant     string               `json:"variant"`
	PeriodStart time.Time            `json:"period_start"`
	PeriodEnd   time.Time            `json:"period_end"`
	Postings    []accounting.Posting `json:"postings"`
	Total       decimal.Decimal      `json:"total"`
	CreatedAt   time.Time            `json:"created_at"`
}

// CreateInvoiceResponse is the invoice plus the unmatched fee lines for
// operator review.
type CreateInvoiceResponse struct {
	Invoice   InvoiceResponse             `json:"invoice"`
	Unmatched []accounting.SettlementLine `json:"unmatched"`
}

// CreateInvoice maps a settlement report and persists the resulting invoice.
// POST /api/v1/settlements/:platform/:variant/invoices
func (h *SettlementHandler) CreateInvoice(c *gin.Context) {
	platform, variant, ok := h.bindTable(c)
	if !ok {
		return
	}

	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid settlement payload: "+err.Error())
		return
	}

	inv, result, err := h.service.CreateInvoice(c.Request.Context(), platform, variant, req.PeriodStart, req.PeriodEnd, req.Lines)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, CreateInvoiceResponse{
		Invoice:   toInvoiceResponse(inv),
		Unmatched: result.Unmatched,
	})
}

// GetInvoice loads one settlement invoice.
// GET /api/v1/settlements/invoices/:id
func (h *SettlementHandler) GetInvoice(c *gin.Context) {
	inv, err := h.service.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toInvoiceResponse(inv))
}

// ListInvoices lists a platform's invoices whose settlement period overlaps
// the from/to query range.
// GET /api/v1/settlements/:platform/invoices?from=...&to=...
func (h *SettlementHandler) ListInvoices(c *gin.Context) {
	platform := accounting.Platform(strings.ToUpper(c.Param("platform")))

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		h.BadRequest(c, "from must be an RFC 3339 timestamp")
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		h.BadRequest(c, "to must be an RFC 3339 timestamp")
		return
	}

	invoices, err := h.service.ListInvoices(c.Request.Context(), platform, from, to)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		responses = append(responses, toInvoiceResponse(inv))
	}
	h.Success(c, responses)
}

// ListFeeRules returns the fee mapping table for a platform/variant pair.
// GET /api/v1/fees/:platform/:variant
func (h *SettlementHandler) ListFeeRules(c *gin.Context) {
	platform, variant, ok := h.bindTable(c)
	if !ok {
		return
	}

	rules, found := accounting.TableFor(platform, variant)
	if !found {
		h.NotFound(c, "no fee table for platform/variant")
		return
	}
	h.Success(c, rules)
}

// toInvoiceResponse converts the invoice aggregate to its wire form.
func toInvoiceResponse(inv *invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          inv.ID.String(),
		Platform:    string(inv.Platform),
		Variant:     string(inv.Variant),
		PeriodStart: inv.PeriodStart,
		PeriodEnd:   inv.PeriodEnd,
		Postings:    inv.Postings,
		Total:       inv.Total,
		CreatedAt:   inv.CreatedAt,
	}
}

// bindTable parses and validates the platform/variant path parameters.
func (h *SettlementHandler) bindTable(c *gin.Context) (accounting.Platform, accounting.ReportVariant, bool) {
	platform := accounting.Platform(strings.ToUpper(c.Param("platform")))
	if !platform.IsValid() {
		h.HandleError(c, invoice.ErrInvalidPlatform)
		return "", "", false
	}
	variant := accounting.ReportVariant(strings.ToUpper(c.Param("variant")))
	if !variant.IsValid() {
		h.HandleError(c, invoice.ErrInvalidVariant)
		return "", "", false
	}
	return platform, variant, true
}

// RegisterRoutes registers the settlement routes
func (h *SettlementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	settlements := rg.Group("/settlements")
	{
		settlements.GET("/invoices/:id", h.GetInvoice)
		settlements.POST("/:platform/:variant/postings", h.MapFees)
		settlements.POST("/:platform/:variant/invoices", h.CreateInvoice)
		settlements.GET("/:platform/invoices", h.ListInvoices)
	}

	fees := rg.Group("/fees")
	{
		fees.GET("/:platform/:variant", h.ListFeeRules)
	}
}
