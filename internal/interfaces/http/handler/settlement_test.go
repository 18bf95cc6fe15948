package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketledger/backend/internal/application/settlement"
	"github.com/marketledger/backend/internal/domain/accounting"
	"github.com/marketledger/backend/internal/domain/invoice"
	"github.com/marketledger/backend/internal/interfaces/http/dto"
)

// memoryInvoiceRepo is an in-memory invoice.Repository for handler tests.
type memoryInvoiceRepo struct {
	invoices map[uuid.UUID]*invoice.Invoice
}

func newMemoryInvoiceRepo() *memoryInvoiceRepo {
	return &memoryInvoiceRepo{invoices: make(map[uuid.UUID]*invoice.Invoice)}
}

func (r *memoryInvoiceRepo) Save(_ context.Context, inv *invoice.Invoice) error {
	r.invoices[inv.ID] = inv
	return nil
}

func (r *memoryInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, invoice.ErrNotFound
	}
	return inv, nil
}

func (r *memoryInvoiceRepo) FindByPeriod(_ context.Context, platform accounting.Platform, from, to time.Time) ([]*invoice.Invoice, error) {
	var result []*invoice.Invoice
	for _, inv := range r.invoices {
		if inv.Platform == platform && !inv.PeriodStart.After(to) && !inv.PeriodEnd.Before(from) {
			result = append(result, inv)
		}
	}
	return result, nil
}

func newSettlementRouter(t *testing.T) (*gin.Engine, *memoryInvoiceRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newMemoryInvoiceRepo()
	svc, err := settlement.NewService(repo, nil)
	require.NoError(t, err)

	engine := gin.New()
	NewSettlementHandler(svc).RegisterRoutes(engine.Group("/api/v1"))
	return engine, repo
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestSettlementHandler_MapFees(t *testing.T) {
	engine, _ := newSettlementRouter(t)

	rule := accounting.ShopeeSettlementFees[0]
	body := MapFeesRequest{
		Lines: []accounting.SettlementLine{
			{Description: rule.Description, Amount: decimal.NewFromInt(1000)},
			{Description: "Phí không tồn tại", Amount: decimal.NewFromInt(50)},
		},
	}

	w := postJSON(t, engine, "/api/v1/settlements/shopee/settlement/postings", body)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	postings := data["postings"].([]interface{})
	require.Len(t, postings, 1)
	posting := postings[0].(map[string]interface{})
	assert.Equal(t, rule.Field, posting["field"])
	assert.Equal(t, rule.DefaultAccount, posting["account"])

	unmatched := data["unmatched"].([]interface{})
	require.Len(t, unmatched, 1)
}

func TestSettlementHandler_MapFeesInvalidPlatform(t *testing.T) {
	engine, _ := newSettlementRouter(t)

	w := postJSON(t, engine, "/api/v1/settlements/lazada/settlement/postings", MapFeesRequest{
		Lines: []accounting.SettlementLine{{Description: "x"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)
}

func TestSettlementHandler_CreateAndGetInvoice(t *testing.T) {
	engine, repo := newSettlementRouter(t)

	rule := accounting.TikTokSettlementFees[0]
	body := CreateInvoiceRequest{
		PeriodStart: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
		Lines: []accounting.SettlementLine{
			{Description: rule.Description, Amount: decimal.NewFromInt(2500)},
		},
	}

	w := postJSON(t, engine, "/api/v1/settlements/tiktok/settlement/invoices", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	created := data["invoice"].(map[string]interface{})
	id := created["id"].(string)
	assert.Len(t, repo.invoices, 1)

	// Round-trip through GET
	w = httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/settlements/invoices/"+id, nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	fetched := resp.Data.(map[string]interface{})
	assert.Equal(t, id, fetched["id"])
	assert.Equal(t, "TIKTOK", fetched["platform"])
}

func TestSettlementHandler_CreateInvoiceNoPostings(t *testing.T) {
	engine, _ := newSettlementRouter(t)

	// No line matches any rule, so the invoice would carry no postings.
	body := CreateInvoiceRequest{
		PeriodStart: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
		Lines: []accounting.SettlementLine{
			{Description: "Phí không tồn tại", Amount: decimal.NewFromInt(10)},
		},
	}

	w := postJSON(t, engine, "/api/v1/settlements/shopee/settlement/invoices", body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSettlementHandler_GetInvoiceNotFound(t *testing.T) {
	engine, _ := newSettlementRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/settlements/invoices/"+uuid.NewString(), nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSettlementHandler_GetInvoiceBadID(t *testing.T) {
	engine, _ := newSettlementRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/settlements/invoices/not-a-uuid", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettlementHandler_ListFeeRules(t *testing.T) {
	engine, _ := newSettlementRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/fees/shopee/import", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	rules := resp.Data.([]interface{})
	assert.Len(t, rules, len(accounting.ShopeeImportFees))
}
