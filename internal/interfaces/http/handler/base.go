// Package handler implements the HTTP handlers for order enrichment and
// settlement fee mapping.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appenrichment "github.com/marketledger/backend/internal/application/enrichment"
	"github.com/marketledger/backend/internal/application/settlement"
	"github.com/marketledger/backend/internal/domain/invoice"
	"github.com/marketledger/backend/internal/infrastructure/logger"
	"github.com/marketledger/backend/internal/interfaces/http/dto"
	"github.com/marketledger/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	requestID := getRequestID(c)
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, requestID))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// UnprocessableEntity sends a 422 unprocessable entity response
func (h *BaseHandler) UnprocessableEntity(c *gin.Context, message string) {
	h.Error(c, http.StatusUnprocessableEntity, dto.ErrCodeBusinessRule, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleError converts application and domain errors to HTTP responses.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, invoice.ErrNotFound):
		h.NotFound(c, "invoice not found")
	case errors.Is(err, settlement.ErrUnknownTable):
		h.NotFound(c, "no fee table for platform/variant")
	case errors.Is(err, settlement.ErrInvalidInvoiceID):
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, "invoice ID must be a UUID")
	case errors.Is(err, appenrichment.ErrNilOrders):
		h.BadRequest(c, "order batch is required")
	case errors.Is(err, invoice.ErrInvalidPlatform),
		errors.Is(err, invoice.ErrInvalidVariant):
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, err.Error())
	case errors.Is(err, invoice.ErrInvalidPeriod),
		errors.Is(err, invoice.ErrNoPostings):
		h.UnprocessableEntity(c, err.Error())
	default:
		// Catalog and database failures land here; details go to the
		// server log, not the client.
		logger.GetGinLogger(c).Error("request failed on upstream dependency", zap.Error(err))
		h.Error(c, http.StatusBadGateway, dto.ErrCodeUpstream, "upstream dependency failed")
	}
}
