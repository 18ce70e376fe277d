// Package http provides HTTP handlers for the sealed record store.
// Records arrive already sealed by the client; handlers validate their shape
// and persist them verbatim.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/sealbox/internal/httputil"
	"github.com/allisson/sealbox/internal/records/http/dto"
	recordsUseCase "github.com/allisson/sealbox/internal/records/usecase"
	customValidation "github.com/allisson/sealbox/internal/validation"
)

// RecordHandler handles HTTP requests for record store operations.
type RecordHandler struct {
	recordUseCase recordsUseCase.RecordUseCase
	logger        *slog.Logger
}

// NewRecordHandler creates a new record handler with required dependencies.
func NewRecordHandler(recordUseCase recordsUseCase.RecordUseCase, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{
		recordUseCase: recordUseCase,
		logger:        logger,
	}
}

// CreateHandler stores a new sealed record.
// POST /v1/records - Returns 201 Created with the stored record.
func (h *RecordHandler) CreateHandler(c *gin.Context) {
	var req dto.EnvelopeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	record, err := h.recordUseCase.Create(c.Request.Context(), req.ToEncodedRecord())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header("Location", "/v1/records/"+record.ID.String())
	c.JSON(http.StatusCreated, dto.MapRecordToResponse(record))
}

// GetHandler retrieves a record by ID.
// GET /v1/records/:id - Returns 200 OK with the stored envelope.
func (h *RecordHandler) GetHandler(c *gin.Context) {
	recordID, ok := h.parseRecordID(c)
	if !ok {
		return
	}

	record, err := h.recordUseCase.Get(c.Request.Context(), recordID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRecordToResponse(record))
}

// ListHandler retrieves records with pagination support.
// GET /v1/records?offset=0&limit=50 - Returns 200 OK with a page of records.
func (h *RecordHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	records, err := h.recordUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRecordsToListResponse(records))
}

// RewrapHandler replaces the wrapped key of a stored record.
// PUT /v1/records/:id - Returns 200 OK, 409 Conflict when the key version did
// not increase or another rotation got there first, 422 when the payload changed.
func (h *RecordHandler) RewrapHandler(c *gin.Context) {
	recordID, ok := h.parseRecordID(c)
	if !ok {
		return
	}

	var req dto.EnvelopeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	record, err := h.recordUseCase.Rewrap(c.Request.Context(), recordID, req.ToEncodedRecord())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRecordToResponse(record))
}

// DeleteHandler removes a record.
// DELETE /v1/records/:id - Returns 204 No Content.
func (h *RecordHandler) DeleteHandler(c *gin.Context) {
	recordID, ok := h.parseRecordID(c)
	if !ok {
		return
	}

	if err := h.recordUseCase.Delete(c.Request.Context(), recordID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

func (h *RecordHandler) parseRecordID(c *gin.Context) (uuid.UUID, bool) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("invalid record id: must be a valid UUID"),
			h.logger,
		)
		return uuid.Nil, false
	}
	return recordID, true
}
