package handler

import (
	"errors"
	"io"
	"strconv"

	"gold-settlement/internal/adapter/http/dto"
	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"
	"gold-settlement/pkg/apperror"
	"gold-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ConversionHandler handles MPGW/FPGW conversion endpoints.
type ConversionHandler struct {
	conversions ports.ConversionService
}

// NewConversionHandler creates a new ConversionHandler.
func NewConversionHandler(conversions ports.ConversionService) *ConversionHandler {
	return &ConversionHandler{conversions: conversions}
}

// Request handles POST /api/v1/admin/conversions.
func (h *ConversionHandler) Request(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}

	var req dto.ConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	conv, err := h.conversions.RequestConversion(c.Request.Context(), ports.ConversionRequest{
		UserID:    uuid.MustParse(req.UserID),
		Direction: domain.ConversionDirection(req.Direction),
		Grams:     req.Grams,
		ActorID:   actorID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, conv)
}

// List handles GET /api/v1/admin/conversions.
func (h *ConversionHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	var status *domain.ConversionStatus
	if s := c.Query("status"); s != "" {
		st := domain.ConversionStatus(s)
		status = &st
	}

	convs, err := h.conversions.ListConversions(c.Request.Context(), status, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	if convs == nil {
		convs = []domain.WalletConversion{}
	}
	response.OK(c, convs)
}

// Approve handles POST /api/v1/admin/conversions/:id/approve.
func (h *ConversionHandler) Approve(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}
	convID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ApproveConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	conv, err := h.conversions.ApproveConversion(c.Request.Context(), convID, actorID, req.OverridePricePerGram)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, conv)
}

// Reject handles POST /api/v1/admin/conversions/:id/reject.
func (h *ConversionHandler) Reject(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}
	convID, ok := pathID(c)
	if !ok {
		return
	}
	reason, ok := bindReason(c)
	if !ok {
		return
	}

	conv, err := h.conversions.RejectConversion(c.Request.Context(), convID, actorID, reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, conv)
}
