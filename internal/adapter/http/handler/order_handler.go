package handler

import (
	"errors"
	"io"
	"math"
	"strconv"

	"gold-settlement/internal/adapter/http/dto"
	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"
	"gold-settlement/pkg/apperror"
	"gold-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles purchase order and settlement endpoints.
type OrderHandler struct {
	orders     ports.OrderService
	settlement ports.SettlementService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders ports.OrderService, settlement ports.SettlementService) *OrderHandler {
	return &OrderHandler{orders: orders, settlement: settlement}
}

// Create handles POST /api/v1/admin/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	barSize, err := domain.ParseBarSize(req.BarSize)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), ports.CreateOrderRequest{
		UserID:                 uuid.MustParse(req.UserID),
		BarSize:                barSize,
		BarCount:               req.BarCount,
		TotalGrams:             req.TotalGrams,
		PreferredVaultLocation: req.PreferredVaultLocation,
		CallbackURL:            req.CallbackURL,
		ActorID:                actorID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, order)
}

// List handles GET /api/v1/admin/orders.
func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	params := ports.OrderListParams{Page: page, PageSize: pageSize}
	if s := c.Query("status"); s != "" {
		status := domain.OrderStatus(s)
		params.Status = &status
	}
	if u := c.Query("user_id"); u != "" {
		userID, err := uuid.Parse(u)
		if err != nil {
			response.Error(c, apperror.Validation("user_id must be a UUID"))
			return
		}
		params.UserID = &userID
	}

	orders, total, err := h.orders.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	if orders == nil {
		orders = []domain.PurchaseOrder{}
	}

	response.OK(c, dto.OrderListResponse{
		Items:      orders,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	})
}

// Get handles GET /api/v1/admin/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		return
	}
	detail, err := h.orders.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.OrderDetailResponse{
		Order:        detail.Order,
		Bars:         detail.Bars,
		Certificates: detail.Certificates,
		Holdings:     detail.Holdings,
	})
}

// Approve handles POST /api/v1/admin/orders/:id/approve.
func (h *OrderHandler) Approve(c *gin.Context) {
	actorID, orderID, ok := h.target(c)
	if !ok {
		return
	}
	order, err := h.orders.ApproveOrder(c.Request.Context(), orderID, actorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, order)
}

// Reject handles POST /api/v1/admin/orders/:id/reject.
func (h *OrderHandler) Reject(c *gin.Context) {
	actorID, orderID, ok := h.target(c)
	if !ok {
		return
	}
	reason, ok := bindReason(c)
	if !ok {
		return
	}
	order, err := h.orders.RejectOrder(c.Request.Context(), orderID, actorID, reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, order)
}

// Cancel handles POST /api/v1/admin/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	actorID, orderID, ok := h.target(c)
	if !ok {
		return
	}
	reason, ok := bindReason(c)
	if !ok {
		return
	}
	order, err := h.orders.CancelOrder(c.Request.Context(), orderID, actorID, reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, order)
}

// ApproveSettlement handles POST /api/v1/admin/orders/:id/settlement/approve.
func (h *OrderHandler) ApproveSettlement(c *gin.Context) {
	actorID, orderID, ok := h.target(c)
	if !ok {
		return
	}
	result, err := h.settlement.ApproveAndCredit(c.Request.Context(), orderID, actorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.CreditResponse{
		OrderID:        result.OrderID.String(),
		WalletID:       result.WalletID.String(),
		TransactionID:  result.TransactionID.String(),
		CreditedGrams:  result.CreditedGrams,
		AvailableGrams: result.AvailableGrams,
		Certificates:   result.Certificates,
	})
}

// RejectSettlement handles POST /api/v1/admin/orders/:id/settlement/reject.
func (h *OrderHandler) RejectSettlement(c *gin.Context) {
	actorID, orderID, ok := h.target(c)
	if !ok {
		return
	}
	reason, ok := bindReason(c)
	if !ok {
		return
	}
	order, err := h.settlement.RejectSettlement(c.Request.Context(), orderID, actorID, reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, order)
}

func (h *OrderHandler) target(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	actorID, ok := actor(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	orderID, ok := pathID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return actorID, orderID, true
}

// bindReason reads an optional reason body. An empty body is allowed.
func bindReason(c *gin.Context) (string, bool) {
	var req dto.ReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, apperror.Validation(err.Error()))
		return "", false
	}
	dto.SanitizeStruct(&req)
	return req.Reason, true
}
