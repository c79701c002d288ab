package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"
	"gold-settlement/internal/core/ports/mocks"
	"gold-settlement/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const adminToken = "admin-token"

type routerMocks struct {
	gateway     *mocks.MockWebhookGateway
	orders      *mocks.MockOrderService
	settlement  *mocks.MockSettlementService
	conversions *mocks.MockConversionService
	cash        *mocks.MockCashLedgerService
	recon       *mocks.MockReconciliationService
	webhooks    *mocks.MockWebhookAuditService
	actor       uuid.UUID
	router      *gin.Engine
}

func setupRouter(t *testing.T) *routerMocks {
	t.Helper()
	return setupRouterWith(t, nil)
}

func setupRouterWith(t *testing.T, mutate func(*RouterDeps)) *routerMocks {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &routerMocks{
		gateway:     mocks.NewMockWebhookGateway(ctrl),
		orders:      mocks.NewMockOrderService(ctrl),
		settlement:  mocks.NewMockSettlementService(ctrl),
		conversions: mocks.NewMockConversionService(ctrl),
		cash:        mocks.NewMockCashLedgerService(ctrl),
		recon:       mocks.NewMockReconciliationService(ctrl),
		webhooks:    mocks.NewMockWebhookAuditService(ctrl),
		actor:       uuid.New(),
	}
	tokens := mocks.NewMockTokenService(ctrl)
	tokens.EXPECT().Validate(adminToken).Return(&ports.TokenClaims{ActorID: m.actor, Role: "admin"}, nil).AnyTimes()
	tokens.EXPECT().Validate(gomock.Not(adminToken)).Return(nil, errors.New("invalid token")).AnyTimes()
	audit := mocks.NewMockAuditService(ctrl)
	audit.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()

	deps := RouterDeps{
		Gateway:        m.gateway,
		Orders:         m.orders,
		Settlement:     m.settlement,
		Conversions:    m.conversions,
		CashLedger:     m.cash,
		Reconciliation: m.recon,
		WebhookAudit:   m.webhooks,
		TokenSvc:       tokens,
		AuditSvc:       audit,
		Logger:         zerolog.Nop(),
	}
	if mutate != nil {
		mutate(&deps)
	}
	m.router = SetupRouter(deps)
	return m
}

func (m *routerMocks) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	m.router.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ErrorCode
}

// --- Webhook Handler Tests ---

func webhookRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhooks", bytes.NewBufferString(body))
	req.Header.Set(HeaderSignature, "abc123")
	req.Header.Set(HeaderTimestamp, "1760000000")
	return req
}

func TestWebhook_AppliedAndMarked(t *testing.T) {
	m := setupRouter(t)
	body := `{"event":"order.confirmed","orderId":"GSC-1"}`
	ev := domain.InboundEvent{Event: domain.EventOrderConfirmed, OrderID: "GSC-1"}

	m.gateway.EXPECT().Admit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.AdmitRequest) (*ports.AdmittedPayload, error) {
			assert.Equal(t, body, string(req.RawBody))
			assert.Equal(t, "abc123", req.Signature)
			assert.Equal(t, "1760000000", req.Timestamp)
			return &ports.AdmittedPayload{Event: ev, IdempotencyKey: "GSC-1:order.confirmed"}, nil
		})
	gomock.InOrder(
		m.orders.EXPECT().HandleEvent(gomock.Any(), &ev).Return(&ports.EventOutcome{OrderID: uuid.New(), Status: domain.OrderStatusConfirmed, Applied: true}, nil),
		m.gateway.EXPECT().MarkProcessed(gomock.Any(), "GSC-1:order.confirmed").Return(nil),
	)

	w := httptest.NewRecorder()
	m.router.ServeHTTP(w, webhookRequest(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received":true}`, w.Body.String())
}

func TestWebhook_Rejected(t *testing.T) {
	m := setupRouter(t)
	m.gateway.EXPECT().Admit(gomock.Any(), gomock.Any()).Return(nil,
		&domain.WebhookRejection{HTTPStatus: http.StatusTooManyRequests, Reason: "rate_limit_exceeded", RetryAfter: 30 * time.Second})

	w := httptest.NewRecorder()
	m.router.ServeHTTP(w, webhookRequest(`{}`))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
}

func TestWebhook_DuplicateSkipsLedger(t *testing.T) {
	m := setupRouter(t)
	m.gateway.EXPECT().Admit(gomock.Any(), gomock.Any()).Return(&ports.AdmittedPayload{Duplicate: true}, nil)

	w := httptest.NewRecorder()
	m.router.ServeHTTP(w, webhookRequest(`{}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received":true,"duplicate":true}`, w.Body.String())
}

func TestWebhook_LedgerFailureNotMarked(t *testing.T) {
	m := setupRouter(t)
	m.gateway.EXPECT().Admit(gomock.Any(), gomock.Any()).Return(&ports.AdmittedPayload{IdempotencyKey: "k"}, nil)
	m.orders.EXPECT().HandleEvent(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrDatabaseError(errors.New("conn reset")))
	// MarkProcessed must not be called

	w := httptest.NewRecorder()
	m.router.ServeHTTP(w, webhookRequest(`{}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// expectSourceIP makes the gateway reject with 403 and checks the address it saw.
func (m *routerMocks) expectSourceIP(t *testing.T, want string) {
	m.gateway.EXPECT().Admit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.AdmitRequest) (*ports.AdmittedPayload, error) {
			assert.Equal(t, want, req.SourceIP)
			return nil, &domain.WebhookRejection{HTTPStatus: http.StatusForbidden, Reason: "ip_not_whitelisted"}
		})
}

func TestWebhook_ForwardingHeadersIgnoredByDefault(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"x-forwarded-for", "X-Forwarded-For"},
		{"x-real-ip", "X-Real-IP"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupRouter(t)
			m.expectSourceIP(t, "192.0.2.1")

			req := webhookRequest(`{}`)
			req.RemoteAddr = "192.0.2.1:40000"
			req.Header.Set(tt.header, "10.0.0.1")
			w := httptest.NewRecorder()
			m.router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}
}

func TestWebhook_ForwardedForFromTrustedProxy(t *testing.T) {
	m := setupRouterWith(t, func(d *RouterDeps) { d.TrustedProxies = []string{"10.10.0.0/16"} })

	m.expectSourceIP(t, "203.0.113.10")
	req := webhookRequest(`{}`)
	req.RemoteAddr = "10.10.4.2:40000"
	req.Header.Set("X-Forwarded-For", "203.0.113.10")
	m.router.ServeHTTP(httptest.NewRecorder(), req)

	// a peer outside the proxy list cannot choose its address
	m.expectSourceIP(t, "192.0.2.1")
	req = webhookRequest(`{}`)
	req.RemoteAddr = "192.0.2.1:40000"
	req.Header.Set("X-Forwarded-For", "203.0.113.10")
	m.router.ServeHTTP(httptest.NewRecorder(), req)
}

func TestWebhook_InvalidTrustedProxiesFallBackToPeer(t *testing.T) {
	m := setupRouterWith(t, func(d *RouterDeps) { d.TrustedProxies = []string{"not-an-ip"} })
	m.expectSourceIP(t, "192.0.2.1")

	req := webhookRequest(`{}`)
	req.RemoteAddr = "192.0.2.1:40000"
	req.Header.Set("X-Forwarded-For", "10.0.0.1")
	m.router.ServeHTTP(httptest.NewRecorder(), req)
}

func TestWebhook_OversizedBodyAudited(t *testing.T) {
	m := setupRouter(t)
	// Admit must not be called
	m.webhooks.EXPECT().Record(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, entry domain.WebhookAuditEntry) {
			assert.True(t, entry.Blocked)
			assert.Equal(t, "payload_too_large", entry.Reason)
			assert.Equal(t, "192.0.2.1", entry.SourceIP)
			assert.NotEqual(t, uuid.Nil, entry.ID)
		}).Times(1)

	req := webhookRequest(`{"event":"order.confirmed","pad":"` + strings.Repeat("x", 2<<20) + `"}`)
	req.RemoteAddr = "192.0.2.1:40000"
	w := httptest.NewRecorder()
	m.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "payload_too_large")
}

// --- Order Handler Tests ---

func TestCreateOrder_Success(t *testing.T) {
	m := setupRouter(t)
	userID := uuid.New()
	m.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.CreateOrderRequest) (*domain.PurchaseOrder, error) {
			assert.Equal(t, userID, req.UserID)
			assert.Equal(t, domain.BarSize10g, req.BarSize)
			assert.Equal(t, 5, req.BarCount)
			assert.Equal(t, m.actor, req.ActorID)
			return &domain.PurchaseOrder{ID: uuid.New(), UserID: userID, BarSize: req.BarSize, BarCount: 5, Status: domain.OrderStatusPending}, nil
		})

	w := m.do(http.MethodPost, "/api/v1/admin/orders", map[string]any{
		"user_id": userID.String(), "bar_size": "10g", "bar_count": 5,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
}

func TestCreateOrder_Validation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing user", map[string]any{"bar_size": "10g", "bar_count": 5}},
		{"unknown bar size", map[string]any{"user_id": uuid.NewString(), "bar_size": "5g", "bar_count": 5}},
		{"zero count", map[string]any{"user_id": uuid.NewString(), "bar_size": "10g", "bar_count": 0}},
		{"bad callback", map[string]any{"user_id": uuid.NewString(), "bar_size": "1kg", "bar_count": 1, "callback_url": "javascript:alert(1)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupRouter(t)
			w := m.do(http.MethodPost, "/api/v1/admin/orders", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "VAL_001", errorCode(t, w))
		})
	}
}

func TestListOrders_Pagination(t *testing.T) {
	m := setupRouter(t)
	m.orders.EXPECT().ListOrders(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p ports.OrderListParams) ([]domain.PurchaseOrder, int64, error) {
			assert.Equal(t, 2, p.Page)
			assert.Equal(t, 10, p.PageSize)
			require.NotNil(t, p.Status)
			assert.Equal(t, domain.OrderStatusWingoldApproved, *p.Status)
			return []domain.PurchaseOrder{{ID: uuid.New()}}, 21, nil
		})

	w := m.do(http.MethodGet, "/api/v1/admin/orders?page=2&page_size=10&status=wingold_approved", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(21), resp.Data.Total)
	assert.Equal(t, 3, resp.Data.TotalPages)
}

func TestGetOrder_BadID(t *testing.T) {
	m := setupRouter(t)
	w := m.do(http.MethodGet, "/api/v1/admin/orders/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrder_NotFound(t *testing.T) {
	m := setupRouter(t)
	id := uuid.New()
	m.orders.EXPECT().GetOrder(gomock.Any(), id).Return(nil, apperror.ErrNotFound("order"))

	w := m.do(http.MethodGet, "/api/v1/admin/orders/"+id.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "DAT_002", errorCode(t, w))
}

func TestRejectOrder_EmptyBody(t *testing.T) {
	m := setupRouter(t)
	id := uuid.New()
	m.orders.EXPECT().RejectOrder(gomock.Any(), id, m.actor, "").Return(&domain.PurchaseOrder{ID: id, Status: domain.OrderStatusFailed}, nil)

	w := m.do(http.MethodPost, "/api/v1/admin/orders/"+id.String()+"/reject", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCancelOrder_ReasonSanitized(t *testing.T) {
	m := setupRouter(t)
	id := uuid.New()
	m.orders.EXPECT().CancelOrder(gomock.Any(), id, m.actor, "&lt;b&gt;dup&lt;/b&gt;").Return(&domain.PurchaseOrder{ID: id}, nil)

	w := m.do(http.MethodPost, "/api/v1/admin/orders/"+id.String()+"/cancel", map[string]string{"reason": "  <b>dup</b> "})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApproveSettlement(t *testing.T) {
	m := setupRouter(t)
	id := uuid.New()
	m.settlement.EXPECT().ApproveAndCredit(gomock.Any(), id, m.actor).Return(&ports.CreditResult{
		OrderID:        id,
		WalletID:       uuid.New(),
		TransactionID:  uuid.New(),
		CreditedGrams:  decimal.NewFromInt(50),
		AvailableGrams: decimal.NewFromInt(50),
	}, nil)

	w := m.do(http.MethodPost, "/api/v1/admin/orders/"+id.String()+"/settlement/approve", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"credited_grams":"50"`)
}

func TestApproveSettlement_NoBacking(t *testing.T) {
	m := setupRouter(t)
	id := uuid.New()
	m.settlement.EXPECT().ApproveAndCredit(gomock.Any(), id, m.actor).Return(nil, apperror.ErrNoPhysicalBacking("no bars allocated"))

	w := m.do(http.MethodPost, "/api/v1/admin/orders/"+id.String()+"/settlement/approve", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "INV_001", errorCode(t, w))
}

// --- Conversion Handler Tests ---

func TestRequestConversion(t *testing.T) {
	m := setupRouter(t)
	userID := uuid.New()
	m.conversions.EXPECT().RequestConversion(gomock.Any(), ports.ConversionRequest{
		UserID: userID, Direction: domain.ConvertMPGWToFPGW, Grams: decimal.NewFromInt(10), ActorID: m.actor,
	}).Return(&domain.WalletConversion{ID: uuid.New(), Status: domain.ConversionPending}, nil)

	w := m.do(http.MethodPost, "/api/v1/admin/conversions",
		fmt.Sprintf(`{"user_id":"%s","direction":"MPGW_TO_FPGW","grams":"10"}`, userID))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRequestConversion_BadDirection(t *testing.T) {
	m := setupRouter(t)
	w := m.do(http.MethodPost, "/api/v1/admin/conversions",
		fmt.Sprintf(`{"user_id":"%s","direction":"SIDEWAYS","grams":"10"}`, uuid.New()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApproveConversion_Override(t *testing.T) {
	m := setupRouter(t)
	id := uuid.New()
	m.conversions.EXPECT().ApproveConversion(gomock.Any(), id, m.actor, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ uuid.UUID, price *decimal.Decimal) (*domain.WalletConversion, error) {
			require.NotNil(t, price)
			assert.True(t, price.Equal(decimal.NewFromInt(85)))
			return &domain.WalletConversion{ID: id, Status: domain.ConversionCompleted}, nil
		})

	w := m.do(http.MethodPost, "/api/v1/admin/conversions/"+id.String()+"/approve", `{"override_price_per_gram":"85"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApproveConversion_NoBody(t *testing.T) {
	m := setupRouter(t)
	id := uuid.New()
	m.conversions.EXPECT().ApproveConversion(gomock.Any(), id, m.actor, (*decimal.Decimal)(nil)).
		Return(&domain.WalletConversion{ID: id, Status: domain.ConversionCompleted}, nil)

	w := m.do(http.MethodPost, "/api/v1/admin/conversions/"+id.String()+"/approve", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Cash Ledger Handler Tests ---

func TestPostCashEntry(t *testing.T) {
	m := setupRouter(t)
	m.cash.EXPECT().PostManualEntry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.AppendEntryRequest) (*domain.CashLedgerEntry, error) {
			assert.Equal(t, domain.CashEntryManualDeposit, req.Type)
			assert.True(t, req.Amount.Equal(decimal.NewFromInt(1000)))
			assert.Equal(t, &m.actor, req.ActorID)
			return &domain.CashLedgerEntry{ID: uuid.New()}, nil
		})

	w := m.do(http.MethodPost, "/api/v1/admin/cash-ledger/entries", `{"entry_type":"manual_deposit","amount":"1000"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestPostCashEntry_LockTypeRefused(t *testing.T) {
	m := setupRouter(t)
	w := m.do(http.MethodPost, "/api/v1/admin/cash-ledger/entries", `{"entry_type":"lock","amount":"10"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCashLedger(t *testing.T) {
	m := setupRouter(t)
	m.cash.EXPECT().Balance(gomock.Any()).Return(decimal.NewFromInt(1360), nil)
	m.cash.EXPECT().ListEntries(gomock.Any(), int64(5), 10).Return(nil, nil)

	w := m.do(http.MethodGet, "/api/v1/admin/cash-ledger?after_sequence=5&limit=10", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"balance":"1360"`)
	assert.Contains(t, w.Body.String(), `"entries":[]`)
}

// --- Reconciliation Handler Tests ---

func TestRunReconciliation(t *testing.T) {
	m := setupRouter(t)
	alertID := uuid.New()
	now := time.Now().UTC()
	m.recon.EXPECT().Run(gomock.Any(), TriggerManual).Return(&ports.RunReport{
		Trigger: TriggerManual, StartedAt: now, FinishedAt: now,
		Checks: []ports.CheckResult{{
			Type:     domain.AlertMPGWExceedsPhysical,
			Severity: domain.SeverityWarning,
			Divergence: domain.Divergence{
				Expected: decimal.NewFromInt(100), Actual: decimal.NewFromInt(110),
				Difference: decimal.NewFromInt(10), Percentage: decimal.RequireFromString("9.0909"),
			},
			AlertID: &alertID,
		}},
	}, nil)

	w := m.do(http.MethodPost, "/api/v1/admin/reconciliation/run", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), alertID.String())
	assert.Contains(t, w.Body.String(), `"severity":"warning"`)
}

func TestRunReconciliation_LockHeld(t *testing.T) {
	m := setupRouter(t)
	m.recon.EXPECT().Run(gomock.Any(), TriggerManual).Return(nil, apperror.ErrLockNotObtained(ports.ErrLockHeld))

	w := m.do(http.MethodPost, "/api/v1/admin/reconciliation/run", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "SYS_002", errorCode(t, w))
}

func TestListAlerts_Query(t *testing.T) {
	m := setupRouter(t)
	m.recon.EXPECT().ListAlerts(gomock.Any(), false, 100).Return(nil, nil)

	w := m.do(http.MethodGet, "/api/v1/admin/reconciliation/alerts?unresolved=false", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = m.do(http.MethodGet, "/api/v1/admin/reconciliation/alerts?unresolved=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveAlert_NotesRequired(t *testing.T) {
	m := setupRouter(t)
	w := m.do(http.MethodPost, "/api/v1/admin/reconciliation/alerts/"+uuid.NewString()+"/resolve", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveAlert(t *testing.T) {
	m := setupRouter(t)
	id := uuid.New()
	m.recon.EXPECT().ResolveAlert(gomock.Any(), id, m.actor, "bar recounted").Return(&domain.ReconciliationAlert{ID: id, Resolved: true}, nil)

	w := m.do(http.MethodPost, "/api/v1/admin/reconciliation/alerts/"+id.String()+"/resolve", `{"notes":"bar recounted"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Auth & misc ---

func TestAdminRoutes_RequireToken(t *testing.T) {
	m := setupRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil)
	w := httptest.NewRecorder()
	m.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookAuditList(t *testing.T) {
	m := setupRouter(t)
	m.webhooks.EXPECT().Recent(25).Return([]domain.WebhookAuditEntry{{ID: uuid.New(), Blocked: true, Reason: "invalid_signature"}})

	w := m.do(http.MethodGet, "/api/v1/admin/webhooks/audit?limit=25", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_signature")
}

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(context.Context) error { return s.err }
func (s stubChecker) Name() string               { return s.name }

func TestHealthCheck(t *testing.T) {
	r := gin.New()
	r.GET("/health", HealthCheck(stubChecker{name: "postgresql"}, stubChecker{name: "redis", err: errors.New("down")}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}

func TestMetricsEndpoint(t *testing.T) {
	m := setupRouter(t)
	w := httptest.NewRecorder()
	m.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
