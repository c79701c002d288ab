package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"
	"gold-settlement/internal/core/ports/mocks"
	"gold-settlement/internal/testutil/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type orderDeps struct {
	store     *memstore.Store
	repos     memstore.Repos
	custodian *mocks.MockCustodianClient
	notifier  *recordingNotifier
	audit     *recordingAudit
	svc       *OrderServiceImpl
}

func setupOrderService(t *testing.T) *orderDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := memstore.New()
	repos := store.Repos()
	signer, err := NewCertificateSigner("certificate-test-secret")
	require.NoError(t, err)

	d := &orderDeps{
		store:     store,
		repos:     repos,
		custodian: mocks.NewMockCustodianClient(ctrl),
		notifier:  &recordingNotifier{},
		audit:     &recordingAudit{},
	}
	d.svc = NewOrderService(
		repos.Orders, repos.Bars, repos.Trails, repos.Transactor,
		d.custodian, NewStaticPriceOracle(dec("80")), signer,
		d.notifier, d.audit,
		OrderConfig{CallbackURL: "https://platform.example/webhooks", TrailEnabled: true},
		newTestLogger(),
	)
	return d
}

// submittedOrder creates and approves an order of barCount × 10g bars.
func (d *orderDeps) submittedOrder(t *testing.T, barCount int) *domain.PurchaseOrder {
	t.Helper()
	ctx := context.Background()
	order, err := d.svc.CreateOrder(ctx, ports.CreateOrderRequest{
		UserID:                 uuid.New(),
		BarSize:                domain.BarSize10g,
		BarCount:               barCount,
		PreferredVaultLocation: "Dubai",
		ActorID:                uuid.New(),
	})
	require.NoError(t, err)

	d.custodian.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
		Return(&ports.CustodianOrderReceipt{CustodianOrderID: "WGX-" + order.ExternalReference, Status: "accepted"}, nil)
	approved, err := d.svc.ApproveOrder(ctx, order.ID, uuid.New())
	require.NoError(t, err)
	return approved
}

func barEvent(ref, serial string) *domain.InboundEvent {
	return &domain.InboundEvent{
		Event:   domain.EventBarAllocated,
		OrderID: ref,
		Data:    domain.EventData{BarData: domain.BarData{SerialNumber: serial, WeightGrams: decPtr("10"), VaultLocation: "Dubai"}},
	}
}

func fulfilledEvent(ref string) *domain.InboundEvent {
	return &domain.InboundEvent{Event: domain.EventOrderFulfilled, OrderID: ref}
}

func (d *orderDeps) mustHandle(t *testing.T, ev *domain.InboundEvent) *ports.EventOutcome {
	t.Helper()
	out, err := d.svc.HandleEvent(context.Background(), ev)
	require.NoError(t, err)
	return out
}

// =============================================================================
// CreateOrder
// =============================================================================

func TestCreateOrder_Success(t *testing.T) {
	d := setupOrderService(t)
	userID := uuid.New()

	order, err := d.svc.CreateOrder(context.Background(), ports.CreateOrderRequest{
		UserID:   userID,
		BarSize:  domain.BarSize10g,
		BarCount: 5,
		ActorID:  uuid.New(),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.True(t, order.TotalGrams.Equal(dec("50")))
	assert.True(t, order.USDAmount.Equal(dec("4000")))
	assert.True(t, strings.HasPrefix(order.ExternalReference, "WG-"))
	assert.Equal(t, domain.OrderOriginLocal, order.Origin)
	assert.Len(t, d.audit.find(domain.AuditActionCreateOrder), 1)

	stored, err := d.repos.Orders.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, userID, stored.UserID)
}

func TestCreateOrder_GramsMismatch(t *testing.T) {
	d := setupOrderService(t)

	_, err := d.svc.CreateOrder(context.Background(), ports.CreateOrderRequest{
		UserID:     uuid.New(),
		BarSize:    domain.BarSize10g,
		BarCount:   5,
		TotalGrams: decPtr("40"),
	})

	assertAppError(t, err, "INV_004")
}

func TestCreateOrder_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  ports.CreateOrderRequest
	}{
		{"missing user", ports.CreateOrderRequest{BarSize: domain.BarSize1g, BarCount: 1}},
		{"unknown bar size", ports.CreateOrderRequest{UserID: uuid.New(), BarSize: "5g", BarCount: 1}},
		{"zero bar count", ports.CreateOrderRequest{UserID: uuid.New(), BarSize: domain.BarSize1g}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupOrderService(t)
			_, err := d.svc.CreateOrder(context.Background(), tt.req)
			assertAppError(t, err, "VAL_001")
		})
	}
}

func TestCreateOrder_NoPrice(t *testing.T) {
	d := setupOrderService(t)
	d.svc.prices = NewStaticPriceOracle(dec("0"))

	_, err := d.svc.CreateOrder(context.Background(), ports.CreateOrderRequest{
		UserID: uuid.New(), BarSize: domain.BarSize1g, BarCount: 1,
	})

	assertAppError(t, err, "EXT_002")
}

// =============================================================================
// ApproveOrder / RejectOrder / CancelOrder
// =============================================================================

func TestApproveOrder_SubmitsToCustodian(t *testing.T) {
	d := setupOrderService(t)

	order := d.submittedOrder(t, 2)

	assert.Equal(t, domain.OrderStatusSubmitted, order.Status)
	require.NotNil(t, order.CustodianOrderID)
	assert.Equal(t, "WGX-"+order.ExternalReference, *order.CustodianOrderID)
	assert.NotNil(t, order.SubmittedAt)
	assert.NotNil(t, order.ApprovedBy)
}

func TestApproveOrder_CustodianFailureMarksFailed(t *testing.T) {
	d := setupOrderService(t)
	ctx := context.Background()
	order, err := d.svc.CreateOrder(ctx, ports.CreateOrderRequest{UserID: uuid.New(), BarSize: domain.BarSize1g, BarCount: 1})
	require.NoError(t, err)

	d.custodian.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("custodian returned 503")).Times(1)

	_, err = d.svc.ApproveOrder(ctx, order.ID, uuid.New())

	assertAppError(t, err, "EXT_001")
	stored, err := d.repos.Orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusFailed, stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	assert.Contains(t, *stored.ErrorMessage, "503")
	assert.Equal(t, "rejected", d.audit.find(domain.AuditActionApproveOrder)[0].Outcome)

	// no implicit retry: a second approval is a state error, not a resubmission
	_, err = d.svc.ApproveOrder(ctx, order.ID, uuid.New())
	assertAppError(t, err, "ORD_001")
}

func TestApproveOrder_NotPending(t *testing.T) {
	d := setupOrderService(t)
	order := d.submittedOrder(t, 1)

	_, err := d.svc.ApproveOrder(context.Background(), order.ID, uuid.New())

	assertAppError(t, err, "ORD_001")
}

func TestApproveOrder_NotFound(t *testing.T) {
	d := setupOrderService(t)

	_, err := d.svc.ApproveOrder(context.Background(), uuid.New(), uuid.New())

	assertAppError(t, err, "DAT_002")
}

func TestRejectOrder(t *testing.T) {
	d := setupOrderService(t)
	ctx := context.Background()
	order, err := d.svc.CreateOrder(ctx, ports.CreateOrderRequest{UserID: uuid.New(), BarSize: domain.BarSize1g, BarCount: 1})
	require.NoError(t, err)

	rejected, err := d.svc.RejectOrder(ctx, order.ID, uuid.New(), "duplicate request")

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, rejected.Status)
	assert.NotNil(t, rejected.CancelledAt)
	assert.Equal(t, 1, d.notifier.count(domain.EventOrderCancelled))

	_, err = d.svc.RejectOrder(ctx, order.ID, uuid.New(), "again")
	assertAppError(t, err, "ORD_001")
}

func TestRejectOrder_OnlyPending(t *testing.T) {
	d := setupOrderService(t)
	order := d.submittedOrder(t, 1)

	_, err := d.svc.RejectOrder(context.Background(), order.ID, uuid.New(), "late")

	assertAppError(t, err, "ORD_001")
}

func TestCancelOrder_CancelsAtCustodian(t *testing.T) {
	d := setupOrderService(t)
	order := d.submittedOrder(t, 1)

	d.custodian.EXPECT().CancelOrder(gomock.Any(), *order.CustodianOrderID, "customer request").Return(nil)

	cancelled, err := d.svc.CancelOrder(context.Background(), order.ID, uuid.New(), "customer request")

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, cancelled.Status)
}

func TestCancelOrder_CustodianErrorIsNotFatal(t *testing.T) {
	d := setupOrderService(t)
	order := d.submittedOrder(t, 1)

	d.custodian.EXPECT().CancelOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("timeout"))

	cancelled, err := d.svc.CancelOrder(context.Background(), order.ID, uuid.New(), "customer request")

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, cancelled.Status)
}

// =============================================================================
// HandleEvent
// =============================================================================

func TestHandleEvent_FullLifecycle(t *testing.T) {
	d := setupOrderService(t)
	ctx := context.Background()
	order := d.submittedOrder(t, 5)
	ref := order.ExternalReference

	out := d.mustHandle(t, &domain.InboundEvent{
		Event:   domain.EventOrderConfirmed,
		OrderID: ref,
		Data:    domain.EventData{BarData: domain.BarData{VaultLocation: "Dubai"}},
	})
	assert.Equal(t, domain.OrderStatusConfirmed, out.Status)

	for i := 1; i <= 4; i++ {
		out = d.mustHandle(t, barEvent(ref, fmt.Sprintf("WG-SN-%d", i)))
		assert.True(t, out.Applied)
		assert.Equal(t, domain.OrderStatusPartiallyFulfilled, out.Status)
	}

	out = d.mustHandle(t, barEvent(ref, "WG-SN-5"))
	assert.Equal(t, domain.OrderStatusProcessing, out.Status)

	detail, err := d.svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Bars, 5)
	assert.Len(t, detail.Holdings, 5)
	assert.Len(t, detail.Certificates, 6)
	assert.True(t, detail.Order.CertificatesIssued)
	storage := 0
	for _, c := range detail.Certificates {
		if c.Type == domain.CertificateStorage {
			storage++
		}
		assert.NotEmpty(t, c.Signature)
	}
	assert.Equal(t, 1, storage)

	out = d.mustHandle(t, fulfilledEvent(ref))
	assert.Equal(t, domain.OrderStatusWingoldApproved, out.Status)

	assert.Equal(t, 1, d.notifier.count(domain.EventOrderConfirmed))
	assert.Equal(t, 5, d.notifier.count(domain.EventBarAllocated))
	assert.Equal(t, 6, d.notifier.count(domain.EventCertificateIssued))

	stored, err := d.repos.Orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.CustodianFulfilledAt)
	require.NotNil(t, stored.VaultLocation)
	assert.Equal(t, "Dubai", *stored.VaultLocation)
}

func TestHandleEvent_SingleBarGoesToProcessing(t *testing.T) {
	d := setupOrderService(t)
	order := d.submittedOrder(t, 1)

	out := d.mustHandle(t, barEvent(order.ExternalReference, "WG-SN-1"))

	assert.Equal(t, domain.OrderStatusProcessing, out.Status)
}

func TestHandleEvent_FulfilledBeforeAllBarsWaits(t *testing.T) {
	d := setupOrderService(t)
	order := d.submittedOrder(t, 2)
	ref := order.ExternalReference

	d.mustHandle(t, barEvent(ref, "SN-A"))
	out := d.mustHandle(t, fulfilledEvent(ref))
	assert.Equal(t, domain.OrderStatusPartiallyFulfilled, out.Status)

	out = d.mustHandle(t, barEvent(ref, "SN-B"))
	assert.Equal(t, domain.OrderStatusWingoldApproved, out.Status)
}

func TestHandleEvent_FulfilledCarriesBars(t *testing.T) {
	d := setupOrderService(t)
	order := d.submittedOrder(t, 2)

	out := d.mustHandle(t, &domain.InboundEvent{
		Event:   domain.EventOrderFulfilled,
		OrderID: order.ExternalReference,
		Data: domain.EventData{Bars: []domain.BarData{
			{SerialNumber: "SN-1", WeightGrams: decPtr("10")},
			{SerialNumber: "SN-2", WeightGrams: decPtr("10")},
		}},
	})

	assert.Equal(t, domain.OrderStatusWingoldApproved, out.Status)
}

func TestHandleEvent_DuplicateSerialIsIdempotent(t *testing.T) {
	d := setupOrderService(t)
	order := d.submittedOrder(t, 3)
	ref := order.ExternalReference

	d.mustHandle(t, barEvent(ref, "SN-1"))
	out := d.mustHandle(t, barEvent(ref, "SN-1"))

	assert.False(t, out.Applied)
	stored, err := d.repos.Orders.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.AllocatedBars)
	assert.Equal(t, 1, d.notifier.count(domain.EventBarAllocated))
}

func TestHandleEvent_SerialOwnedByAnotherOrder(t *testing.T) {
	d := setupOrderService(t)
	first := d.submittedOrder(t, 1)
	second := d.submittedOrder(t, 1)

	d.mustHandle(t, barEvent(first.ExternalReference, "SN-1"))
	_, err := d.svc.HandleEvent(context.Background(), barEvent(second.ExternalReference, "SN-1"))

	assertAppError(t, err, "VAL_001")
}

func TestHandleEvent_TerminalOrderIsNoop(t *testing.T) {
	d := setupOrderService(t)
	order := d.submittedOrder(t, 1)
	d.custodian.EXPECT().CancelOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	_, err := d.svc.CancelOrder(context.Background(), order.ID, uuid.New(), "stop")
	require.NoError(t, err)

	out := d.mustHandle(t, barEvent(order.ExternalReference, "SN-1"))

	assert.False(t, out.Applied)
	assert.Equal(t, domain.OrderStatusCancelled, out.Status)
	detail, err := d.svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Bars)
}

func TestHandleEvent_AllocationOnPendingOrder(t *testing.T) {
	d := setupOrderService(t)
	order, err := d.svc.CreateOrder(context.Background(), ports.CreateOrderRequest{UserID: uuid.New(), BarSize: domain.BarSize1g, BarCount: 1})
	require.NoError(t, err)

	_, err = d.svc.HandleEvent(context.Background(), barEvent(order.ExternalReference, "SN-1"))

	assertAppError(t, err, "ORD_001")
}

func TestHandleEvent_CustodianCancellation(t *testing.T) {
	d := setupOrderService(t)
	order := d.submittedOrder(t, 2)

	out := d.mustHandle(t, &domain.InboundEvent{
		Event:   domain.EventOrderCancelled,
		OrderID: order.ExternalReference,
		Data:    domain.EventData{Reason: "out of stock"},
	})

	assert.Equal(t, domain.OrderStatusCancelled, out.Status)
	assert.Equal(t, 1, d.notifier.count(domain.EventOrderCancelled))
}

func TestHandleEvent_MatchesCustodianOrderID(t *testing.T) {
	d := setupOrderService(t)
	order := d.submittedOrder(t, 1)

	out := d.mustHandle(t, barEvent(*order.CustodianOrderID, "SN-1"))

	assert.Equal(t, order.ID, out.OrderID)
	assert.Equal(t, domain.OrderStatusProcessing, out.Status)
}

func TestHandleEvent_CustodianCertificate(t *testing.T) {
	d := setupOrderService(t)
	order := d.submittedOrder(t, 1)
	d.mustHandle(t, barEvent(order.ExternalReference, "SN-1"))

	ev := &domain.InboundEvent{
		Event:   domain.EventCertificateIssued,
		OrderID: order.ExternalReference,
		Data: domain.EventData{
			BarData:           domain.BarData{SerialNumber: "SN-1"},
			CertificateNumber: "WG-CERT-0001",
		},
	}
	out := d.mustHandle(t, ev)
	assert.True(t, out.Applied)

	again := d.mustHandle(t, ev)
	assert.False(t, again.Applied)

	cert, err := d.repos.Bars.GetCertificateByNumber(context.Background(), nil, "WG-CERT-0001")
	require.NoError(t, err)
	require.NotNil(t, cert)
	assert.Equal(t, domain.CertificateCustodian, cert.Type)
	assert.NotNil(t, cert.BarLotID)
}

func TestHandleEvent_InferredOrder(t *testing.T) {
	d := setupOrderService(t)
	userID := uuid.New()

	out := d.mustHandle(t, &domain.InboundEvent{
		Event:   domain.EventBarAllocated,
		OrderID: "WG-EXT-777",
		Data: domain.EventData{
			BarData:    domain.BarData{SerialNumber: "SN-X1", WeightGrams: decPtr("100")},
			UserID:     userID.String(),
			BarSize:    "100g",
			BarCount:   intPtr(2),
			TotalGrams: decPtr("200"),
			USDAmount:  decPtr("16000"),
		},
	})

	assert.True(t, out.Inferred)
	assert.True(t, out.Applied)
	assert.Equal(t, domain.OrderStatusPartiallyFulfilled, out.Status)

	stored, err := d.repos.Orders.GetByID(context.Background(), out.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderOriginInferred, stored.Origin)
	assert.Equal(t, userID, stored.UserID)
	assert.Len(t, d.audit.find(domain.AuditActionInferredOrderAdded), 1)
}

func TestHandleEvent_InferenceRejected(t *testing.T) {
	tests := []struct {
		name string
		data domain.EventData
	}{
		{"missing bar size", domain.EventData{UserID: uuid.NewString(), BarCount: intPtr(1), TotalGrams: decPtr("10"), USDAmount: decPtr("800")}},
		{"non canonical user", domain.EventData{UserID: "user-42", BarSize: "10g", BarCount: intPtr(1), TotalGrams: decPtr("10"), USDAmount: decPtr("800")}},
		{"grams mismatch", domain.EventData{UserID: uuid.NewString(), BarSize: "10g", BarCount: intPtr(2), TotalGrams: decPtr("10"), USDAmount: decPtr("800")}},
		{"missing usd", domain.EventData{UserID: uuid.NewString(), BarSize: "10g", BarCount: intPtr(1), TotalGrams: decPtr("10")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupOrderService(t)
			tt.data.SerialNumber = "SN-1"

			_, err := d.svc.HandleEvent(context.Background(), &domain.InboundEvent{
				Event: domain.EventBarAllocated, OrderID: "WG-UNKNOWN", Data: tt.data,
			})

			assertAppError(t, err, "DAT_001")
			assert.Len(t, d.audit.find(domain.AuditActionInferenceRejected), 1)
			orders, total, err := d.svc.ListOrders(context.Background(), ports.OrderListParams{})
			require.NoError(t, err)
			assert.Zero(t, total)
			assert.Empty(t, orders)
		})
	}
}

func TestHandleEvent_ConfirmedCannotInfer(t *testing.T) {
	d := setupOrderService(t)

	_, err := d.svc.HandleEvent(context.Background(), &domain.InboundEvent{
		Event: domain.EventOrderConfirmed, OrderID: "WG-UNKNOWN",
	})

	assertAppError(t, err, "DAT_001")
}

func TestHandleEvent_RollbackOnFailure(t *testing.T) {
	d := setupOrderService(t)
	order := d.submittedOrder(t, 2)
	d.store.FailNext("orders.update", errors.New("disk full"))

	_, err := d.svc.HandleEvent(context.Background(), barEvent(order.ExternalReference, "SN-1"))

	assertAppError(t, err, "SYS_001")
	detail, err := d.svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Bars)
	assert.Equal(t, domain.OrderStatusSubmitted, detail.Order.Status)
	assert.Zero(t, d.notifier.count(domain.EventBarAllocated))
}

func TestHandleEvent_TrailRecordsSteps(t *testing.T) {
	d := setupOrderService(t)
	order := d.submittedOrder(t, 1)
	d.mustHandle(t, barEvent(order.ExternalReference, "SN-1"))

	tx, err := d.repos.Transactor.Begin(context.Background())
	require.NoError(t, err)
	defer tx.Rollback(context.Background()) //nolint:errcheck
	trail, err := d.repos.Trails.GetByOrderForUpdate(context.Background(), tx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, trail)

	var kinds []string
	for _, e := range trail.Events {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, "order_created", kinds[0])
	assert.Contains(t, kinds, "status:submitted")
	assert.Contains(t, kinds, "bar_allocated")
	assert.Contains(t, kinds, "status:processing")
	assert.Equal(t, domain.TrailOpen, trail.Status)
}

// =============================================================================
// ListOrders
// =============================================================================

func TestListOrders_DefaultsAndFilter(t *testing.T) {
	d := setupOrderService(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := d.svc.CreateOrder(ctx, ports.CreateOrderRequest{UserID: uuid.New(), BarSize: domain.BarSize1g, BarCount: 1})
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}
	d.submittedOrder(t, 1)

	all, total, err := d.svc.ListOrders(ctx, ports.OrderListParams{})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, all, 4)

	pending := domain.OrderStatusPending
	filtered, total, err := d.svc.ListOrders(ctx, ports.OrderListParams{Status: &pending, PageSize: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, filtered, 2)
}
