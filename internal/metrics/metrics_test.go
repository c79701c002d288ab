package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWebhookCounters(t *testing.T) {
	before := testutil.ToFloat64(webhookAdmissions.WithLabelValues("rejected", "invalid_signature"))
	WebhookRejected("invalid_signature")
	WebhookRejected("invalid_signature")
	assert.Equal(t, before+2, testutil.ToFloat64(webhookAdmissions.WithLabelValues("rejected", "invalid_signature")))

	before = testutil.ToFloat64(webhookAdmissions.WithLabelValues("duplicate", ""))
	WebhookAdmitted(true)
	assert.Equal(t, before+1, testutil.ToFloat64(webhookAdmissions.WithLabelValues("duplicate", "")))
}

func TestObserveDivergence(t *testing.T) {
	ObserveDivergence("MPGW_EXCEEDS_PHYSICAL", decimal.RequireFromString("9.0909"))
	assert.InDelta(t, 9.0909, testutil.ToFloat64(reconciliationDivergence.WithLabelValues("MPGW_EXCEEDS_PHYSICAL")), 1e-9)
}

func TestGramsCredited(t *testing.T) {
	before := testutil.ToFloat64(settlementCredits)
	GramsCredited(decimal.NewFromInt(50))
	assert.Equal(t, before+50, testutil.ToFloat64(settlementCredits))
}

func TestObserveHTTPRequest(t *testing.T) {
	ObserveHTTPRequest("POST", "/webhooks", 200, 15*time.Millisecond)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(httpRequestDuration), 1)
}
