package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/wb_tickets/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestKafkaCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeConsumed := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("purchases"))
	beforeFailed := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("purchases"))

	metrics.KafkaMessagesConsumed.WithLabelValues("purchases").Inc()
	metrics.KafkaMessagesFailed.WithLabelValues("purchases").Inc()

	if got := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("purchases")); got != beforeConsumed+1 {
		t.Fatalf("KafkaMessagesConsumed: got=%v want=%v", got, beforeConsumed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("purchases")); got != beforeFailed+1 {
		t.Fatalf("KafkaMessagesFailed: got=%v want=%v", got, beforeFailed+1)
	}
}

func TestPurchasesTotal_ByOutcome(t *testing.T) {
	metrics.MustRegister()

	acceptedBefore := testutil.ToFloat64(metrics.PurchasesTotal.WithLabelValues("accepted"))
	rejectedBefore := testutil.ToFloat64(metrics.PurchasesTotal.WithLabelValues("rejected"))

	metrics.PurchasesTotal.WithLabelValues("accepted").Inc()
	metrics.PurchasesTotal.WithLabelValues("accepted").Inc()

	if got := testutil.ToFloat64(metrics.PurchasesTotal.WithLabelValues("accepted")); got != acceptedBefore+2 {
		t.Fatalf("PurchasesTotal(accepted): got=%v want=%v", got, acceptedBefore+2)
	}
	if got := testutil.ToFloat64(metrics.PurchasesTotal.WithLabelValues("rejected")); got != rejectedBefore {
		t.Fatalf("PurchasesTotal(rejected): got=%v want=%v", got, rejectedBefore)
	}
}

func TestAmountAndSeats_Add(t *testing.T) {
	metrics.MustRegister()

	amountBefore := testutil.ToFloat64(metrics.AmountCharged)
	seatsBefore := testutil.ToFloat64(metrics.SeatsReserved)

	metrics.AmountCharged.Add(80)
	metrics.SeatsReserved.Add(4)

	if got := testutil.ToFloat64(metrics.AmountCharged); got != amountBefore+80 {
		t.Fatalf("AmountCharged: got=%v want=%v", got, amountBefore+80)
	}
	if got := testutil.ToFloat64(metrics.SeatsReserved); got != seatsBefore+4 {
		t.Fatalf("SeatsReserved: got=%v want=%v", got, seatsBefore+4)
	}
}
