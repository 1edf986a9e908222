package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "selectz_orders_created_total",
		Help: "Payment orders created at the processor.",
	})

	// WebhookEvents counts deliveries by outcome: captured, failed,
	// invalid_signature, unknown_order, replayed, error.
	WebhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "selectz_webhook_events_total",
		Help: "Webhook deliveries by settlement outcome.",
	}, []string{"outcome"})

	CouponValidations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "selectz_coupon_validations_total",
		Help: "Coupon validation requests by verdict.",
	}, []string{"verdict"})
)
