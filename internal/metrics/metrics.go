package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	CasesOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCasesOpened,
			Help: HelpTextCasesOpened,
		},
		[]string{LabelCase},
	)

	DropQuality = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameDropQuality,
			Help:    HelpTextDropQuality,
			Buckets: QualityBuckets,
		},
	)

	DropsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDropsResolved,
			Help: HelpTextDropsResolved,
		},
		[]string{LabelChoice},
	)

	CraftsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCraftsTotal,
			Help: HelpTextCraftsTotal,
		},
		[]string{LabelMode, LabelOutcome},
	)

	ItemsBurned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsBurned,
			Help: HelpTextItemsBurned,
		},
	)

	ItemsSynthesized = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsSynthesized,
			Help: HelpTextItemsSynthesized,
		},
	)

	ShopPurchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameShopPurchases,
			Help: HelpTextShopPurchases,
		},
		[]string{LabelListing},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelItem},
	)

	MoneyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
	)

	MoneyDeposited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyDeposited,
			Help: HelpTextMoneyDeposited,
		},
	)

	SessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsCreated,
			Help: HelpTextSessionsCreated,
		},
	)

	SessionsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsEvicted,
			Help: HelpTextSessionsEvicted,
		},
	)
)
