package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNameCasesOpened      = "cases_opened_total"
	MetricNameDropsResolved    = "drops_resolved_total"
	MetricNameDropQuality      = "drop_quality"
	MetricNameCraftsTotal      = "crafts_total"
	MetricNameItemsBurned      = "items_burned_total"
	MetricNameItemsSynthesized = "items_synthesized_total"
	MetricNameShopPurchases    = "shop_purchases_total"
	MetricNameItemsSold        = "items_sold_total"
	MetricNameMoneyEarned      = "money_earned_total"
	MetricNameMoneySpent       = "money_spent_total"
	MetricNameMoneyDeposited   = "money_deposited_total"
	MetricNameSessionsCreated  = "sessions_created_total"
	MetricNameSessionsEvicted  = "sessions_evicted_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Business metric help text
const (
	HelpTextCasesOpened      = "Total number of cases opened"
	HelpTextDropsResolved    = "Total number of drops kept or sold"
	HelpTextDropQuality      = "Quality of opened drops"
	HelpTextCraftsTotal      = "Total number of craft attempts"
	HelpTextItemsBurned      = "Total number of item instances burned by crafting"
	HelpTextItemsSynthesized = "Total number of templates synthesized by crafting"
	HelpTextShopPurchases    = "Total number of shop purchases"
	HelpTextItemsSold        = "Total number of items sold"
	HelpTextMoneyEarned      = "Total money credited from selling drops and items"
	HelpTextMoneySpent       = "Total money spent on shop purchases and crafting fees"
	HelpTextMoneyDeposited   = "Total money deposited into wallets"
	HelpTextSessionsCreated  = "Total number of new player sessions"
	HelpTextSessionsEvicted  = "Total number of sessions evicted from the cache"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelCase    = "case"
	LabelChoice  = "choice"
	LabelMode    = "mode"
	LabelOutcome = "outcome"
	LabelItem    = "item"
	LabelListing = "listing"
)

// Label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// QualityBuckets follow the price curve breakpoints.
var QualityBuckets = []float64{0.5, 0.75, 0.9, 0.95, 0.99, 0.995, 0.999}

// Log messages
const (
	LogMsgMetricsRecorded = "Recorded event metrics"
	LogMsgPayloadDecode   = "Failed to decode event payload for metrics"
)
