package metrics

import (
	"context"

	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/logger"
)

// EventMetricsCollector subscribes to economy events and records business metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every economy event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range []event.Type{
		event.CaseOpened,
		event.DropResolved,
		event.CraftCompleted,
		event.ShopPurchased,
		event.ItemSold,
		event.FundsDeposited,
	} {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent updates metrics for one event
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.CaseOpened:
		var p event.CaseOpenedPayloadV1
		if p, err = event.DecodePayload[event.CaseOpenedPayloadV1](evt.Payload); err == nil {
			CasesOpened.WithLabelValues(p.CaseID).Inc()
			DropQuality.Observe(p.Quality)
		}

	case event.DropResolved:
		var p event.DropResolvedPayloadV1
		if p, err = event.DecodePayload[event.DropResolvedPayloadV1](evt.Payload); err == nil {
			DropsResolved.WithLabelValues(p.Choice).Inc()
			if p.Credited > 0 {
				MoneyEarned.Add(float64(p.Credited))
			}
		}

	case event.CraftCompleted:
		var p event.CraftCompletedPayloadV1
		if p, err = event.DecodePayload[event.CraftCompletedPayloadV1](evt.Payload); err == nil {
			outcome := OutcomeFailure
			if p.Success {
				outcome = OutcomeSuccess
			}
			CraftsTotal.WithLabelValues(p.Mode, outcome).Inc()
			ItemsBurned.Add(float64(p.Burned))
			MoneySpent.Add(float64(p.Cost))
			if p.Success && p.Synthesized {
				ItemsSynthesized.Inc()
			}
		}

	case event.ShopPurchased:
		var p event.ShopPurchasedPayloadV1
		if p, err = event.DecodePayload[event.ShopPurchasedPayloadV1](evt.Payload); err == nil {
			ShopPurchases.WithLabelValues(p.ListingID).Inc()
			MoneySpent.Add(float64(p.Price))
		}

	case event.ItemSold:
		var p event.ItemSoldPayloadV1
		if p, err = event.DecodePayload[event.ItemSoldPayloadV1](evt.Payload); err == nil {
			ItemsSold.WithLabelValues(p.TemplateID).Inc()
			MoneyEarned.Add(float64(p.Amount))
		}

	case event.FundsDeposited:
		var p event.FundsDepositedPayloadV1
		if p, err = event.DecodePayload[event.FundsDepositedPayloadV1](evt.Payload); err == nil {
			MoneyDeposited.Add(float64(p.Amount))
		}
	}

	if err != nil {
		log.Warn(LogMsgPayloadDecode, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
