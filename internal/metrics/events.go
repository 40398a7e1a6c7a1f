package metrics

import (
	"context"

	"github.com/halcyonworks/QuarterLife_Go/internal/event"
	"github.com/halcyonworks/QuarterLife_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.EducationEnrolled,
		event.EducationQuarterAdvanced,
		event.EducationGraduated,
		event.EducationDroppedOut,
		event.PlayerNewGame,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.EducationEnrolled:
		payload, err := event.DecodePayload[event.EnrolledPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		Enrollments.WithLabelValues(payload.Kind, payload.Track).Inc()
		TuitionCharged.Add(float64(payload.CostCharged))

	case event.EducationQuarterAdvanced:
		QuartersAdvanced.Inc()

	case event.EducationGraduated:
		payload, err := event.DecodePayload[event.GraduatedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		Graduations.WithLabelValues(payload.Kind, payload.Track).Inc()

	case event.EducationDroppedOut:
		payload, err := event.DecodePayload[event.DroppedOutPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		Dropouts.WithLabelValues(payload.Track).Inc()

	case event.PlayerNewGame:
		NewGamesStarted.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
