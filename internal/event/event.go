package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// Common event types
const (
	EducationEnrolled        Type = "education.enrolled"
	EducationQuarterAdvanced Type = "education.quarter_advanced"
	EducationGraduated       Type = "education.graduated"
	EducationDroppedOut      Type = "education.dropped_out"

	PlayerNewGame Type = "player.new_game"
)

// Typed event payloads for type safety

// EnrolledPayloadV1 is the typed payload for enrollment events
type EnrolledPayloadV1 struct {
	PlayerID    string `json:"player_id"`
	ProgramID   string `json:"program_id"`
	Title       string `json:"title"`
	Kind        string `json:"kind"`
	Track       string `json:"track"`
	CostCharged int64  `json:"cost_charged"`
	Timestamp   int64  `json:"timestamp"`
}

// QuarterAdvancedPayloadV1 is the typed payload for quarter-tick events
type QuarterAdvancedPayloadV1 struct {
	PlayerID      string  `json:"player_id"`
	Track         string  `json:"track"`
	ProgramID     string  `json:"program_id"`
	Progress      float64 `json:"progress"`
	CurrentPeriod int     `json:"current_period"`
	Timestamp     int64   `json:"timestamp"`
}

// GraduatedPayloadV1 is the typed payload for graduation events
type GraduatedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	ProgramID string `json:"program_id"`
	Title     string `json:"title"`
	Kind      string `json:"kind"`
	Track     string `json:"track"`
	Timestamp int64  `json:"timestamp"`
}

// DroppedOutPayloadV1 is the typed payload for drop-out events
type DroppedOutPayloadV1 struct {
	PlayerID       string  `json:"player_id"`
	ProgramID      string  `json:"program_id"`
	Title          string  `json:"title"`
	Track          string  `json:"track"`
	ProgressAtDrop float64 `json:"progress_at_drop"`
	Timestamp      int64   `json:"timestamp"`
}

// NewGamePayloadV1 is the typed payload for new-game resets
type NewGamePayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewEnrolledEvent creates a new enrollment event
func NewEnrolledEvent(playerID string, program domain.ProgramDefinition, track domain.Track, costCharged int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EducationEnrolled,
		Payload: EnrolledPayloadV1{
			PlayerID:    playerID,
			ProgramID:   program.ID,
			Title:       program.Title,
			Kind:        string(program.Kind),
			Track:       string(track),
			CostCharged: costCharged,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewQuarterAdvancedEvent creates a quarter-tick event for one track
func NewQuarterAdvancedEvent(playerID string, track domain.Track, programID string, progress float64, currentPeriod int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EducationQuarterAdvanced,
		Payload: QuarterAdvancedPayloadV1{
			PlayerID:      playerID,
			Track:         string(track),
			ProgramID:     programID,
			Progress:      progress,
			CurrentPeriod: currentPeriod,
			Timestamp:     time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewGraduatedEvent creates a new graduation event
func NewGraduatedEvent(playerID string, program domain.ProgramDefinition, track domain.Track) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EducationGraduated,
		Payload: GraduatedPayloadV1{
			PlayerID:  playerID,
			ProgramID: program.ID,
			Title:     program.Title,
			Kind:      string(program.Kind),
			Track:     string(track),
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewDroppedOutEvent creates a new drop-out event
func NewDroppedOutEvent(playerID string, track domain.Track, program domain.ProgramDefinition, progressAtDrop float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EducationDroppedOut,
		Payload: DroppedOutPayloadV1{
			PlayerID:       playerID,
			ProgramID:      program.ID,
			Title:          program.Title,
			Track:          string(track),
			ProgressAtDrop: progressAtDrop,
			Timestamp:      time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewGameEvent creates a new-game reset event
func NewGameEvent(playerID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerNewGame,
		Payload: NewGamePayloadV1{
			PlayerID:  playerID,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// in subscription order; a failing handler does not stop the others.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
