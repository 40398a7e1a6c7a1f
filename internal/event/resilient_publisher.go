package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/halcyonworks/QuarterLife_Go/internal/logger"
)

// retryEntry tracks an event awaiting republish
type retryEntry struct {
	event     Event
	attempt   int
	lastError error
}

// ResilientPublisher wraps a Bus with retry and dead-letter handling.
// Failed publishes are queued and retried with exponential backoff;
// events that exhaust their retries are appended to a dead-letter file.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	shutdown   chan struct{}
	deadLetter *DeadLetterWriter
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a publisher with a running retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dead-letter file: %w", err)
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		shutdown:   make(chan struct{}),
		deadLetter: dlw,
	}

	p.wg.Add(1)
	go p.retryWorker()

	return p, nil
}

// PublishWithRetry attempts to publish immediately and queues the event for
// retry on failure. If the retry queue is full the event goes straight to the
// dead-letter file.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	log := logger.FromContext(ctx)
	log.Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)

	entry := retryEntry{event: event, attempt: 1, lastError: err}
	select {
	case p.retryQueue <- entry:
	default:
		log.Error(LogMsgRetryQueueFull, "event_type", event.Type)
		if dlErr := p.deadLetter.Write(event, 1, err); dlErr != nil {
			log.Error(LogMsgDeadLetterWriteFailed, "error", dlErr)
		}
	}
}

// Publish satisfies the Bus interface so the publisher can stand in for the
// wrapped bus. It delegates to PublishWithRetry and returns nil once the
// event is accepted; delivery failures are handled by the retry worker and
// the dead-letter file, not surfaced to the caller.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the wrapped bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

// retryWorker processes the retry queue until shutdown
func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	ctx := context.Background()
	log := logger.FromContext(ctx)

	for {
		select {
		case <-p.shutdown:
			p.drainQueue(ctx)
			return
		case entry := <-p.retryQueue:
			delay := CalculateRetryDelay(p.retryDelay, entry.attempt)
			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-p.shutdown:
				// Shutting down, attempt once without waiting
				timer.Stop()
			}

			err := p.bus.Publish(ctx, entry.event)
			if err == nil {
				log.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempt", entry.attempt)
				continue
			}

			if entry.attempt >= p.maxRetries {
				log.Warn(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempt+1)
				if dlErr := p.deadLetter.Write(entry.event, entry.attempt+1, err); dlErr != nil {
					log.Error(LogMsgDeadLetterWriteFailed, "error", dlErr)
				}
				continue
			}

			log.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempt, "error", err)
			entry.attempt++
			entry.lastError = err
			select {
			case p.retryQueue <- entry:
			default:
				if dlErr := p.deadLetter.Write(entry.event, entry.attempt, err); dlErr != nil {
					log.Error(LogMsgDeadLetterWriteFailed, "error", dlErr)
				}
			}
		}
	}
}

// drainQueue processes remaining queued events without backoff delays.
// Events that still fail are written to the dead-letter file.
func (p *ResilientPublisher) drainQueue(ctx context.Context) {
	log := logger.FromContext(ctx)
	drained := 0

	for {
		select {
		case entry := <-p.retryQueue:
			drained++
			if err := p.bus.Publish(ctx, entry.event); err != nil {
				if dlErr := p.deadLetter.Write(entry.event, entry.attempt+1, err); dlErr != nil {
					log.Error(LogMsgDeadLetterWriteFailedS, "error", dlErr)
				}
			}
		default:
			if drained > 0 {
				log.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

// Shutdown stops the retry worker, drains the queue and closes the
// dead-letter file. Returns an error if the worker does not finish before
// the context deadline.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	close(p.shutdown)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return p.deadLetter.Close()
	case <-ctx.Done():
		logger.FromContext(ctx).Error(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
