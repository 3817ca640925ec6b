package observer

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// EventType represents the type of validation event
type EventType string

const (
	// ValidationStarted when a quality validation begins
	ValidationStarted EventType = "validation_started"
	// ValidationCompleted when a validation finishes with a verdict
	ValidationCompleted EventType = "validation_completed"
	// ValidationFailed when a validation cannot produce a verdict
	ValidationFailed EventType = "validation_failed"
	// ImageFetched when an image is successfully fetched and decoded
	ImageFetched EventType = "image_fetched"
	// ImageFetchFailed when an image fetch or decode fails
	ImageFetchFailed EventType = "image_fetch_failed"
)

// ValidationEvent describes one step of a validation's lifecycle.
type ValidationEvent struct {
	EventType      EventType              `json:"event_type"`
	Timestamp      time.Time              `json:"timestamp"`
	ImageURL       string                 `json:"image_url,omitempty"`
	Preset         string                 `json:"preset,omitempty"`
	Valid          bool                   `json:"valid"`
	IssueCount     int                    `json:"issue_count"`
	ProcessingTime time.Duration          `json:"processing_time"`
	ErrorMessage   string                 `json:"error_message,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// Observer defines the interface for event observers
type Observer interface {
	OnEvent(ctx context.Context, event ValidationEvent)
	GetObserverName() string
}

// Subject defines the interface for event publishers
type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	NotifyObservers(ctx context.Context, event ValidationEvent)
}

// LoggingObserver logs validation events
type LoggingObserver struct {
	logger *logrus.Logger
}

// NewLoggingObserver creates a new logging observer
func NewLoggingObserver(logger *logrus.Logger) Observer {
	return &LoggingObserver{logger: logger}
}

// OnEvent handles validation events by logging them
func (o *LoggingObserver) OnEvent(ctx context.Context, event ValidationEvent) {
	fields := logrus.Fields{
		"event_type":      event.EventType,
		"image_url":       event.ImageURL,
		"preset":          event.Preset,
		"processing_time": event.ProcessingTime,
	}
	if event.ErrorMessage != "" {
		fields["error"] = event.ErrorMessage
	}
	for k, v := range event.Metadata {
		fields[k] = v
	}

	switch event.EventType {
	case ValidationStarted:
		o.logger.WithFields(fields).Debug("Quality validation started")
	case ValidationCompleted:
		fields["valid"] = event.Valid
		fields["issue_count"] = event.IssueCount
		o.logger.WithFields(fields).Info("Quality validation completed")
	case ValidationFailed:
		o.logger.WithFields(fields).Error("Quality validation failed")
	case ImageFetched:
		o.logger.WithFields(fields).Debug("Image fetched successfully")
	case ImageFetchFailed:
		o.logger.WithFields(fields).Error("Image fetch failed")
	default:
		o.logger.WithFields(fields).Info("Validation event occurred")
	}
}

// GetObserverName returns the observer name
func (o *LoggingObserver) GetObserverName() string {
	return "logging_observer"
}

// MetricsObserver aggregates counters from validation events
type MetricsObserver struct {
	mu                  sync.RWMutex
	totalValidations    int64
	passedValidations   int64
	rejectedValidations int64
	failedValidations   int64
	fetchFailures       int64
	totalProcessingTime time.Duration
}

// NewMetricsObserver creates a new metrics observer
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{}
}

// OnEvent handles validation events by updating counters
func (o *MetricsObserver) OnEvent(ctx context.Context, event ValidationEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch event.EventType {
	case ValidationStarted:
		o.totalValidations++
	case ValidationCompleted:
		if event.Valid {
			o.passedValidations++
		} else {
			o.rejectedValidations++
		}
		o.totalProcessingTime += event.ProcessingTime
	case ValidationFailed:
		o.failedValidations++
	case ImageFetchFailed:
		o.fetchFailures++
	}
}

// GetObserverName returns the observer name
func (o *MetricsObserver) GetObserverName() string {
	return "metrics_observer"
}

// Snapshot returns the current counters
func (o *MetricsObserver) Snapshot() map[string]interface{} {
	o.mu.RLock()
	defer o.mu.RUnlock()

	completed := o.passedValidations + o.rejectedValidations
	avgProcessingTime := time.Duration(0)
	if completed > 0 {
		avgProcessingTime = o.totalProcessingTime / time.Duration(completed)
	}

	return map[string]interface{}{
		"total_validations":     o.totalValidations,
		"passed_validations":    o.passedValidations,
		"rejected_validations":  o.rejectedValidations,
		"failed_validations":    o.failedValidations,
		"fetch_failures":        o.fetchFailures,
		"total_processing_time": o.totalProcessingTime.String(),
		"avg_processing_time":   avgProcessingTime.String(),
	}
}

// EventPublisher implements the Subject interface
type EventPublisher struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher() Subject {
	return &EventPublisher{
		observers: make([]Observer, 0),
	}
}

// Subscribe adds an observer
func (p *EventPublisher) Subscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, observer)
}

// Unsubscribe removes an observer
func (p *EventPublisher) Unsubscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, obs := range p.observers {
		if obs.GetObserverName() == observer.GetObserverName() {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			break
		}
	}
}

// NotifyObservers notifies all observers of an event
func (p *EventPublisher) NotifyObservers(ctx context.Context, event ValidationEvent) {
	p.mu.RLock()
	observers := make([]Observer, len(p.observers))
	copy(observers, p.observers)
	p.mu.RUnlock()

	for _, observer := range observers {
		go func(obs Observer) {
			defer func() {
				if r := recover(); r != nil {
					logrus.WithField("observer", obs.GetObserverName()).
						WithField("panic", r).
						Error("Observer panicked while handling event")
				}
			}()
			obs.OnEvent(ctx, event)
		}(observer)
	}
}
