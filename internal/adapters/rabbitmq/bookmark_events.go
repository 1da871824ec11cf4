package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wojg58/Thursday/internal/constants"
	"github.com/wojg58/Thursday/internal/contextkeys"
	"github.com/wojg58/Thursday/internal/core/domain"
	"github.com/wojg58/Thursday/internal/core/port"
)

const publishTimeout = 10 * time.Second

// Publisher - то, что адаптер использует от rabbitmq_producer.Publisher.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// EventValidator проверяет тело события перед отправкой.
type EventValidator interface {
	ValidateEvent(eventType, eventVersion string, body []byte) error
}

// BookmarkEventsAdapter публикует события закладок в topic-обменник.
type BookmarkEventsAdapter struct {
	producer  Publisher
	validator EventValidator
}

func NewBookmarkEventsAdapter(producer Publisher, validator EventValidator) *BookmarkEventsAdapter {
	return &BookmarkEventsAdapter{producer: producer, validator: validator}
}

var _ port.BookmarkEventsPort = (*BookmarkEventsAdapter)(nil)

type bookmarkEventDTO struct {
	EventID    string `json:"event_id"`
	UserID     string `json:"user_id"`
	ContentID  string `json:"content_id"`
	OccurredAt string `json:"occurred_at"`
}

func (a *BookmarkEventsAdapter) PublishAdded(ctx context.Context, event domain.BookmarkEvent) error {
	return a.publish(ctx, constants.RoutingKeyBookmarkAdded, constants.EventBookmarkAdded, event)
}

func (a *BookmarkEventsAdapter) PublishRemoved(ctx context.Context, event domain.BookmarkEvent) error {
	return a.publish(ctx, constants.RoutingKeyBookmarkRemoved, constants.EventBookmarkRemoved, event)
}

func (a *BookmarkEventsAdapter) publish(ctx context.Context, routingKey, eventType string, event domain.BookmarkEvent) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "BookmarkEventsAdapter",
		"routing_key": routingKey,
		"event_id":    event.EventID,
	})

	body, err := json.Marshal(bookmarkEventDTO{
		EventID:    event.EventID.String(),
		UserID:     event.UserID.String(),
		ContentID:  event.ContentID,
		OccurredAt: event.OccurredAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", eventType, err)
	}

	if a.validator != nil {
		if err := a.validator.ValidateEvent(eventType, constants.EventVersion, body); err != nil {
			logger.Error("Event does not match its contract", err, nil)
			return fmt.Errorf("invalid %s: %w", eventType, err)
		}
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		MessageId:    event.EventID.String(),
		Headers: amqp.Table{
			"event-type":    eventType,
			"event-version": constants.EventVersion,
		},
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		logger.Error("Failed to publish event", err, nil)
		return fmt.Errorf("failed to publish %s: %w", eventType, err)
	}

	logger.Debug("Event published", nil)
	return nil
}

// NoopBookmarkEvents используется, когда RabbitMQ выключен.
type NoopBookmarkEvents struct{}

var _ port.BookmarkEventsPort = NoopBookmarkEvents{}

func (NoopBookmarkEvents) PublishAdded(context.Context, domain.BookmarkEvent) error   { return nil }
func (NoopBookmarkEvents) PublishRemoved(context.Context, domain.BookmarkEvent) error { return nil }
