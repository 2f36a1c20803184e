// Package events fans emitted notifications out to an AMQP exchange so
// external delivery channels (email, SMS, webhooks) can subscribe. The
// publisher is optional and fire-and-forget: the in-app record is the
// source of truth, and a publish failure never fails a workflow.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"property-service/internal/model"
	"property-service/pkg/config"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// NotificationPublisher publishes notification events to a fanout exchange.
type NotificationPublisher struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	log        *zap.Logger
}

// NewNotificationPublisher dials the broker and declares the exchange
func NewNotificationPublisher(cfg *config.Config, log *zap.Logger) (*NotificationPublisher, error) {
	conn, err := amqp.Dial(cfg.Events.AMQPURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial AMQP broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open AMQP channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Events.Exchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %q: %w", cfg.Events.Exchange, err)
	}

	log.Info("Notification event publisher connected",
		zap.String("exchange", cfg.Events.Exchange))

	return &NotificationPublisher{
		connection: conn,
		channel:    ch,
		exchange:   cfg.Events.Exchange,
		log:        log,
	}, nil
}

// PublishNotification sends one notification event to the exchange
func (p *NotificationPublisher) PublishNotification(n model.Notification) error {
	if p.channel == nil || p.connection == nil || p.connection.IsClosed() {
		return fmt.Errorf("publisher is not connected")
	}

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		string(n.Type), // routing key carries the notification type
		false,          // mandatory
		false,          // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   n.Timestamp,
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish notification event: %w", err)
	}

	p.log.Debug("Notification event published",
		zap.String("notification_id", n.ID),
		zap.String("type", string(n.Type)))
	return nil
}

// Close shuts the channel and connection down
func (p *NotificationPublisher) Close() error {
	var firstErr error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			firstErr = err
		}
		p.channel = nil
	}
	if p.connection != nil {
		if err := p.connection.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		p.connection = nil
	}
	return firstErr
}
