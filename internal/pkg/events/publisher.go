package events

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/yigit/hostelhub/internal/pkg/logger"
)

// Publisher publishes domain events to a RabbitMQ broker. A Publisher
// with an empty URL is valid and drops every event silently.
type Publisher struct {
	url string
}

// NewPublisher creates a publisher for the given broker URL. An empty
// URL disables publishing.
func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

// Enabled reports whether a broker URL is configured.
func (p *Publisher) Enabled() bool {
	return p.url != ""
}

// Publish marshals the event and delivers it to the named queue.
// The queue is declared durable and messages are marked persistent.
func (p *Publisher) Publish(ctx context.Context, queue string, event interface{}) error {
	if !p.Enabled() {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		logger.Warn().Err(err).Str("queue", queue).Msg("Event broker dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		logger.Warn().Err(err).Str("queue", queue).Msg("Event broker channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare so publish never races queue creation
	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		logger.Warn().Err(err).Str("queue", queue).Msg("Event queue declare failed")
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		logger.Warn().Err(err).Str("queue", queue).Msg("Event marshal failed")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",    // default exchange
		queue, // routing key = queue name
		false, // mandatory
		false, // immediate
		pub,
	); err != nil {
		logger.Warn().Err(err).Str("queue", queue).Msg("Event publish failed")
		return err
	}

	return nil
}
