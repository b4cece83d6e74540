package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Publisher emits booking lifecycle events to RabbitMQ.  It dials
// per publish and never panics; errors are logged and returned so
// callers can ignore them without interrupting the request flow.
type Publisher struct {
	url string
}

// NewPublisher returns a publisher for the given AMQP broker URL.
func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

// PublishBookingCreated sends a BookingCreatedEvent to the
// booking.created queue.
func (p *Publisher) PublishBookingCreated(ctx context.Context, event BookingCreatedEvent) error {
	return p.publish(ctx, BookingCreatedQueue, event)
}

// PublishBookingCancelled sends a BookingCancelledEvent to the
// booking.cancelled queue.
func (p *Publisher) PublishBookingCancelled(ctx context.Context, event BookingCancelledEvent) error {
	return p.publish(ctx, BookingCancelledQueue, event)
}

// publish declares the queue (idempotent, durable) and sends the
// payload as a persistent JSON message.
func (p *Publisher) publish(ctx context.Context, queueName string, payload any) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		logrus.WithError(err).Warn("rabbitmq: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		logrus.WithError(err).Warn("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		logrus.WithError(err).Warn("rabbitmq: queue declare failed")
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).Warn("rabbitmq: marshal event failed")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		logrus.WithError(err).Warn("rabbitmq: publish failed")
		return err
	}
	return nil
}
