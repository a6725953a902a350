package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/harramos25/GlamBook/internal/audit"
)

const QueueBookingConfirmed = "booking.confirmed"

type BookingConfirmedEvent struct {
	BookingID string    `json:"bookingId"`
	UserID    string    `json:"userId,omitempty"`
	Metadata  any       `json:"metadata,omitempty"`
	At        time.Time `json:"at"`
}

// Publisher forwards booking_created audit events to RabbitMQ. Each publish
// opens its own connection; booking volume is low.
type Publisher struct {
	url string
}

func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

var _ audit.Sink = (*Publisher)(nil)

func (p *Publisher) Write(ctx context.Context, ev audit.Event) error {
	msg, ok := bookingConfirmedFrom(ev)
	if !ok {
		return nil
	}
	return p.publish(ctx, QueueBookingConfirmed, msg)
}

func bookingConfirmedFrom(ev audit.Event) (BookingConfirmedEvent, bool) {
	if ev.Action != audit.ActionBookingCreated || ev.EntityID == nil {
		return BookingConfirmedEvent{}, false
	}

	msg := BookingConfirmedEvent{
		BookingID: *ev.EntityID,
		Metadata:  ev.Metadata,
		At:        ev.At,
	}
	if ev.UserID != nil {
		msg.UserID = *ev.UserID
	}
	return msg, true
}

func (p *Publisher) publish(ctx context.Context, queue string, payload any) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return ch.PublishWithContext(ctx,
		"",    // default exchange
		queue, // routing key = queue name
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}
