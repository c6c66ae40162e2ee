// Package service holds integrations that sit between the HTTP handlers and
// external systems. Errors here are logged and returned so callers can ignore
// failures without interrupting the main request flow.
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/queue"
	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/repository"
)

// QueuePublisher publishes domain events to RabbitMQ. A fresh connection is
// dialed per publish; booking volume is low enough that connection reuse is
// not worth the channel-recovery bookkeeping.
type QueuePublisher struct {
	URL string
}

func NewQueuePublisher(url string) *QueuePublisher {
	return &QueuePublisher{URL: url}
}

// PublishBookingConfirmed publishes a BookingConfirmedEvent built from the
// booking detail to the "booking.confirmed" queue. It attempts to be robust
// and to never panic; any error is logged and returned so the caller can
// choose to ignore it. Messages are marked as persistent.
func (p *QueuePublisher) PublishBookingConfirmed(ctx context.Context, d repository.BookingDetail) error {
	event := queue.BookingConfirmedEvent{
		BookingID:         d.ID,
		UserID:            d.UserID,
		StationID:         d.StationID,
		StationName:       d.StationName,
		StationBrand:      d.StationBrand,
		FuelType:          d.FuelType,
		VehicleType:       d.VehicleType,
		Quantity:          d.Quantity,
		TimeSlot:          d.TimeSlot,
		BookingDate:       d.BookingDate.Format("2006-01-02"),
		TokenNumber:       d.TokenNumber,
		EstimatedWaitTime: d.EstimatedWaitTime,
		PaymentAmount:     d.PaymentAmount,
		ConfirmedAt:       d.CreatedAt.UTC().Format(time.RFC3339),
	}

	conn, err := amqp.Dial(p.URL)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		"booking.confirmed", // name
		true,                // durable
		false,               // autoDelete
		false,               // exclusive
		false,               // noWait
		nil,                 // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",                  // default exchange
		"booking.confirmed", // routing key = queue name
		false,               // mandatory
		false,               // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}
