package events

import (
	"context"
	"time"

	"atlascars/pkg/kafka"
	"atlascars/pkg/logger"
	"atlascars/pkg/model"
)

const (
	EventBookingCreated = "booking.created"

	sourceService = "catalog"
)

// LeadPublisher emits booking lead events for downstream CRM consumers.
// Publishing is best effort; a broker outage never blocks a booking.
type LeadPublisher interface {
	BookingCreated(ctx context.Context, booking *model.Booking)
	Close() error
}

// BookingCreatedEvent is the payload of EventBookingCreated messages.
type BookingCreatedEvent struct {
	BookingID      string    `json:"booking_id"`
	CarID          string    `json:"car_id"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email,omitempty"`
	PickupDate     time.Time `json:"pickup_date"`
	ReturnDate     time.Time `json:"return_date"`
	PickupLocation string    `json:"pickup_location,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type kafkaLeadPublisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewKafkaLeadPublisher(brokers []string, topic string, log *logger.Logger) (LeadPublisher, error) {
	producer, err := kafka.NewProducer(brokers, topic)
	if err != nil {
		return nil, err
	}

	log.Info("Kafka lead publisher initialized", "topic", topic)

	return &kafkaLeadPublisher{
		producer: producer,
		log:      log,
	}, nil
}

func (p *kafkaLeadPublisher) BookingCreated(ctx context.Context, booking *model.Booking) {
	event := BookingCreatedEvent{
		BookingID:      booking.ID,
		CarID:          booking.CarID,
		FullName:       booking.FullName,
		Phone:          booking.Phone,
		Email:          booking.Email,
		PickupDate:     booking.PickupDate,
		ReturnDate:     booking.ReturnDate,
		PickupLocation: booking.PickupLocation,
		CreatedAt:      booking.CreatedAt,
	}

	// Keyed by phone so all leads from one customer land on one partition.
	msg := kafka.NewMessage().
		WithKey(booking.Phone).
		WithValue(event).
		WithEventType(EventBookingCreated).
		WithSource(sourceService).
		Build()

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Error("Failed to publish booking lead event",
			"booking_id", booking.ID,
			"error", err,
		)
		return
	}

	p.log.Debug("Booking lead event published", "booking_id", booking.ID)
}

func (p *kafkaLeadPublisher) Close() error {
	return p.producer.Close()
}

// noopLeadPublisher is used when no brokers are configured.
type noopLeadPublisher struct{}

func NewNoopLeadPublisher() LeadPublisher { return noopLeadPublisher{} }

func (noopLeadPublisher) BookingCreated(context.Context, *model.Booking) {}

func (noopLeadPublisher) Close() error { return nil }
