package model

import (
	"time"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a persisted reservation request as stored by the catalog
// backend. Dates travel as RFC 3339 over the wire.
type Booking struct {
	ID             string    `json:"id" bson:"id" validate:"omitempty,uuid4"`
	FullName       string    `json:"full_name" bson:"full_name" validate:"required,min=2,max=100"`
	Email          string    `json:"email" bson:"email" validate:"omitempty,email"`
	Phone          string    `json:"phone" bson:"phone" validate:"required"`
	CarID          string    `json:"car_id" bson:"car_id" validate:"required"`
	PickupDate     time.Time `json:"pickup_date" bson:"pickup_date" validate:"required"`
	ReturnDate     time.Time `json:"return_date" bson:"return_date" validate:"required"`
	PickupLocation string    `json:"pickup_location" bson:"pickup_location"`
	Message        string    `json:"message,omitempty" bson:"message,omitempty"`
	Status         string    `json:"status" bson:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// BookingReceipt is the creation acknowledgement returned by
// POST /api/bookings.
type BookingReceipt struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Message   string    `json:"message"`
}

// BookingDraft is the in-progress reservation entered by a visitor.
// Unlike Booking, both dates are optional so that partially filled forms
// can be previewed; required-field enforcement happens at submit time.
type BookingDraft struct {
	FullName       string     `json:"full_name" validate:"required,min=2,max=100"`
	Email          string     `json:"email" validate:"omitempty,email"`
	Phone          string     `json:"phone" validate:"required"`
	CarID          string     `json:"car_id" validate:"required"`
	PickupDate     *time.Time `json:"pickup_date" validate:"required"`
	ReturnDate     *time.Time `json:"return_date" validate:"required"`
	PickupLocation string     `json:"pickup_location"`
	Message        string     `json:"message"`
}
