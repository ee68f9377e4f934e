package events

import (
	"encoding/json"
	"time"
)

const TopicBookingEvents = "garments.booking.events"

const (
	EventBookingCreated          = "BookingCreated"
	EventBookingStatusChanged    = "BookingStatusChanged"
	EventBookingPaymentSucceeded = "BookingPaymentSucceeded"
	EventBookingDeleted          = "BookingDeleted"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id"` // booking id
	Payload       json.RawMessage `json:"payload"`
}

// ---- Payload types per event ----

type BookingCreatedPayload struct {
	BookingID    string `json:"booking_id"`
	ProductID    string `json:"product_id"`
	UserEmail    string `json:"user_email"`
	ManagerEmail string `json:"manager_email"`
	Quantity     int    `json:"quantity"`
}

type BookingStatusChangedPayload struct {
	BookingID string `json:"booking_id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Note      string `json:"note,omitempty"`
	Location  string `json:"location,omitempty"`
}

type BookingPaymentSucceededPayload struct {
	BookingID     string `json:"booking_id"`
	TransactionID string `json:"transaction_id"`
}

type BookingDeletedPayload struct {
	BookingID string `json:"booking_id"`
}
