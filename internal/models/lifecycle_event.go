package models

import (
	"time"
)

// Виды событий жизненного цикла пожертвования
const (
	EventPosted    = "posted"
	EventReserved  = "reserved"
	EventInTransit = "in-transit"
	EventCompleted = "completed"
)

// LifecycleEvent - архивная запись о событии жизненного цикла.
// Архив только дописывается и не является источником истины.
type LifecycleEvent struct {
	ID         int64     `json:"id"`
	DonationID int64     `json:"donation_id"`
	Kind       string    `json:"kind"`
	Payload    []byte    `json:"payload,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
