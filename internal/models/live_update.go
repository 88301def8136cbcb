package models

import (
	"time"

	"github.com/google/uuid"
)

// LiveUpdate - запись ленты событий, отображаемая в боковой панели
type LiveUpdate struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
