package models

import (
	"time"
)

// Organization - зарегистрированная организация-получатель.
// Запись создается один раз и дальше не редактируется.
type Organization struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Contact      string    `json:"contact"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Capacity     int       `json:"capacity"`
	Preferences  string    `json:"preferences,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}
