package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateDonationRequest DTO для создания пожертвования
// @Description DTO для создания пожертвования
type CreateDonationRequest struct {
	DonorName     string `json:"donor_name" validate:"required,min=2,max=255"`
	ContactPerson string `json:"contact_person" validate:"required,min=2,max=255"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address" validate:"required"`
	FoodType      string `json:"food_type" validate:"required,oneof=prepared produce dairy baked packaged frozen"`
	Quantity      int    `json:"quantity" validate:"required,gte=1,lte=10000"`
	Expiry        string `json:"expiry" validate:"required"`
	Urgency       string `json:"urgency" validate:"required,oneof=high medium low"`
	Notes         string `json:"notes,omitempty"`
}

// ReserveDonationRequest DTO для резервирования вывоза
// @Description DTO для резервирования вывоза
type ReserveDonationRequest struct {
	Organization string `json:"organization" validate:"required,min=2,max=255"`
	PickupTime   string `json:"pickup_time,omitempty"`
}

// RegisterOrganizationRequest DTO для регистрации организации
// @Description DTO для регистрации организации
type RegisterOrganizationRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Type        string `json:"type" validate:"required"`
	Contact     string `json:"contact" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Capacity    int    `json:"capacity" validate:"required,gt=0"`
	Preferences string `json:"preferences,omitempty"`
}

// DonationResponse DTO для ответа с информацией о пожертвовании
// @Description DTO для ответа с информацией о пожертвовании
type DonationResponse struct {
	ID            int64     `json:"id"`
	DonorName     string    `json:"donor_name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	FoodType      string    `json:"food_type"`
	FoodTypeLabel string    `json:"food_type_label"`
	Quantity      int       `json:"quantity"`
	QuantityUnit  string    `json:"quantity_unit"`
	Expiry        string    `json:"expiry"`
	Urgency       string    `json:"urgency"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status"`
	PostedAt      time.Time `json:"posted_at"`
	PostedAgo     string    `json:"posted_ago"`
	ReservedBy    string    `json:"reserved_by,omitempty"`
	PickupTime    string    `json:"pickup_time,omitempty"`
}

// OrganizationResponse DTO для ответа с информацией об организации
// @Description DTO для ответа с информацией об организации
type OrganizationResponse struct {
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

// LiveUpdateResponse DTO для записи ленты событий
// @Description DTO для записи ленты событий
type LiveUpdateResponse struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
