package models

import (
	"time"
)

// DonationStatus - статус жизненного цикла пожертвования
type DonationStatus string

const (
	StatusAvailable DonationStatus = "available"
	StatusReserved  DonationStatus = "reserved"
	StatusInTransit DonationStatus = "in-transit"
	StatusCompleted DonationStatus = "completed"
)

// statusRank задает порядок переходов: регрессия статуса запрещена
var statusRank = map[DonationStatus]int{
	StatusAvailable: 0,
	StatusReserved:  1,
	StatusInTransit: 2,
	StatusCompleted: 3,
}

// Known возвращает true, если статус известен системе
func (s DonationStatus) Known() bool {
	_, ok := statusRank[s]
	return ok
}

// CanAdvanceTo проверяет, что переход идет только вперед по жизненному циклу
func (s DonationStatus) CanAdvanceTo(next DonationStatus) bool {
	cur, ok := statusRank[s]
	if !ok {
		return false
	}
	nxt, ok := statusRank[next]
	if !ok {
		return false
	}
	return nxt > cur
}

// FoodType - категория передаваемых продуктов
type FoodType string

const (
	FoodPrepared FoodType = "prepared"
	FoodProduce  FoodType = "produce"
	FoodDairy    FoodType = "dairy"
	FoodBaked    FoodType = "baked"
	FoodPackaged FoodType = "packaged"
	FoodFrozen   FoodType = "frozen"
)

var foodTypeLabels = map[FoodType]string{
	FoodPrepared: "Prepared Meals",
	FoodProduce:  "Fresh Produce",
	FoodDairy:    "Dairy Products",
	FoodBaked:    "Baked Goods",
	FoodPackaged: "Packaged Foods",
	FoodFrozen:   "Frozen Items",
}

// Known возвращает true, если категория известна системе
func (f FoodType) Known() bool {
	_, ok := foodTypeLabels[f]
	return ok
}

// Label возвращает человекочитаемое название категории
func (f FoodType) Label() string {
	if label, ok := foodTypeLabels[f]; ok {
		return label
	}
	return string(f)
}

// QuantityUnit - единица измерения количества: порции для готовой еды, фунты для остального
func (f FoodType) QuantityUnit() string {
	if f == FoodPrepared {
		return "servings"
	}
	return "lbs"
}

// Urgency - приоритет вывоза пожертвования
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// Weight возвращает вес срочности для сортировки маршрута
func (u Urgency) Weight() int {
	switch u {
	case UrgencyHigh:
		return 3
	case UrgencyMedium:
		return 2
	case UrgencyLow:
		return 1
	}
	return 0
}

// Donation - запись о пожертвовании еды (единица инвентаря)
type Donation struct {
	ID            int64          `json:"id"`
	DonorName     string         `json:"donor_name"`
	ContactPerson string         `json:"contact_person"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	FoodType      FoodType       `json:"food_type"`
	Quantity      int            `json:"quantity"`
	Expiry        time.Time      `json:"expiry"`
	Urgency       Urgency        `json:"urgency"`
	Notes         string         `json:"notes,omitempty"`
	Status        DonationStatus `json:"status"`
	PostedAt      time.Time      `json:"posted_at"`
	ReservedBy    string         `json:"reserved_by,omitempty"`
	PickupTime    string         `json:"pickup_time,omitempty"`
}
