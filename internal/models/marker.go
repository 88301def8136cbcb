package models

// Marker - проекция пожертвования на карту.
// Набор маркеров полностью пересобирается при каждом запросе.
type Marker struct {
	DonationID int64   `json:"donation_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon"`
	Pulse      bool    `json:"pulse"`
	Popup      string  `json:"popup"`
}
