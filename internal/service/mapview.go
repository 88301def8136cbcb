package service

import (
	"context"
	"fmt"

	"github.com/shenikar/food_rescue_network/internal/models"
	"github.com/sirupsen/logrus"
)

// Цвета маркеров по статусу пожертвования
var statusColors = map[models.DonationStatus]string{
	models.StatusAvailable: "#28a745",
	models.StatusReserved:  "#ffc107",
	models.StatusInTransit: "#17a2b8",
	models.StatusCompleted: "#6c757d",
}

var statusIcons = map[models.DonationStatus]string{
	models.StatusAvailable: "food",
	models.StatusReserved:  "hourglass",
	models.StatusInTransit: "truck",
	models.StatusCompleted: "check",
}

// MapService определяет контракт проекции хранилища на маркеры карты
type MapService interface {
	Markers(ctx context.Context) []models.Marker
}

type mapService struct {
	store  ListingStore
	logger *logrus.Logger
}

// NewMapService создает сервис маркеров карты
func NewMapService(store ListingStore, logger *logrus.Logger) MapService {
	return &mapService{
		store:  store,
		logger: logger,
	}
}

// Markers пересобирает полный набор маркеров с нуля при каждом вызове:
// ровно один маркер на каждое незавершенное пожертвование, завершенные
// отфильтровываются. Стратегия "снести и перестроить" проста и корректна,
// но масштабируется только на небольшие списки.
func (s *mapService) Markers(ctx context.Context) []models.Marker {
	donations := s.store.ListDonations("")

	markers := make([]models.Marker, 0, len(donations))
	for _, d := range donations {
		if d.Status == models.StatusCompleted {
			continue
		}
		markers = append(markers, models.Marker{
			DonationID: d.ID,
			Latitude:   d.Latitude,
			Longitude:  d.Longitude,
			Color:      statusColors[d.Status],
			Icon:       statusIcons[d.Status],
			Pulse:      d.Urgency == models.UrgencyHigh,
			Popup:      popupContent(d),
		})
	}

	s.logger.WithFields(logrus.Fields{
		"service": "map",
		"method":  "Markers",
		"count":   len(markers),
	}).Debug("Marker set rebuilt")
	return markers
}

// popupContent собирает краткую сводку для всплывающей подсказки маркера
func popupContent(d *models.Donation) string {
	summary := fmt.Sprintf("%s: %s, %d %s, %s urgency, %s",
		d.DonorName, d.FoodType.Label(), d.Quantity, d.FoodType.QuantityUnit(), d.Urgency, d.Status)
	if d.Status == models.StatusReserved && d.ReservedBy != "" {
		summary += fmt.Sprintf(" (reserved by %s)", d.ReservedBy)
	}
	return summary
}
