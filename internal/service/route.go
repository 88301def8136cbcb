package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/shenikar/food_rescue_network/internal/geo"
	"github.com/shenikar/food_rescue_network/internal/models"
	"github.com/sirupsen/logrus"
)

// Коэффициенты минут на километр. Значения намеренно разные:
// предварительный обзор маршрута и детальная оценка при резервировании
// считаются в разных контекстах и не унифицируются.
const (
	previewMinutesPerKm = 2
	detailMinutesPerKm  = 3
)

// maxRouteStops - максимум точек вывоза в одном маршруте
const maxRouteStops = 3

// RouteStop - остановка маршрута с данными пожертвования
type RouteStop struct {
	DonationID  int64           `json:"donation_id"`
	DonorName   string          `json:"donor_name"`
	FoodType    models.FoodType `json:"food_type"`
	Urgency     models.Urgency  `json:"urgency"`
	Coordinates geo.Coordinates `json:"coordinates"`
}

// RoutePlan - результат построения маршрута по доступным пожертвованиям
type RoutePlan struct {
	NoDonations         bool              `json:"no_donations,omitempty"`
	LocationUnavailable bool              `json:"location_unavailable,omitempty"`
	Waypoints           []geo.Coordinates `json:"waypoints,omitempty"`
	Stops               []RouteStop       `json:"stops,omitempty"`
	TotalDistanceKm     float64           `json:"total_distance_km"`
	EstimatedMinutes    int               `json:"estimated_minutes"`
}

// RouteEstimate - оценка маршрута до одного пожертвования
type RouteEstimate struct {
	DistanceKm       float64         `json:"distance_km"`
	EstimatedMinutes int             `json:"estimated_minutes"`
	From             geo.Coordinates `json:"from"`
	To               geo.Coordinates `json:"to"`
	Address          string          `json:"address"`
}

// RouteService определяет контракт оценки маршрутов вывоза
type RouteService interface {
	PlanRoute(ctx context.Context, origin *geo.Coordinates) (*RoutePlan, error)
	RouteToDonation(ctx context.Context, origin *geo.Coordinates, id int64) (*RouteEstimate, error)
}

type routeService struct {
	store  ListingStore
	logger *logrus.Logger
}

// NewRouteService создает сервис оценки маршрутов
func NewRouteService(store ListingStore, logger *logrus.Logger) RouteService {
	return &routeService{
		store:  store,
		logger: logger,
	}
}

// PlanRoute строит маршрут по доступным пожертвованиям: сортировка по весу
// срочности (стабильная, при равенстве сохраняется исходный порядок),
// не более трех остановок после точки отправления.
func (s *routeService) PlanRoute(ctx context.Context, origin *geo.Coordinates) (*RoutePlan, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "route",
		"method":  "PlanRoute",
	})

	if origin == nil {
		log.Warn("Origin location unavailable, route not calculated")
		return &RoutePlan{LocationUnavailable: true}, nil
	}

	available := s.store.ListDonations(models.StatusAvailable)
	if len(available) == 0 {
		log.Info("No available donations for route planning")
		return &RoutePlan{NoDonations: true}, nil
	}

	sort.SliceStable(available, func(i, j int) bool {
		return available[i].Urgency.Weight() > available[j].Urgency.Weight()
	})

	if len(available) > maxRouteStops {
		available = available[:maxRouteStops]
	}

	waypoints := make([]geo.Coordinates, 0, len(available)+1)
	waypoints = append(waypoints, *origin)
	stops := make([]RouteStop, 0, len(available))
	for _, d := range available {
		point := geo.Coordinates{Latitude: d.Latitude, Longitude: d.Longitude}
		waypoints = append(waypoints, point)
		stops = append(stops, RouteStop{
			DonationID:  d.ID,
			DonorName:   d.DonorName,
			FoodType:    d.FoodType,
			Urgency:     d.Urgency,
			Coordinates: point,
		})
	}

	distance := geo.PathDistance(waypoints)
	plan := &RoutePlan{
		Waypoints:        waypoints,
		Stops:            stops,
		TotalDistanceKm:  math.Round(distance*10) / 10,
		EstimatedMinutes: int(math.Round(distance * previewMinutesPerKm)),
	}

	log.WithFields(logrus.Fields{
		"stops":       len(stops),
		"distance_km": plan.TotalDistanceKm,
	}).Info("Route plan calculated")
	return plan, nil
}

// RouteToDonation оценивает маршрут от точки отправления до одного пожертвования
func (s *routeService) RouteToDonation(ctx context.Context, origin *geo.Coordinates, id int64) (*RouteEstimate, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "route",
		"method":      "RouteToDonation",
		"donation_id": id,
	})

	if origin == nil {
		return nil, ErrLocationUnavailable
	}

	donation, err := s.store.GetDonation(id)
	if err != nil {
		log.WithError(err).Warn("Donation not found for route estimate")
		return nil, fmt.Errorf("service: could not estimate route: %w", err)
	}

	to := geo.Coordinates{Latitude: donation.Latitude, Longitude: donation.Longitude}
	distance := geo.Distance(*origin, to)

	return &RouteEstimate{
		DistanceKm:       math.Round(distance*10) / 10,
		EstimatedMinutes: int(math.Round(distance * detailMinutesPerKm)),
		From:             *origin,
		To:               to,
		Address:          donation.Address,
	}, nil
}
