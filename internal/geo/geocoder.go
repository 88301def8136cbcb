package geo

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
)

// Bounds - ограничивающий прямоугольник для генерации координат
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// Contains проверяет попадание точки в прямоугольник
func (b Bounds) Contains(c Coordinates) bool {
	return c.Latitude >= b.MinLat && c.Latitude <= b.MaxLat &&
		c.Longitude >= b.MinLng && c.Longitude <= b.MaxLng
}

// DefaultBounds - зона покрытия по умолчанию (Нью-Йорк)
func DefaultBounds() Bounds {
	return Bounds{
		MinLat: 40.4774,
		MaxLat: 40.9176,
		MinLng: -74.2591,
		MaxLng: -73.7004,
	}
}

// Geocoder преобразует адрес в координаты
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Coordinates, error)
}

// RandomGeocoder - заглушка сервиса геокодирования:
// возвращает равномерно случайную точку в пределах зоны покрытия
type RandomGeocoder struct {
	bounds Bounds

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomGeocoder создает геокодер с заданной зоной и источником случайности
func NewRandomGeocoder(bounds Bounds, seed int64) *RandomGeocoder {
	return &RandomGeocoder{
		bounds: bounds,
		rnd:    rand.New(rand.NewSource(seed)),
	}
}

// Geocode возвращает случайную точку внутри зоны покрытия
func (g *RandomGeocoder) Geocode(_ context.Context, address string) (Coordinates, error) {
	if address == "" {
		return Coordinates{}, fmt.Errorf("geocoder: empty address")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return Coordinates{
		Latitude:  g.bounds.MinLat + g.rnd.Float64()*(g.bounds.MaxLat-g.bounds.MinLat),
		Longitude: g.bounds.MinLng + g.rnd.Float64()*(g.bounds.MaxLng-g.bounds.MinLng),
	}, nil
}
