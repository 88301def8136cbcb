package geo

import (
	"math"
)

// earthRadiusKm - радиус Земли в километрах для формулы гаверсинусов
const earthRadiusKm = 6371.0

// Coordinates - пара широта/долгота в градусах
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid проверяет, что точка лежит в пределах земных координат
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Distance возвращает расстояние по большому кругу между двумя точками в километрах
func Distance(a, b Coordinates) float64 {
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Latitude*math.Pi/180)*math.Cos(b.Latitude*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// PathDistance суммирует расстояния между последовательными точками маршрута
func PathDistance(points []Coordinates) float64 {
	total := 0.0
	for i := 0; i < len(points)-1; i++ {
		total += Distance(points[i], points[i+1])
	}
	return total
}
