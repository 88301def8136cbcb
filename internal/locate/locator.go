package locate

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
	"github.com/shenikar/food_rescue_network/internal/geo"
	"github.com/sirupsen/logrus"
)

// Категории отказов определения местоположения
var (
	ErrDatabaseUnavailable = errors.New("geoip database unavailable")
	ErrAddressUnresolvable = errors.New("client address unresolvable")
	ErrOutsideCoverage     = errors.New("location outside coverage")
)

// Position - результат определения местоположения.
// Degraded означает, что вместо реального местоположения подставлена
// точка по умолчанию.
type Position struct {
	Coordinates geo.Coordinates
	Degraded    bool
}

// Locator определяет местоположение клиента по IP-адресу
type Locator interface {
	Locate(ctx context.Context, ip string) Position
	Close() error
}

// GeoIPLocator - реализация Locator поверх базы MaxMind.
// Любой отказ не фатален: возвращается точка по умолчанию с признаком Degraded.
type GeoIPLocator struct {
	reader   *geoip2.Reader
	fallback geo.Coordinates
	logger   *logrus.Logger
}

// New открывает базу GeoIP. Пустой путь допустим: локатор сразу
// работает в деградированном режиме и всегда отдает точку по умолчанию.
func New(dbPath string, fallback geo.Coordinates, logger *logrus.Logger) (*GeoIPLocator, error) {
	locator := &GeoIPLocator{
		fallback: fallback,
		logger:   logger,
	}

	if dbPath == "" {
		logger.Warn("GeoIP database path is empty, locator runs in degraded mode")
		return locator, nil
	}

	reader, err := geoip2.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open geoip database: %w", err)
	}
	locator.reader = reader
	return locator, nil
}

// Locate определяет координаты клиента по IP.
// Отказ любой категории логируется и заменяется точкой по умолчанию.
func (l *GeoIPLocator) Locate(ctx context.Context, ip string) Position {
	coords, err := l.resolve(ip)
	if err != nil {
		l.logger.WithError(err).WithField("ip", ip).Debug("Falling back to default location")
		return Position{Coordinates: l.fallback, Degraded: true}
	}
	return Position{Coordinates: coords}
}

// Close закрывает базу GeoIP
func (l *GeoIPLocator) Close() error {
	if l.reader == nil {
		return nil
	}
	return l.reader.Close()
}

func (l *GeoIPLocator) resolve(ip string) (geo.Coordinates, error) {
	if l.reader == nil {
		return geo.Coordinates{}, ErrDatabaseUnavailable
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return geo.Coordinates{}, fmt.Errorf("%w: %q", ErrAddressUnresolvable, ip)
	}

	city, err := l.reader.City(parsed)
	if err != nil {
		return geo.Coordinates{}, fmt.Errorf("%w: %v", ErrAddressUnresolvable, err)
	}

	coords := geo.Coordinates{
		Latitude:  city.Location.Latitude,
		Longitude: city.Location.Longitude,
	}
	if coords.Latitude == 0 && coords.Longitude == 0 {
		return geo.Coordinates{}, ErrOutsideCoverage
	}
	return coords, nil
}
