package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Lifecycle Config
	// Задержки демо-перехода статусов после резервирования
	PickupDelay   time.Duration `env:"PICKUP_DELAY" envDefault:"15s"`
	DeliveryDelay time.Duration `env:"DELIVERY_DELAY" envDefault:"30s"`
	// Строгий режим резервирования: только из статуса available
	ReserveStrict bool `env:"RESERVE_STRICT" envDefault:"false"`

	// Feed Config
	FeedCapacity int  `env:"FEED_CAPACITY" envDefault:"10"`
	FeedSimulate bool `env:"FEED_SIMULATE" envDefault:"false"`

	// Демонстрационное наполнение хранилища при старте
	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`

	// Geo Config
	// Зона покрытия геокодера-заглушки
	GeoMinLat float64 `env:"GEO_MIN_LAT" envDefault:"40.4774"`
	GeoMaxLat float64 `env:"GEO_MAX_LAT" envDefault:"40.9176"`
	GeoMinLng float64 `env:"GEO_MIN_LNG" envDefault:"-74.2591"`
	GeoMaxLng float64 `env:"GEO_MAX_LNG" envDefault:"-73.7004"`
	// Точка по умолчанию, когда местоположение клиента определить не удалось
	DefaultLat float64 `env:"DEFAULT_LAT" envDefault:"40.7589"`
	DefaultLng float64 `env:"DEFAULT_LNG" envDefault:"-73.9851"`
	// Путь до базы GeoIP; пустой - локатор работает в деградированном режиме
	GeoIPDBPath string `env:"GEOIP_DB_PATH"`

	// Startup Config
	ConnectMaxAttempts int           `env:"CONNECT_MAX_ATTEMPTS" envDefault:"5"`
	ConnectBaseDelay   time.Duration `env:"CONNECT_BASE_DELAY" envDefault:"500ms"`
	ConnectTimeout     time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		WebhookURL:         os.Getenv("WEBHOOK_URL"),
		WebhookSecret:      os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:  getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:   getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		PickupDelay:        getEnvAsDuration("PICKUP_DELAY", 15*time.Second),
		DeliveryDelay:      getEnvAsDuration("DELIVERY_DELAY", 30*time.Second),
		ReserveStrict:      getEnvAsBool("RESERVE_STRICT", false),
		FeedCapacity:       getEnvAsInt("FEED_CAPACITY", 10),
		FeedSimulate:       getEnvAsBool("FEED_SIMULATE", false),
		SeedDemo:           getEnvAsBool("SEED_DEMO", false),
		GeoMinLat:          getEnvAsFloat("GEO_MIN_LAT", 40.4774),
		GeoMaxLat:          getEnvAsFloat("GEO_MAX_LAT", 40.9176),
		GeoMinLng:          getEnvAsFloat("GEO_MIN_LNG", -74.2591),
		GeoMaxLng:          getEnvAsFloat("GEO_MAX_LNG", -73.7004),
		DefaultLat:         getEnvAsFloat("DEFAULT_LAT", 40.7589),
		DefaultLng:         getEnvAsFloat("DEFAULT_LNG", -73.9851),
		GeoIPDBPath:        os.Getenv("GEOIP_DB_PATH"),
		ConnectMaxAttempts: getEnvAsInt("CONNECT_MAX_ATTEMPTS", 5),
		ConnectBaseDelay:   getEnvAsDuration("CONNECT_BASE_DELAY", 500*time.Millisecond),
		ConnectTimeout:     getEnvAsDuration("CONNECT_TIMEOUT", 10*time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
