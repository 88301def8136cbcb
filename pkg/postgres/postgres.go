package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/food_rescue_network/internal/config"
)

// NewPostgresDB создает пул соединений PostgreSQL.
// Подключение повторяется с экспоненциальной задержкой: ограниченное число
// попыток и жесткий таймаут, чтобы старт завершался явной ошибкой, а не висел.
func NewPostgresDB(ctx context.Context, appCfg *config.Config) (*pgxpool.Pool, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, appCfg.ConnectTimeout)
	defer cancel()

	var lastErr error
	delay := appCfg.ConnectBaseDelay
	for attempt := 1; attempt <= appCfg.ConnectMaxAttempts; attempt++ {
		dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
		if err != nil {
			lastErr = fmt.Errorf("не удалось создать пул соединений: %w", err)
		} else if err := dbpool.Ping(ctx); err != nil {
			dbpool.Close()
			lastErr = fmt.Errorf("не удалось выполнить ping к postgres: %w", err)
		} else {
			return dbpool, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("postgres connect timed out after %d attempts: %w", attempt, lastErr)
		case <-time.After(delay):
			delay *= 2
		}
	}

	return nil, fmt.Errorf("postgres unavailable after %d attempts: %w", appCfg.ConnectMaxAttempts, lastErr)
}
