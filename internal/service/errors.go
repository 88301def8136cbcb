package service

import (
	"errors"
	"fmt"
)

// ErrNotFound - операция ссылается на несуществующую запись
var ErrNotFound = errors.New("listing not found")

// ErrNotAvailable - строгий режим: резервировать можно только доступное пожертвование
var ErrNotAvailable = errors.New("donation is not available for reservation")

// ErrStatusRegression - попытка перевести статус назад по жизненному циклу
var ErrStatusRegression = errors.New("status may only move forward")

// ErrLocationUnavailable - не удалось определить точку отправления для маршрута
var ErrLocationUnavailable = errors.New("origin location unavailable")

// ValidationError - ошибка проверки поля, исправимая пользователем
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// AsValidationError возвращает ValidationError из цепочки ошибок, если она там есть
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
