package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Причины отказа проверки срока годности
var (
	ErrInvalidFormat = errors.New("invalid date format")
	ErrPastDate      = errors.New("expiry date cannot be in the past")
	ErrTooFarFuture  = errors.New("expiry date cannot be more than 1 year in the future")
)

// expiryLayout - ожидаемый формат даты срока годности
const expiryLayout = "2006-01-02"

// phonePattern - минимум 10 символов из цифр и телефонной пунктуации
var phonePattern = regexp.MustCompile(`^[\d\s\-\(\)\+\.]{10,}$`)

// escaper экранирует пять опасных символов в HTML-сущности
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// ValidateExpiry разбирает дату срока годности и проверяет, что она
// не раньше сегодняшнего дня и не дальше чем ровно через год.
// Время суток при сравнении обнуляется.
func ValidateExpiry(dateString string, now time.Time) (time.Time, error) {
	expiry, err := time.ParseInLocation(expiryLayout, dateString, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, dateString)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if expiry.Before(today) {
		return time.Time{}, ErrPastDate
	}

	maxDate := today.AddDate(1, 0, 0)
	if expiry.After(maxDate) {
		return time.Time{}, ErrTooFarFuture
	}

	return expiry, nil
}

// SanitizeText обрезает пробелы и экранирует < > " ' & перед сохранением,
// чтобы пользовательский текст было безопасно отдавать на отрисовку
func SanitizeText(input string) string {
	return escaper.Replace(strings.TrimSpace(input))
}

// ValidPhone проверяет телефон по шаблону цифр и пунктуации
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
