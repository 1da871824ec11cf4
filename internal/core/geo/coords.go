package geo

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidCoordinate - строку координаты не удалось разобрать как число.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

const (
	// fixedPointThreshold отделяет целочисленную кодировку (градусы * 10^7)
	// от обычных десятичных градусов: |lat|, |lng| всегда меньше 180.
	fixedPointThreshold = 1000
	fixedPointScale     = 10_000_000
)

// ParseCoordinate разбирает координату в любой из двух кодировок TourAPI.
func ParseCoordinate(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrInvalidCoordinate
	}
	if math.Abs(value) >= fixedPointThreshold {
		return value / fixedPointScale, nil
	}
	return value, nil
}

// ConvertCoordinate никогда не возвращает ошибку: 0 означает "координаты нет".
func ConvertCoordinate(raw string) float64 {
	value, err := ParseCoordinate(raw)
	if err != nil {
		return 0
	}
	return value
}

// usableRaw - строка пригодна для постановки маркера и расчета центра.
// Любое значение, дающее 0 после перевода ("0", "0.0", "00"), считается отсутствием координаты.
func usableRaw(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	value, err := ParseCoordinate(raw)
	return err == nil && value != 0
}
