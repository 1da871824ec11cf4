package geo

import "github.com/wojg58/Thursday/internal/core/domain"

// Центр карты по умолчанию - мэрия Сеула.
var DefaultCenter = domain.Point{Lat: 37.5665, Lng: 126.9780}

const (
	DefaultZoom  = 8
	CentroidZoom = 7
)

// Centroid - среднее арифметическое координат объектов с пригодными координатами.
// Возвращает nil, если таких объектов нет.
func Centroid(items []domain.ListingItem) *domain.Point {
	var sumLat, sumLng float64
	count := 0
	for _, item := range items {
		if !usableRaw(item.MapX) || !usableRaw(item.MapY) {
			continue
		}
		sumLng += ConvertCoordinate(item.MapX)
		sumLat += ConvertCoordinate(item.MapY)
		count++
	}
	if count == 0 {
		return nil
	}
	return &domain.Point{Lat: sumLat / float64(count), Lng: sumLng / float64(count)}
}

// CentroidOrDefault возвращает центр, уровень масштаба и признак того,
// что пришлось взять значения по умолчанию.
func CentroidOrDefault(items []domain.ListingItem) (domain.Point, int, bool) {
	if c := Centroid(items); c != nil {
		return *c, CentroidZoom, false
	}
	return DefaultCenter, DefaultZoom, true
}

// PointOf переводит пару сырых координат в точку, nil - если хотя бы одна непригодна.
func PointOf(mapX, mapY string) *domain.Point {
	if !usableRaw(mapX) || !usableRaw(mapY) {
		return nil
	}
	return &domain.Point{Lat: ConvertCoordinate(mapY), Lng: ConvertCoordinate(mapX)}
}
