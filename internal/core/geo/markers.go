package geo

import (
	"github.com/mmcloughlin/geohash"
	"github.com/wojg58/Thursday/internal/core/domain"
)

// MarkerPrecision - точность geohash у маркера (~150 м).
const MarkerPrecision = 7

// BuildMarkers строит маркеры для объектов с пригодными координатами, порядок сохраняется.
func BuildMarkers(items []domain.ListingItem) []domain.MapMarker {
	markers := make([]domain.MapMarker, 0, len(items))
	for _, item := range items {
		p := PointOf(item.MapX, item.MapY)
		if p == nil {
			continue
		}
		marker := domain.MapMarker{
			ContentID:     item.ContentID,
			ContentTypeID: item.ContentTypeID,
			Title:         item.Title,
			Position:      *p,
			Geohash:       geohash.EncodeWithPrecision(p.Lat, p.Lng, MarkerPrecision),
		}
		if thumbs := item.Thumbnails(); len(thumbs) > 0 {
			marker.Thumbnail = thumbs[len(thumbs)-1]
		}
		markers = append(markers, marker)
	}
	return markers
}

// ClusterMarkers группирует маркеры по префиксу geohash длины precision.
// Кластеры упорядочены по первому появлению ячейки.
func ClusterMarkers(markers []domain.MapMarker, precision uint) []domain.MarkerCluster {
	if precision == 0 || precision > MarkerPrecision {
		precision = MarkerPrecision
	}

	index := make(map[string]int)
	var clusters []domain.MarkerCluster
	for _, m := range markers {
		cell := m.Geohash
		if uint(len(cell)) > precision {
			cell = cell[:precision]
		}
		i, ok := index[cell]
		if !ok {
			lat, lng := geohash.DecodeCenter(cell)
			clusters = append(clusters, domain.MarkerCluster{Cell: cell, Center: domain.Point{Lat: lat, Lng: lng}})
			i = len(clusters) - 1
			index[cell] = i
		}
		clusters[i].ContentIDs = append(clusters[i].ContentIDs, m.ContentID)
	}
	return clusters
}

// ClusterPrecisionForZoom подбирает длину ячейки под уровень масштаба карты.
// Уровни как у Kakao Maps: 1 - самый крупный план, 14 - вся страна.
func ClusterPrecisionForZoom(zoom int) uint {
	switch {
	case zoom <= 2:
		return 7
	case zoom <= 4:
		return 6
	case zoom <= 6:
		return 5
	case zoom <= 8:
		return 4
	case zoom <= 10:
		return 3
	default:
		return 2
	}
}
