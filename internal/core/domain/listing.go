package domain

import (
	"strings"
	"time"
)

// Коды категорий (contentTypeId) TourAPI.
const (
	CategoryTouristSpot = "12"
	CategoryCulture     = "14"
	CategoryFestival    = "15"
	CategoryCourse      = "25"
	CategoryLeisure     = "28"
	CategoryLodging     = "32"
	CategoryShopping    = "38"
	CategoryRestaurant  = "39"
)

// upstreamTimeLayout - формат modifiedtime/createdtime в ответах TourAPI.
const upstreamTimeLayout = "20060102150405"

// ListingItem - одна карточка объекта в списке. После создания не меняется.
type ListingItem struct {
	ContentID     string
	ContentTypeID string
	Title         string
	Addr1         string
	Addr2         string
	AreaCode      string
	SigunguCode   string

	// Координаты приходят строками в двух кодировках, см. geo.ConvertCoordinate.
	MapX string
	MapY string

	FirstImage   string
	FirstImage2  string
	Tel          string
	ModifiedTime string
}

// Thumbnails возвращает непустые ссылки на превью.
func (i ListingItem) Thumbnails() []string {
	thumbs := make([]string, 0, 2)
	for _, u := range []string{i.FirstImage, i.FirstImage2} {
		if strings.TrimSpace(u) != "" {
			thumbs = append(thumbs, strings.TrimSpace(u))
		}
	}
	return thumbs
}

// Modified разбирает ModifiedTime. Второе значение false, если дату разобрать не удалось.
func (i ListingItem) Modified() (time.Time, bool) {
	return ParseUpstreamTime(i.ModifiedTime)
}

// ParseUpstreamTime понимает как компактный формат TourAPI, так и RFC3339.
func ParseUpstreamTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation(upstreamTimeLayout, raw, seoul); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, seoul); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// seoul - KST без зависимости от tzdata в контейнере.
var seoul = time.FixedZone("KST", 9*60*60)

// ListingPage - одна страница ответа areaBasedList/searchKeyword.
type ListingPage struct {
	Items      []ListingItem
	TotalCount int
	PageNo     int
	NumOfRows  int
}

// ContentIDs возвращает идентификаторы в исходном порядке.
func ContentIDs(items []ListingItem) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ContentID
	}
	return ids
}
