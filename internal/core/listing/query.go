package listing

import (
	"strings"

	"github.com/wojg58/Thursday/internal/core/domain"
)

const (
	// PageSize - размер страницы ленты и одноразовой выборки.
	PageSize = 20
	// DefaultAreaCode - Сеул (столичный регион), если регион не выбран.
	DefaultAreaCode = "1"
)

// arrange-коды TourAPI
const (
	arrangeByTitle    = "A"
	arrangeByModified = "C"
)

// NewDescriptor нормализует сырые параметры запроса: пробелы, повторы категорий,
// сортировка по умолчанию и выбор режима по наличию ключевого слова.
func NewDescriptor(areaCode, subAreaCode string, categoryCodes []string, sortBy, keyword string) domain.FeedDescriptor {
	d := domain.FeedDescriptor{
		AreaCode:    strings.TrimSpace(areaCode),
		SubAreaCode: strings.TrimSpace(subAreaCode),
		SortBy:      domain.SortKey(strings.ToLower(strings.TrimSpace(sortBy))),
		Keyword:     strings.TrimSpace(keyword),
	}
	if d.SortBy != domain.SortName {
		d.SortBy = domain.SortLatest
	}
	if d.SubAreaCode == domain.AllAreas {
		d.SubAreaCode = ""
	}

	seen := make(map[string]struct{}, len(categoryCodes))
	for _, raw := range categoryCodes {
		for _, code := range strings.Split(raw, ",") {
			code = strings.TrimSpace(code)
			if code == "" || code == domain.AllAreas {
				continue
			}
			if _, dup := seen[code]; dup {
				continue
			}
			seen[code] = struct{}{}
			d.CategoryCodes = append(d.CategoryCodes, code)
		}
	}

	d.Mode = domain.FeedModeArea
	if d.Keyword != "" {
		d.Mode = domain.FeedModeKeyword
	}
	return d
}

// EffectiveArea - район важнее региона. Без региона (или при "all") список по
// региону идет по региону по умолчанию, а поиск по ключевому слову - по всей стране.
func EffectiveArea(d domain.FeedDescriptor) string {
	if d.SubAreaCode != "" {
		return d.SubAreaCode
	}
	if d.AreaCode != "" && d.AreaCode != domain.AllAreas {
		return d.AreaCode
	}
	if d.Mode == domain.FeedModeKeyword || strings.TrimSpace(d.Keyword) != "" {
		return ""
	}
	return DefaultAreaCode
}

// UpstreamCategory - в upstream уходит только первая категория.
func UpstreamCategory(d domain.FeedDescriptor) string {
	if len(d.CategoryCodes) == 0 {
		return ""
	}
	return d.CategoryCodes[0]
}

// BuildUpstreamQuery собирает запрос страницы page для дескриптора.
func BuildUpstreamQuery(d domain.FeedDescriptor, page, pageSize int) domain.UpstreamQuery {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = PageSize
	}

	q := domain.UpstreamQuery{
		Mode:          domain.FeedModeArea,
		AreaCode:      EffectiveArea(d),
		ContentTypeID: UpstreamCategory(d),
		Arrange:       arrangeByModified,
		PageNo:        page,
		NumOfRows:     pageSize,
	}
	if d.SortBy == domain.SortName {
		q.Arrange = arrangeByTitle
	}
	if keyword := strings.TrimSpace(d.Keyword); keyword != "" {
		q.Mode = domain.FeedModeKeyword
		q.Keyword = keyword
	}
	return q
}

// Compose - одноразовый поток: фильтр по категориям, затем сортировка.
func Compose(items []domain.ListingItem, d domain.FeedDescriptor) []domain.ListingItem {
	return SortItems(FilterByCategories(items, d.CategoryCodes), d.SortBy)
}
