package listing

import "github.com/wojg58/Thursday/internal/core/domain"

// FilterByCategories оставляет объекты выбранных категорий с сохранением порядка.
// Фильтр нужен только при нескольких категориях: upstream принимает одну
// категорию за запрос, а при одной категории ответ уже отфильтрован.
func FilterByCategories(items []domain.ListingItem, selected []string) []domain.ListingItem {
	if len(selected) <= 1 {
		return items
	}

	allowed := make(map[string]struct{}, len(selected))
	for _, code := range selected {
		allowed[code] = struct{}{}
	}

	filtered := make([]domain.ListingItem, 0, len(items))
	for _, item := range items {
		if _, ok := allowed[item.ContentTypeID]; ok {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
