package listing

import (
	"sort"
	"time"

	"github.com/wojg58/Thursday/internal/core/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortItems возвращает отсортированную копию. Исходный срез не меняется.
func SortItems(items []domain.ListingItem, key domain.SortKey) []domain.ListingItem {
	sorted := make([]domain.ListingItem, len(items))
	copy(sorted, items)

	switch key {
	case domain.SortName:
		sortByTitle(sorted)
	case domain.SortLatest:
		sortByModified(sorted)
	}
	return sorted
}

// sortByTitle - лексикографически по правилам корейской сортировки.
func sortByTitle(items []domain.ListingItem) {
	// Collator не потокобезопасен, поэтому создается на каждый вызов.
	c := collate.New(language.Korean)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(items[i].Title, items[j].Title) < 0
	})
}

// sortByModified - сначала самые свежие; объекты без даты уходят в конец.
func sortByModified(items []domain.ListingItem) {
	type dated struct {
		item domain.ListingItem
		at   time.Time
	}
	buf := make([]dated, len(items))
	for i, it := range items {
		buf[i].item = it
		buf[i].at, _ = it.Modified()
	}
	sort.SliceStable(buf, func(i, j int) bool {
		return buf[i].at.After(buf[j].at)
	})
	for i := range buf {
		items[i] = buf[i].item
	}
}
