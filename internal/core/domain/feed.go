package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type FeedMode string

const (
	FeedModeArea    FeedMode = "area"
	FeedModeKeyword FeedMode = "keyword"
)

type SortKey string

const (
	SortLatest SortKey = "latest"
	SortName   SortKey = "name"
)

// AllAreas - значение "все регионы" из селектора.
const AllAreas = "all"

// FeedDescriptor описывает параметры выборки, от которых зависит лента.
type FeedDescriptor struct {
	Mode          FeedMode
	AreaCode      string
	SubAreaCode   string
	CategoryCodes []string
	SortBy        SortKey
	Keyword       string
}

// Equal сравнивает дескрипторы поэлементно, с учетом порядка категорий.
func (d FeedDescriptor) Equal(other FeedDescriptor) bool {
	if d.Mode != other.Mode || d.AreaCode != other.AreaCode || d.SubAreaCode != other.SubAreaCode ||
		d.SortBy != other.SortBy || strings.TrimSpace(d.Keyword) != strings.TrimSpace(other.Keyword) {
		return false
	}
	if len(d.CategoryCodes) != len(other.CategoryCodes) {
		return false
	}
	for i := range d.CategoryCodes {
		if d.CategoryCodes[i] != other.CategoryCodes[i] {
			return false
		}
	}
	return true
}

// UpstreamQuery - параметры одного запроса списка к TourAPI.
type UpstreamQuery struct {
	Mode          FeedMode
	AreaCode      string
	ContentTypeID string
	Keyword       string
	Arrange       string
	PageNo        int
	NumOfRows     int
}

// FeedState - снимок состояния ленты для отдачи клиенту.
type FeedState struct {
	ID         uuid.UUID
	Descriptor FeedDescriptor
	Items      []ListingItem
	Page       int
	TotalCount int
	HasMore    bool
	Loading    bool
	Version    uint64
	UpdatedAt  time.Time
}

// ListResult - результат одноразовой выборки без накопления.
type ListResult struct {
	Items      []ListingItem
	TotalCount int
	Page       int
	PerPage    int
	HasMore    bool
}
