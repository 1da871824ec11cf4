// Package accumulator накапливает страницы выдачи для бесконечной прокрутки.
package accumulator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wojg58/Thursday/internal/core/domain"
	"github.com/wojg58/Thursday/internal/core/listing"
)

var (
	// ErrLoadInFlight - предыдущая дозагрузка еще не завершилась, новый запрос не отправлялся.
	ErrLoadInFlight = errors.New("accumulator: load already in flight")
	// ErrExhausted - больше страниц нет, запрос не отправлялся.
	ErrExhausted = errors.New("accumulator: no more pages")
	// ErrSuperseded - пока страница грузилась, лента была сброшена; результат отброшен.
	ErrSuperseded = errors.New("accumulator: load superseded by reset")
)

// PageFetcher загружает одну "сырую" страницу из upstream.
type PageFetcher interface {
	FetchPage(ctx context.Context, q domain.UpstreamQuery) (*domain.ListingPage, error)
}

// PageFetcherFunc позволяет передать функцию как PageFetcher.
type PageFetcherFunc func(ctx context.Context, q domain.UpstreamQuery) (*domain.ListingPage, error)

func (f PageFetcherFunc) FetchPage(ctx context.Context, q domain.UpstreamQuery) (*domain.ListingPage, error) {
	return f(ctx, q)
}

type resetKey struct {
	ids    []string
	total  int
	sortBy domain.SortKey
}

func (k *resetKey) equal(other resetKey) bool {
	if k == nil || k.total != other.total || k.sortBy != other.sortBy || len(k.ids) != len(other.ids) {
		return false
	}
	for i := range k.ids {
		if k.ids[i] != other.ids[i] {
			return false
		}
	}
	return true
}

// Accumulator - состояние одной ленты. Изменяется только через Initialize/Reset
// (полная замена) и LoadMore (добавление страницы).
type Accumulator struct {
	mu sync.Mutex

	fetcher  PageFetcher
	pageSize int
	now      func() time.Time

	descriptor domain.FeedDescriptor
	items      []domain.ListingItem
	page       int
	totalCount int
	hasMore    bool
	loading    bool
	version    uint64
	updatedAt  time.Time
	lastReset  *resetKey
}

type Option func(*Accumulator)

func WithPageSize(size int) Option {
	return func(a *Accumulator) {
		if size > 0 {
			a.pageSize = size
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *Accumulator) {
		if now != nil {
			a.now = now
		}
	}
}

func New(fetcher PageFetcher, descriptor domain.FeedDescriptor, opts ...Option) *Accumulator {
	a := &Accumulator{
		fetcher:    fetcher,
		pageSize:   listing.PageSize,
		now:        time.Now,
		descriptor: descriptor,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Initialize заменяет состояние первой страницей.
func (a *Accumulator) Initialize(first []domain.ListingItem, totalCount int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.initializeLocked(first, totalCount)
}

// Reset переинициализирует ленту под новый дескриптор. Если первая страница
// (по порядку идентификаторов), totalCount и сортировка совпадают с прошлым сбросом,
// состояние не трогается и возвращается false.
func (a *Accumulator) Reset(first []domain.ListingItem, totalCount int, descriptor domain.FeedDescriptor) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := resetKey{ids: domain.ContentIDs(first), total: totalCount, sortBy: descriptor.SortBy}
	if a.lastReset.equal(key) {
		return false
	}

	a.descriptor = descriptor
	a.initializeLocked(first, totalCount)
	return true
}

func (a *Accumulator) initializeLocked(first []domain.ListingItem, totalCount int) {
	items := make([]domain.ListingItem, len(first))
	copy(items, first)

	a.items = items
	a.page = 1
	a.totalCount = totalCount
	a.hasMore = len(first) < totalCount
	// загрузка, начатая до сброса, будет отброшена по версии
	a.loading = false
	a.version++
	a.updatedAt = a.now()
	a.lastReset = &resetKey{ids: domain.ContentIDs(first), total: totalCount, sortBy: a.descriptor.SortBy}
}

// LoadMore догружает следующую страницу и возвращает число добавленных элементов.
// Пока идет загрузка, повторный вызов сразу возвращает ErrLoadInFlight.
// При ошибке upstream состояние (кроме флага загрузки) не меняется.
func (a *Accumulator) LoadMore(ctx context.Context) (int, error) {
	a.mu.Lock()
	if a.loading {
		a.mu.Unlock()
		return 0, ErrLoadInFlight
	}
	if !a.hasMore {
		a.mu.Unlock()
		return 0, ErrExhausted
	}
	a.loading = true
	generation := a.version
	nextPage := a.page + 1
	descriptor := a.descriptor
	query := listing.BuildUpstreamQuery(descriptor, nextPage, a.pageSize)
	a.mu.Unlock()

	raw, err := a.fetcher.FetchPage(ctx, query)

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.version != generation {
		return 0, ErrSuperseded
	}
	a.loading = false
	if err != nil {
		return 0, fmt.Errorf("load page %d: %w", nextPage, err)
	}
	if raw == nil {
		raw = &domain.ListingPage{}
	}

	// Сортируется только новая страница, уже накопленное не пересортировывается.
	filtered := listing.FilterByCategories(raw.Items, descriptor.CategoryCodes)
	sorted := listing.SortItems(filtered, descriptor.SortBy)

	a.items = append(a.items, sorted...)
	a.page = nextPage
	upstreamHasMore := len(raw.Items) == a.pageSize
	a.hasMore = upstreamHasMore && len(filtered) > 0 && (a.totalCount <= 0 || len(a.items) < a.totalCount)
	a.version++
	a.updatedAt = a.now()

	return len(sorted), nil
}

// Snapshot возвращает копию состояния для отдачи клиенту.
func (a *Accumulator) Snapshot() domain.FeedState {
	a.mu.Lock()
	defer a.mu.Unlock()

	items := make([]domain.ListingItem, len(a.items))
	copy(items, a.items)
	return domain.FeedState{
		Descriptor: a.descriptor,
		Items:      items,
		Page:       a.page,
		TotalCount: a.totalCount,
		HasMore:    a.hasMore,
		Loading:    a.loading,
		Version:    a.version,
		UpdatedAt:  a.updatedAt,
	}
}

func (a *Accumulator) Descriptor() domain.FeedDescriptor {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.descriptor
}

func (a *Accumulator) Version() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.version
}

func (a *Accumulator) HasMore() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hasMore
}
