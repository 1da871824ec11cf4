package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wojg58/Thursday/internal/core/accumulator"
	"github.com/wojg58/Thursday/internal/core/domain"
)

type fakeTourAPI struct {
	mu sync.Mutex

	pages     map[int]*domain.ListingPage
	listErr   error
	common    *domain.CommonRecord
	commonErr error
	intro     *domain.IntroRecord
	introErr  error
	images    []domain.TourImage
	imageErr  error
	areas     []domain.AreaCode

	areaQueries    []domain.UpstreamQuery
	keywordQueries []domain.UpstreamQuery
	introTypeIDs   []string
}

func (f *fakeTourAPI) page(q domain.UpstreamQuery) (*domain.ListingPage, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if p, ok := f.pages[q.PageNo]; ok {
		return p, nil
	}
	return &domain.ListingPage{}, nil
}

func (f *fakeTourAPI) ListByArea(_ context.Context, q domain.UpstreamQuery) (*domain.ListingPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.areaQueries = append(f.areaQueries, q)
	return f.page(q)
}

func (f *fakeTourAPI) SearchKeyword(_ context.Context, q domain.UpstreamQuery) (*domain.ListingPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keywordQueries = append(f.keywordQueries, q)
	return f.page(q)
}

func (f *fakeTourAPI) GetCommon(context.Context, string) (*domain.CommonRecord, error) {
	if f.commonErr != nil {
		return nil, f.commonErr
	}
	c := *f.common
	return &c, nil
}

func (f *fakeTourAPI) GetIntro(_ context.Context, _ string, typeID string) (*domain.IntroRecord, error) {
	f.mu.Lock()
	f.introTypeIDs = append(f.introTypeIDs, typeID)
	f.mu.Unlock()
	return f.intro, f.introErr
}

func (f *fakeTourAPI) GetImages(context.Context, string) ([]domain.TourImage, error) {
	return f.images, f.imageErr
}

func (f *fakeTourAPI) AreaCodes(context.Context, string) ([]domain.AreaCode, error) {
	return f.areas, nil
}

type fakeRegistry struct {
	mu    sync.Mutex
	feeds map[uuid.UUID]*accumulator.Accumulator
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{feeds: make(map[uuid.UUID]*accumulator.Accumulator)}
}

func (r *fakeRegistry) Create(_ context.Context, feed *accumulator.Accumulator) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.New()
	r.feeds[id] = feed
	return id, nil
}

func (r *fakeRegistry) Get(_ context.Context, id uuid.UUID) (*accumulator.Accumulator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if feed, ok := r.feeds[id]; ok {
		return feed, nil
	}
	return nil, domain.ErrFeedNotFound
}

func (r *fakeRegistry) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.feeds, id)
	return nil
}

func (r *fakeRegistry) EvictIdle(time.Time, time.Duration) int { return 0 }

type fakeBookmarkRepo struct {
	added     []domain.Bookmark
	addResult bool
	removed   bool
	many      []string
	exists    bool
	page      *domain.PaginatedBookmarks
	err       error

	lastSort domain.SortKey
	lastIDs  []string
}

func (r *fakeBookmarkRepo) Add(_ context.Context, b domain.Bookmark) (bool, error) {
	r.added = append(r.added, b)
	return r.addResult, r.err
}

func (r *fakeBookmarkRepo) Remove(context.Context, uuid.UUID, string) (bool, error) {
	return r.removed, r.err
}

func (r *fakeBookmarkRepo) RemoveMany(_ context.Context, _ uuid.UUID, ids []string) ([]string, error) {
	r.lastIDs = ids
	return r.many, r.err
}

func (r *fakeBookmarkRepo) Exists(context.Context, uuid.UUID, string) (bool, error) {
	return r.exists, r.err
}

func (r *fakeBookmarkRepo) FindPaginatedByUser(_ context.Context, _ uuid.UUID, sortBy domain.SortKey, _, _ int) (*domain.PaginatedBookmarks, error) {
	r.lastSort = sortBy
	return r.page, r.err
}

type fakeEvents struct {
	added   []domain.BookmarkEvent
	removed []domain.BookmarkEvent
	err     error
}

func (e *fakeEvents) PublishAdded(_ context.Context, ev domain.BookmarkEvent) error {
	e.added = append(e.added, ev)
	return e.err
}

func (e *fakeEvents) PublishRemoved(_ context.Context, ev domain.BookmarkEvent) error {
	e.removed = append(e.removed, ev)
	return e.err
}
