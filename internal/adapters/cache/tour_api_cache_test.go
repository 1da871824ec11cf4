package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wojg58/Thursday/internal/core/domain"
)

type countingTourAPI struct {
	calls map[string]int
	err   error
}

func (c *countingTourAPI) hit(op string) { c.calls[op]++ }

func (c *countingTourAPI) ListByArea(_ context.Context, q domain.UpstreamQuery) (*domain.ListingPage, error) {
	c.hit("area")
	if c.err != nil {
		return nil, c.err
	}
	return &domain.ListingPage{Items: []domain.ListingItem{{ContentID: "1", Title: "경복궁"}}, TotalCount: 1, PageNo: q.PageNo}, nil
}

func (c *countingTourAPI) SearchKeyword(_ context.Context, q domain.UpstreamQuery) (*domain.ListingPage, error) {
	c.hit("keyword")
	return &domain.ListingPage{PageNo: q.PageNo}, nil
}

func (c *countingTourAPI) GetCommon(_ context.Context, id string) (*domain.CommonRecord, error) {
	c.hit("common")
	if c.err != nil {
		return nil, c.err
	}
	return &domain.CommonRecord{ContentID: id, Title: "경복궁"}, nil
}

func (c *countingTourAPI) GetIntro(_ context.Context, id, typeID string) (*domain.IntroRecord, error) {
	c.hit("intro")
	return &domain.IntroRecord{ContentID: id, ContentTypeID: typeID, Fields: map[string]string{"usetime": "09:00"}}, nil
}

func (c *countingTourAPI) GetImages(context.Context, string) ([]domain.TourImage, error) {
	c.hit("images")
	return []domain.TourImage{{OriginURL: "http://x/a.jpg"}}, nil
}

func (c *countingTourAPI) AreaCodes(context.Context, string) ([]domain.AreaCode, error) {
	c.hit("areas")
	return []domain.AreaCode{{Code: "1", Name: "서울", RNum: 1}}, nil
}

func setup(t *testing.T) (*CachedTourAPI, *countingTourAPI, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	next := &countingTourAPI{calls: make(map[string]int)}
	return NewCachedTourAPI(next, client, TTLConfig{Detail: time.Hour, List: time.Minute}), next, mr
}

func TestCachedTourAPI_HitsAfterFirstCall(t *testing.T) {
	c, next, mr := setup(t)
	ctx := context.Background()
	q := domain.UpstreamQuery{AreaCode: "1", PageNo: 1, NumOfRows: 20, Arrange: "C"}

	for i := 0; i < 3; i++ {
		page, err := c.ListByArea(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, "경복궁", page.Items[0].Title)

		intro, err := c.GetIntro(ctx, "1", "12")
		require.NoError(t, err)
		assert.Equal(t, "09:00", intro.Field("usetime"))

		_, err = c.GetImages(ctx, "1")
		require.NoError(t, err)
		_, err = c.AreaCodes(ctx, "")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, next.calls["area"])
	assert.Equal(t, 1, next.calls["intro"])
	assert.Equal(t, 1, next.calls["images"])
	assert.Equal(t, 1, next.calls["areas"])

	// другая страница - другой ключ
	_, err := c.ListByArea(ctx, domain.UpstreamQuery{AreaCode: "1", PageNo: 2, NumOfRows: 20, Arrange: "C"})
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls["area"])

	mr.FastForward(2 * time.Minute)
	_, err = c.ListByArea(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 3, next.calls["area"], "list entries expire with the list TTL")
	assert.True(t, mr.Exists(keyPrefix+"intro:1:12"))
}

func TestCachedTourAPI_ErrorsAreNotCached(t *testing.T) {
	c, next, mr := setup(t)
	next.err = &domain.UpstreamError{Operation: "detailCommon2", ResultCode: "22"}

	_, err := c.GetCommon(context.Background(), "1")
	require.Error(t, err)
	assert.False(t, mr.Exists(keyPrefix+"common:1"))

	next.err = nil
	common, err := c.GetCommon(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "경복궁", common.Title)
	assert.Equal(t, 2, next.calls["common"])
}

func TestCachedTourAPI_RedisDownBypasses(t *testing.T) {
	c, next, mr := setup(t)
	mr.Close()

	common, err := c.GetCommon(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", common.ContentID)
	assert.Equal(t, 1, next.calls["common"])
}

func TestCachedTourAPI_CorruptedEntryReloads(t *testing.T) {
	c, next, mr := setup(t)
	require.NoError(t, mr.Set(keyPrefix+"common:1", "{not json"))

	common, err := c.GetCommon(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "경복궁", common.Title)
	assert.Equal(t, 1, next.calls["common"])
}
