// Package cache кэширует ответы TourAPI в Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wojg58/Thursday/internal/contextkeys"
	"github.com/wojg58/Thursday/internal/core/domain"
	"github.com/wojg58/Thursday/internal/core/port"
)

const keyPrefix = "tour:v1:"

type TTLConfig struct {
	// Detail - detailCommon/detailIntro/detailImage и справочник регионов.
	Detail time.Duration
	// List - страницы списков меняются чаще, поэтому живут меньше.
	List time.Duration
}

// CachedTourAPI - декоратор над TourAPIPort. Сбой Redis не ломает запрос:
// он логируется, и вызов уходит прямо в upstream. Ошибки upstream не кэшируются.
type CachedTourAPI struct {
	next   port.TourAPIPort
	client redis.Cmdable
	ttl    TTLConfig
}

var _ port.TourAPIPort = (*CachedTourAPI)(nil)

func NewCachedTourAPI(next port.TourAPIPort, client redis.Cmdable, ttl TTLConfig) *CachedTourAPI {
	if ttl.Detail <= 0 {
		ttl.Detail = 6 * time.Hour
	}
	if ttl.List <= 0 {
		ttl.List = 10 * time.Minute
	}
	return &CachedTourAPI{next: next, client: client, ttl: ttl}
}

// cached - общий путь "прочитать из кэша или загрузить и сохранить".
func cached[T any](ctx context.Context, c *CachedTourAPI, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "CachedTourAPI",
		"cache_key": key,
	})

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var v T
		jsonErr := json.Unmarshal(raw, &v)
		if jsonErr == nil {
			logger.Debug("Cache hit", nil)
			return v, nil
		}
		logger.Warn("Corrupted cache entry, reloading", port.Fields{"error": jsonErr.Error()})
	case errors.Is(err, redis.Nil):
	default:
		logger.Warn("Cache read failed, bypassing", port.Fields{"error": err.Error()})
	}

	v, err := load()
	if err != nil {
		return v, err
	}

	payload, err := json.Marshal(v)
	if err != nil {
		logger.Warn("Failed to encode cache entry", port.Fields{"error": err.Error()})
		return v, nil
	}
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		logger.Warn("Cache write failed", port.Fields{"error": err.Error()})
	}
	return v, nil
}

func listKey(op string, q domain.UpstreamQuery) string {
	return fmt.Sprintf("%slist:%s:%s:%s:%s:%s:%d:%d", keyPrefix, op,
		q.AreaCode, q.ContentTypeID, q.Arrange, strings.ToLower(strings.TrimSpace(q.Keyword)), q.PageNo, q.NumOfRows)
}

func (c *CachedTourAPI) ListByArea(ctx context.Context, q domain.UpstreamQuery) (*domain.ListingPage, error) {
	return cached(ctx, c, listKey("area", q), c.ttl.List, func() (*domain.ListingPage, error) {
		return c.next.ListByArea(ctx, q)
	})
}

func (c *CachedTourAPI) SearchKeyword(ctx context.Context, q domain.UpstreamQuery) (*domain.ListingPage, error) {
	return cached(ctx, c, listKey("keyword", q), c.ttl.List, func() (*domain.ListingPage, error) {
		return c.next.SearchKeyword(ctx, q)
	})
}

func (c *CachedTourAPI) GetCommon(ctx context.Context, contentID string) (*domain.CommonRecord, error) {
	return cached(ctx, c, keyPrefix+"common:"+contentID, c.ttl.Detail, func() (*domain.CommonRecord, error) {
		return c.next.GetCommon(ctx, contentID)
	})
}

func (c *CachedTourAPI) GetIntro(ctx context.Context, contentID, contentTypeID string) (*domain.IntroRecord, error) {
	return cached(ctx, c, keyPrefix+"intro:"+contentID+":"+contentTypeID, c.ttl.Detail, func() (*domain.IntroRecord, error) {
		return c.next.GetIntro(ctx, contentID, contentTypeID)
	})
}

func (c *CachedTourAPI) GetImages(ctx context.Context, contentID string) ([]domain.TourImage, error) {
	return cached(ctx, c, keyPrefix+"images:"+contentID, c.ttl.Detail, func() ([]domain.TourImage, error) {
		return c.next.GetImages(ctx, contentID)
	})
}

func (c *CachedTourAPI) AreaCodes(ctx context.Context, parentCode string) ([]domain.AreaCode, error) {
	return cached(ctx, c, keyPrefix+"areas:"+parentCode, c.ttl.Detail, func() ([]domain.AreaCode, error) {
		return c.next.AreaCodes(ctx, parentCode)
	})
}
