package tourapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"
	"github.com/wojg58/Thursday/internal/contextkeys"
	"github.com/wojg58/Thursday/internal/core/domain"
	"github.com/wojg58/Thursday/internal/core/port"
)

// Операции KorService2
const (
	opAreaBasedList = "areaBasedList2"
	opSearchKeyword = "searchKeyword2"
	opDetailCommon  = "detailCommon2"
	opDetailIntro   = "detailIntro2"
	opDetailImage   = "detailImage2"
	opAreaCode      = "areaCode2"
)

const resultCodeOK = "0000"

type Config struct {
	// BaseURL - например "https://apis.data.go.kr/B551011/KorService2".
	BaseURL string
	// ServiceKey - ключ в декодированном виде, кодирование делает адаптер.
	ServiceKey     string
	MobileApp      string
	Parallelism    int
	RandomDelay    time.Duration
	RequestTimeout time.Duration
}

// TourAPIAdapter отвечает за все обращения к TourAPI.
type TourAPIAdapter struct {
	// один родительский коллектор, клоны делят его лимиты
	collector  *colly.Collector
	baseURL    *url.URL
	serviceKey string
	mobileApp  string
}

var _ port.TourAPIPort = (*TourAPIAdapter)(nil)

func NewTourAPIAdapter(cfg Config) (*TourAPIAdapter, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("tourapi: invalid base URL %q", cfg.BaseURL)
	}
	if cfg.ServiceKey == "" {
		return nil, errors.New("tourapi: service key is required")
	}
	if cfg.MobileApp == "" {
		cfg.MobileApp = "tour-service"
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = 2
	}

	c := colly.NewCollector(
		colly.AllowedDomains(base.Hostname()),
		colly.AllowURLRevisit(),
	)
	if cfg.RequestTimeout > 0 {
		c.SetRequestTimeout(cfg.RequestTimeout)
	}
	if err := c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: cfg.Parallelism,
		RandomDelay: cfg.RandomDelay,
	}); err != nil {
		return nil, fmt.Errorf("tourapi: failed to set limit rule: %w", err)
	}

	return &TourAPIAdapter{
		collector:  c,
		baseURL:    base,
		serviceKey: cfg.ServiceKey,
		mobileApp:  cfg.MobileApp,
	}, nil
}

// buildURL добавляет общие параметры ко всем операциям.
func (a *TourAPIAdapter) buildURL(operation string, params url.Values) string {
	u := *a.baseURL
	u.Path = u.Path + "/" + operation

	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("serviceKey", a.serviceKey)
	q.Set("MobileOS", "ETC")
	q.Set("MobileApp", a.mobileApp)
	q.Set("_type", "json")
	u.RawQuery = q.Encode()
	return u.String()
}

// call выполняет один GET и возвращает тело конверта после проверки resultCode.
func (a *TourAPIAdapter) call(ctx context.Context, operation string, params url.Values) (*envelopeBody, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "TourAPIAdapter",
		"operation": operation,
	})

	// клон наследует лимиты, но не обработчики родителя
	collector := a.collector.Clone()
	collector.Context = ctx
	extensions.RandomUserAgent(collector)

	var (
		body        *envelopeBody
		responseErr error
	)
	collector.OnResponse(func(r *colly.Response) {
		body, responseErr = decodeEnvelope(operation, r.Body)
	})
	collector.OnError(func(r *colly.Response, err error) {
		responseErr = fmt.Errorf("request failed with status %d: %w", r.StatusCode, err)
	})

	start := time.Now()
	if err := collector.Visit(a.buildURL(operation, params)); err != nil {
		logger.Error("Failed to visit TourAPI", err, nil)
		return nil, fmt.Errorf("tourapi %s: %w", operation, err)
	}
	collector.Wait()

	if responseErr != nil {
		logger.Error("TourAPI call failed", responseErr, port.Fields{"elapsed_ms": time.Since(start).Milliseconds()})
		var upstream *domain.UpstreamError
		if errors.As(responseErr, &upstream) {
			return nil, upstream
		}
		return nil, fmt.Errorf("tourapi %s: %w", operation, responseErr)
	}
	if body == nil {
		return nil, fmt.Errorf("tourapi %s: empty response", operation)
	}

	logger.Debug("TourAPI call finished", port.Fields{
		"total_count": body.TotalCount,
		"elapsed_ms":  time.Since(start).Milliseconds(),
	})
	return body, nil
}

func itoa(n int) string { return strconv.Itoa(n) }
