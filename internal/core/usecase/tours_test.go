package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wojg58/Thursday/internal/core/domain"
	"github.com/wojg58/Thursday/internal/core/geo"
	"github.com/wojg58/Thursday/internal/core/listing"
)

func items(prefix string, n int, typeID string) []domain.ListingItem {
	out := make([]domain.ListingItem, n)
	for i := range out {
		out[i] = domain.ListingItem{
			ContentID:     fmt.Sprintf("%s%d", prefix, i),
			ContentTypeID: typeID,
			Title:         fmt.Sprintf("%s %d", prefix, i),
		}
	}
	return out
}

func TestListTours(t *testing.T) {
	t.Run("area mode uses area list and default area", func(t *testing.T) {
		api := &fakeTourAPI{pages: map[int]*domain.ListingPage{1: {Items: items("a", 20, "12"), TotalCount: 45}}}
		uc := NewListToursUseCase(api)

		res, err := uc.Execute(context.Background(), listing.NewDescriptor("", "", nil, "", ""), 1)
		require.NoError(t, err)
		assert.Len(t, res.Items, 20)
		assert.True(t, res.HasMore)
		assert.Equal(t, 45, res.TotalCount)

		require.Len(t, api.areaQueries, 1)
		assert.Equal(t, listing.DefaultAreaCode, api.areaQueries[0].AreaCode)
		assert.Empty(t, api.keywordQueries)
	})

	t.Run("keyword mode searches nationwide", func(t *testing.T) {
		api := &fakeTourAPI{pages: map[int]*domain.ListingPage{1: {Items: items("k", 5, "12"), TotalCount: 5}}}
		uc := NewListToursUseCase(api)

		res, err := uc.Execute(context.Background(), listing.NewDescriptor("", "", nil, "latest", "경복궁"), 1)
		require.NoError(t, err)
		assert.False(t, res.HasMore)
		require.Len(t, api.keywordQueries, 1)
		assert.Equal(t, "경복궁", api.keywordQueries[0].Keyword)
		assert.Empty(t, api.keywordQueries[0].AreaCode)
	})

	t.Run("multi-category filters client side", func(t *testing.T) {
		page := append(items("a", 3, "12"), items("b", 2, "14")...)
		page = append(page, items("c", 1, "39")...)
		api := &fakeTourAPI{pages: map[int]*domain.ListingPage{1: {Items: page, TotalCount: 6}}}
		uc := NewListToursUseCase(api)

		res, err := uc.Execute(context.Background(), listing.NewDescriptor("1", "", []string{"12,39"}, "name", ""), 1)
		require.NoError(t, err)
		assert.Len(t, res.Items, 4)
		assert.Equal(t, "12", api.areaQueries[0].ContentTypeID)
	})

	t.Run("upstream failure", func(t *testing.T) {
		upstream := &domain.UpstreamError{Operation: "areaBasedList2", ResultCode: "22", ResultMsg: "LIMITED"}
		uc := NewListToursUseCase(&fakeTourAPI{listErr: upstream})

		_, err := uc.Execute(context.Background(), listing.NewDescriptor("1", "", nil, "", ""), 1)
		var target *domain.UpstreamError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "22", target.ResultCode)
	})
}

func TestGetTourDetail(t *testing.T) {
	common := &domain.CommonRecord{
		ContentID:     "126508",
		ContentTypeID: "12",
		Title:         "경복궁",
		MapX:          "1269770000",
		MapY:          "375796000",
	}

	t.Run("contacts fall back to intro", func(t *testing.T) {
		api := &fakeTourAPI{
			common: common,
			intro: &domain.IntroRecord{ContentID: "126508", ContentTypeID: "12", Fields: map[string]string{
				"infocenter": "문의 02-3700-3900",
				"homepage":   `<a href="http://www.royalpalace.go.kr" target="_blank">royalpalace.go.kr</a>`,
				"usetime":    "09:00~18:00<br>입장 마감 17:00",
			}},
			images: []domain.TourImage{{OriginURL: "http://tong.visitkorea.or.kr/a.jpg"}},
		}
		uc := NewGetTourDetailUseCase(api)

		d, err := uc.Execute(context.Background(), "126508", "")
		require.NoError(t, err)
		require.NotNil(t, d.Contact.Phone)
		assert.Equal(t, "02-3700-3900", *d.Contact.Phone)
		require.NotNil(t, d.Contact.Homepage)
		assert.Equal(t, "http://www.royalpalace.go.kr", *d.Contact.Homepage)
		require.NotNil(t, d.Location)
		assert.InDelta(t, 126.977, d.Location.Lng, 1e-9)
		assert.InDelta(t, 37.5796, d.Location.Lat, 1e-9)
		assert.True(t, d.IntroAvailable)
		assert.Equal(t, "09:00~18:00\n입장 마감 17:00", d.Summary.UseTime)
		assert.Len(t, d.Images, 1)
		assert.Equal(t, []string{"12"}, api.introTypeIDs)
	})

	t.Run("intro and image failures degrade", func(t *testing.T) {
		withTel := *common
		withTel.Tel = "02-1234-5678"
		api := &fakeTourAPI{common: &withTel, introErr: errors.New("timeout"), imageErr: errors.New("timeout")}

		d, err := NewGetTourDetailUseCase(api).Execute(context.Background(), "126508", "")
		require.NoError(t, err)
		assert.False(t, d.IntroAvailable)
		assert.Nil(t, d.Images)
		assert.Nil(t, d.Contact.Homepage)
		require.NotNil(t, d.Contact.Phone)
		assert.Equal(t, "02-1234-5678", *d.Contact.Phone)
	})

	t.Run("common failure is an error", func(t *testing.T) {
		api := &fakeTourAPI{commonErr: domain.ErrNotFound}
		_, err := NewGetTourDetailUseCase(api).Execute(context.Background(), "1", "")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("blank id", func(t *testing.T) {
		_, err := NewGetTourDetailUseCase(&fakeTourAPI{}).Execute(context.Background(), "  ", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestGetMapMarkers(t *testing.T) {
	t.Run("centroid of usable coordinates", func(t *testing.T) {
		page := []domain.ListingItem{
			{ContentID: "1", Title: "a", MapX: "127.0", MapY: "37.0"},
			{ContentID: "2", Title: "b", MapX: "1290000000", MapY: "350000000"},
			{ContentID: "3", Title: "c", MapX: "0", MapY: "0"},
		}
		api := &fakeTourAPI{pages: map[int]*domain.ListingPage{1: {Items: page, TotalCount: 3}}}

		view, err := NewGetMapMarkersUseCase(api).Execute(context.Background(), listing.NewDescriptor("1", "", nil, "", ""), 500)
		require.NoError(t, err)
		assert.Len(t, view.Markers, 2)
		assert.False(t, view.UsedDefaultCenter)
		assert.Equal(t, geo.CentroidZoom, view.Zoom)
		assert.InDelta(t, 128.0, view.Center.Lng, 1e-9)
		assert.InDelta(t, 36.0, view.Center.Lat, 1e-9)
		assert.NotEmpty(t, view.Clusters)
		assert.Equal(t, MaxMarkers, api.areaQueries[0].NumOfRows)
	})

	t.Run("default center without coordinates", func(t *testing.T) {
		api := &fakeTourAPI{pages: map[int]*domain.ListingPage{1: {Items: items("x", 3, "12")}}}

		view, err := NewGetMapMarkersUseCase(api).Execute(context.Background(), listing.NewDescriptor("1", "", nil, "", ""), 0)
		require.NoError(t, err)
		assert.Empty(t, view.Markers)
		assert.True(t, view.UsedDefaultCenter)
		assert.Equal(t, geo.DefaultCenter, view.Center)
		assert.Equal(t, geo.DefaultZoom, view.Zoom)
	})
}

func TestListAreaCodes(t *testing.T) {
	api := &fakeTourAPI{areas: []domain.AreaCode{{Code: "1", Name: "서울", RNum: 1}}}
	codes, err := NewListAreaCodesUseCase(api).Execute(context.Background(), "all")
	require.NoError(t, err)
	assert.Equal(t, "서울", codes[0].Name)
}
