package rest

import (
	"time"

	"github.com/wojg58/Thursday/internal/core/domain"
	"github.com/wojg58/Thursday/internal/core/geo"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// TourItemResponse - карточка объекта. Position уже в десятичных градусах.
type TourItemResponse struct {
	ContentID     string        `json:"content_id"`
	ContentTypeID string        `json:"content_type_id"`
	Title         string        `json:"title"`
	Addr1         string        `json:"addr1,omitempty"`
	Addr2         string        `json:"addr2,omitempty"`
	AreaCode      string        `json:"area_code,omitempty"`
	SigunguCode   string        `json:"sigungu_code,omitempty"`
	Thumbnails    []string      `json:"thumbnails"`
	Tel           string        `json:"tel,omitempty"`
	ModifiedTime  string        `json:"modified_time,omitempty"`
	Position      *domain.Point `json:"position,omitempty"`
}

type ListToursResponse struct {
	Data    []TourItemResponse `json:"data"`
	Total   int                `json:"total"`
	Page    int                `json:"page"`
	PerPage int                `json:"per_page"`
	HasMore bool               `json:"has_more"`
}

type FeedRequest struct {
	AreaCode    string   `json:"area_code"`
	SubAreaCode string   `json:"sub_area_code"`
	Categories  []string `json:"categories"`
	SortBy      string   `json:"sort_by"`
	Keyword     string   `json:"keyword"`
}

type FeedDescriptorResponse struct {
	Mode        string   `json:"mode"`
	AreaCode    string   `json:"area_code,omitempty"`
	SubAreaCode string   `json:"sub_area_code,omitempty"`
	Categories  []string `json:"categories"`
	SortBy      string   `json:"sort_by"`
	Keyword     string   `json:"keyword,omitempty"`
}

type FeedResponse struct {
	FeedID     string                 `json:"feed_id"`
	Descriptor FeedDescriptorResponse `json:"descriptor"`
	Data       []TourItemResponse     `json:"data"`
	Page       int                    `json:"page"`
	Total      int                    `json:"total"`
	HasMore    bool                   `json:"has_more"`
	Loading    bool                   `json:"loading"`
	Version    uint64                 `json:"version"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

type SummaryResponse struct {
	InfoCenter  string `json:"info_center,omitempty"`
	UseTime     string `json:"use_time,omitempty"`
	RestDate    string `json:"rest_date,omitempty"`
	UseFee      string `json:"use_fee,omitempty"`
	Parking     string `json:"parking,omitempty"`
	Capacity    string `json:"capacity,omitempty"`
	Reservation string `json:"reservation,omitempty"`
}

type ImageResponse struct {
	Name      string `json:"name,omitempty"`
	OriginURL string `json:"origin_url,omitempty"`
	SmallURL  string `json:"small_url,omitempty"`
}

type TourDetailResponse struct {
	ContentID      string            `json:"content_id"`
	ContentTypeID  string            `json:"content_type_id"`
	Title          string            `json:"title"`
	Addr1          string            `json:"addr1,omitempty"`
	Addr2          string            `json:"addr2,omitempty"`
	Zipcode        string            `json:"zipcode,omitempty"`
	Overview       string            `json:"overview,omitempty"`
	Thumbnails     []string          `json:"thumbnails"`
	Phone          *string           `json:"phone"`
	Homepage       *string           `json:"homepage"`
	Location       *domain.Point     `json:"location"`
	Summary        SummaryResponse   `json:"summary"`
	IntroAvailable bool              `json:"intro_available"`
	Intro          map[string]string `json:"intro,omitempty"`
	Images         []ImageResponse   `json:"images"`
	ModifiedTime   string            `json:"modified_time,omitempty"`
}

type MarkerResponse struct {
	ContentID     string       `json:"content_id"`
	ContentTypeID string       `json:"content_type_id"`
	Title         string       `json:"title"`
	Thumbnail     string       `json:"thumbnail,omitempty"`
	Position      domain.Point `json:"position"`
	Geohash       string       `json:"geohash"`
}

type ClusterResponse struct {
	Cell       string       `json:"cell"`
	Center     domain.Point `json:"center"`
	ContentIDs []string     `json:"content_ids"`
}

type MapViewResponse struct {
	Center            domain.Point      `json:"center"`
	Zoom              int               `json:"zoom"`
	UsedDefaultCenter bool              `json:"used_default_center"`
	Markers           []MarkerResponse  `json:"markers"`
	Clusters          []ClusterResponse `json:"clusters"`
	Total             int               `json:"total"`
}

type AreaCodeResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type AddBookmarkRequest struct {
	ContentID     string `json:"content_id"`
	ContentTypeID string `json:"content_type_id"`
	Title         string `json:"title"`
	FirstImage    string `json:"first_image"`
	Addr          string `json:"addr"`
}

type AddBookmarkResponse struct {
	ContentID string `json:"content_id"`
	Created   bool   `json:"created"`
}

type RemoveBookmarksRequest struct {
	ContentIDs []string `json:"content_ids"`
}

type RemoveBookmarksResponse struct {
	Removed []string `json:"removed"`
}

type BookmarkResponse struct {
	ContentID     string    `json:"content_id"`
	ContentTypeID string    `json:"content_type_id,omitempty"`
	Title         string    `json:"title"`
	FirstImage    string    `json:"first_image,omitempty"`
	Addr          string    `json:"addr,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// PaginatedBookmarksResponse - страница закладок.
type PaginatedBookmarksResponse struct {
	Data    []BookmarkResponse `json:"data"`
	Total   int64              `json:"total"`
	Page    int                `json:"page"`
	PerPage int                `json:"per_page"`
}

type BookmarkExistsResponse struct {
	ContentID  string `json:"content_id"`
	Bookmarked bool   `json:"bookmarked"`
}

func toTourItemResponses(items []domain.ListingItem) []TourItemResponse {
	out := make([]TourItemResponse, len(items))
	for i, it := range items {
		out[i] = TourItemResponse{
			ContentID:     it.ContentID,
			ContentTypeID: it.ContentTypeID,
			Title:         it.Title,
			Addr1:         it.Addr1,
			Addr2:         it.Addr2,
			AreaCode:      it.AreaCode,
			SigunguCode:   it.SigunguCode,
			Thumbnails:    it.Thumbnails(),
			Tel:           it.Tel,
			ModifiedTime:  it.ModifiedTime,
			Position:      geo.PointOf(it.MapX, it.MapY),
		}
	}
	return out
}

func toFeedResponse(state *domain.FeedState) FeedResponse {
	d := state.Descriptor
	categories := d.CategoryCodes
	if categories == nil {
		categories = []string{}
	}
	return FeedResponse{
		FeedID: state.ID.String(),
		Descriptor: FeedDescriptorResponse{
			Mode:        string(d.Mode),
			AreaCode:    d.AreaCode,
			SubAreaCode: d.SubAreaCode,
			Categories:  categories,
			SortBy:      string(d.SortBy),
			Keyword:     d.Keyword,
		},
		Data:      toTourItemResponses(state.Items),
		Page:      state.Page,
		Total:     state.TotalCount,
		HasMore:   state.HasMore,
		Loading:   state.Loading,
		Version:   state.Version,
		UpdatedAt: state.UpdatedAt,
	}
}

func toTourDetailResponse(d *domain.TourDetail) TourDetailResponse {
	c := d.Common
	thumbs := domain.ListingItem{FirstImage: c.FirstImage, FirstImage2: c.FirstImage2}.Thumbnails()
	images := make([]ImageResponse, len(d.Images))
	for i, img := range d.Images {
		images[i] = ImageResponse{Name: img.Name, OriginURL: img.OriginURL, SmallURL: img.SmallURL}
	}
	return TourDetailResponse{
		ContentID:     c.ContentID,
		ContentTypeID: c.ContentTypeID,
		Title:         c.Title,
		Addr1:         c.Addr1,
		Addr2:         c.Addr2,
		Zipcode:       c.Zipcode,
		Overview:      c.Overview,
		Thumbnails:    thumbs,
		Phone:         d.Contact.Phone,
		Homepage:      d.Contact.Homepage,
		Location:      d.Location,
		Summary: SummaryResponse{
			InfoCenter:  d.Summary.InfoCenter,
			UseTime:     d.Summary.UseTime,
			RestDate:    d.Summary.RestDate,
			UseFee:      d.Summary.UseFee,
			Parking:     d.Summary.Parking,
			Capacity:    d.Summary.Capacity,
			Reservation: d.Summary.Reservation,
		},
		IntroAvailable: d.IntroAvailable,
		Intro:          d.Intro,
		Images:         images,
		ModifiedTime:   c.ModifiedTime,
	}
}

func toMapViewResponse(v *domain.MapView) MapViewResponse {
	resp := MapViewResponse{
		Center:            v.Center,
		Zoom:              v.Zoom,
		UsedDefaultCenter: v.UsedDefaultCenter,
		Markers:           make([]MarkerResponse, len(v.Markers)),
		Clusters:          make([]ClusterResponse, len(v.Clusters)),
		Total:             v.TotalCount,
	}
	for i, m := range v.Markers {
		resp.Markers[i] = MarkerResponse{
			ContentID:     m.ContentID,
			ContentTypeID: m.ContentTypeID,
			Title:         m.Title,
			Thumbnail:     m.Thumbnail,
			Position:      m.Position,
			Geohash:       m.Geohash,
		}
	}
	for i, c := range v.Clusters {
		resp.Clusters[i] = ClusterResponse{Cell: c.Cell, Center: c.Center, ContentIDs: c.ContentIDs}
	}
	return resp
}
