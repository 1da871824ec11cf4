package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wojg58/Thursday/internal/core/domain"
)

func items(pairs ...string) []domain.ListingItem {
	out := make([]domain.ListingItem, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.ListingItem{ContentID: pairs[i], ContentTypeID: pairs[i+1]})
	}
	return out
}

func TestFilterByCategories(t *testing.T) {
	src := items("a", "12", "b", "14", "c", "39", "d", "12", "e", "14", "f", "39")

	t.Run("multi category keeps order", func(t *testing.T) {
		got := FilterByCategories(src, []string{"12", "39"})
		assert.Equal(t, []string{"a", "c", "d", "f"}, domain.ContentIDs(got))
	})

	t.Run("single category untouched", func(t *testing.T) {
		assert.Equal(t, src, FilterByCategories(src, []string{"14"}))
	})

	t.Run("no category untouched", func(t *testing.T) {
		assert.Equal(t, src, FilterByCategories(src, nil))
	})
}

func TestSortItems_Name(t *testing.T) {
	src := []domain.ListingItem{
		{ContentID: "1", Title: "하늘공원"},
		{ContentID: "2", Title: "가야산"},
		{ContentID: "3", Title: "남산타워"},
		{ContentID: "4", Title: "다산생태공원"},
	}

	got := SortItems(src, domain.SortName)

	assert.Equal(t, []string{"2", "3", "4", "1"}, domain.ContentIDs(got))
	assert.Equal(t, "1", src[0].ContentID, "source slice must not be reordered")
}

func TestSortItems_Latest(t *testing.T) {
	src := []domain.ListingItem{
		{ContentID: "old", ModifiedTime: "20200101000000"},
		{ContentID: "none", ModifiedTime: ""},
		{ContentID: "new", ModifiedTime: "20240315093000"},
		{ContentID: "mid", ModifiedTime: "20220601120000"},
		{ContentID: "mid2", ModifiedTime: "20220601120000"},
	}

	got := SortItems(src, domain.SortLatest)

	assert.Equal(t, []string{"new", "mid", "mid2", "old", "none"}, domain.ContentIDs(got))
}

func TestNewDescriptor(t *testing.T) {
	d := NewDescriptor(" 1 ", "all", []string{"12,39", " 12 ", "", "all"}, "NAME", "  경복궁 ")

	assert.Equal(t, domain.FeedDescriptor{
		Mode:          domain.FeedModeKeyword,
		AreaCode:      "1",
		CategoryCodes: []string{"12", "39"},
		SortBy:        domain.SortName,
		Keyword:       "경복궁",
	}, d)

	d = NewDescriptor("", "", nil, "bogus", "   ")
	assert.Equal(t, domain.FeedModeArea, d.Mode)
	assert.Equal(t, domain.SortLatest, d.SortBy)
}

func TestBuildUpstreamQuery(t *testing.T) {
	tests := []struct {
		name string
		d    domain.FeedDescriptor
		want domain.UpstreamQuery
	}{
		{
			name: "default area when nothing selected",
			d:    NewDescriptor("", "", nil, "latest", ""),
			want: domain.UpstreamQuery{Mode: domain.FeedModeArea, AreaCode: DefaultAreaCode, Arrange: "C", PageNo: 1, NumOfRows: PageSize},
		},
		{
			name: "all sentinel falls back to default",
			d:    NewDescriptor("all", "", []string{"12", "14"}, "name", ""),
			want: domain.UpstreamQuery{Mode: domain.FeedModeArea, AreaCode: DefaultAreaCode, ContentTypeID: "12", Arrange: "A", PageNo: 1, NumOfRows: PageSize},
		},
		{
			name: "sub area wins for keyword search",
			d:    NewDescriptor("1", "23", []string{"39"}, "latest", "떡볶이"),
			want: domain.UpstreamQuery{Mode: domain.FeedModeKeyword, AreaCode: "23", ContentTypeID: "39", Keyword: "떡볶이", Arrange: "C", PageNo: 1, NumOfRows: PageSize},
		},
		{
			name: "keyword without area is nationwide",
			d:    NewDescriptor("", "", []string{"12"}, "latest", "경복궁"),
			want: domain.UpstreamQuery{Mode: domain.FeedModeKeyword, ContentTypeID: "12", Keyword: "경복궁", Arrange: "C", PageNo: 1, NumOfRows: PageSize},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildUpstreamQuery(tt.d, 1, PageSize))
		})
	}
}

func TestCompose(t *testing.T) {
	src := []domain.ListingItem{
		{ContentID: "a", ContentTypeID: "12", Title: "나"},
		{ContentID: "b", ContentTypeID: "14", Title: "가"},
		{ContentID: "c", ContentTypeID: "39", Title: "가"},
	}
	d := NewDescriptor("1", "", []string{"12", "39"}, "name", "")

	assert.Equal(t, []string{"c", "a"}, domain.ContentIDs(Compose(src, d)))
}
