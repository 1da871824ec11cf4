package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wojg58/Thursday/internal/core/domain"
)

func intro(fields map[string]string) *domain.IntroRecord {
	return &domain.IntroRecord{ContentID: "1", Fields: fields}
}

func TestResolvePhone(t *testing.T) {
	t.Run("common phone wins regardless of intro", func(t *testing.T) {
		got := ResolvePhone("02-123-4567", intro(map[string]string{"infocenter": "1588-1234"}), domain.CategoryTouristSpot)
		require.NotNil(t, got)
		assert.Equal(t, "02-123-4567", *got)
	})

	t.Run("service number extracted from free text", func(t *testing.T) {
		got := ResolvePhone("  ", intro(map[string]string{"infocenter": "문의: 1588-1234 (평일만)"}), domain.CategoryTouristSpot)
		require.NotNil(t, got)
		assert.Equal(t, "1588-1234", *got)
	})

	t.Run("bare eleven digits reformatted", func(t *testing.T) {
		got := ResolvePhone("", intro(map[string]string{"infocenterfood": "01012345678"}), domain.CategoryRestaurant)
		require.NotNil(t, got)
		assert.Equal(t, "010-1234-5678", *got)
	})

	t.Run("no candidate", func(t *testing.T) {
		assert.Nil(t, ResolvePhone("", intro(map[string]string{}), domain.CategoryTouristSpot))
		assert.Nil(t, ResolvePhone("", nil, domain.CategoryTouristSpot))
	})

	t.Run("category without info center field", func(t *testing.T) {
		assert.Nil(t, ResolvePhone("", intro(map[string]string{"infocenter": "02-123-4567"}), domain.CategoryFestival))
	})

	t.Run("field of another category ignored", func(t *testing.T) {
		assert.Nil(t, ResolvePhone("", intro(map[string]string{"infocenter": "02-123-4567"}), domain.CategoryLodging))
	})
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      string
	}{
		{name: "general with dots", candidate: "관리사무소 031.123.4567", want: "031-123-4567"},
		{name: "general with spaces", candidate: "010 1234 5678", want: "010-1234-5678"},
		{name: "first match wins", candidate: "02-123-4567, 1588-1234", want: "02-123-4567"},
		{name: "parenthesized prefix", candidate: "(02) 123-4567", want: "02-123-4567"},
		{name: "short code tried before parenthesized prefix", candidate: "(02)1234-5678", want: "1234-5678"},
		{name: "parenthesized prefix with space", candidate: "tel (064) 710-6991", want: "064-710-6991"},
		{name: "ten digits", candidate: "0212345678", want: "02-1234-5678"},
		{name: "nine digits left bare", candidate: "tel:021234567", want: "021234567"},
		{name: "too few digits kept verbatim", candidate: "  1330 관광안내  ", want: "1330 관광안내"},
		{name: "no digits kept verbatim", candidate: "홈페이지 참조", want: "홈페이지 참조"},
		{name: "too many digits kept verbatim", candidate: "12345678901234", want: "12345678901234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.candidate))
		})
	}
}
