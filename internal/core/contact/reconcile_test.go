package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wojg58/Thursday/internal/core/domain"
)

func TestReconcile_UsesCommonCategoryWhenNotGiven(t *testing.T) {
	common := domain.CommonRecord{ContentID: "1", ContentTypeID: domain.CategoryCulture, Homepage: "museum.go.kr"}
	in := intro(map[string]string{"infocenterculture": "02-3704-3114"})

	got := Reconcile(common, in, "")

	require.NotNil(t, got.Phone)
	assert.Equal(t, "02-3704-3114", *got.Phone)
	require.NotNil(t, got.Homepage)
	assert.Equal(t, "https://museum.go.kr", *got.Homepage)
}

func TestReconcile_WithoutIntro(t *testing.T) {
	got := Reconcile(domain.CommonRecord{ContentTypeID: domain.CategoryTouristSpot}, nil, domain.CategoryTouristSpot)
	assert.Nil(t, got.Phone)
	assert.Nil(t, got.Homepage)
}

func TestSummarize(t *testing.T) {
	in := intro(map[string]string{
		"opentimefood":    "10:00~22:00<br>라스트오더 21:00",
		"restdatefood":    "연중무휴",
		"parkingfood":     "가능",
		"seat":            "120",
		"reservationfood": "가능",
		"infocenterfood":  "02-000-0000",
		"usetime":         "should be ignored",
	})

	got := Summarize(in, domain.CategoryRestaurant)

	assert.Equal(t, domain.IntroSummary{
		InfoCenter:  "02-000-0000",
		UseTime:     "10:00~22:00\n라스트오더 21:00",
		RestDate:    "연중무휴",
		Parking:     "가능",
		Capacity:    "120",
		Reservation: "가능",
	}, got)

	assert.Equal(t, domain.IntroSummary{}, Summarize(nil, domain.CategoryRestaurant))
}
