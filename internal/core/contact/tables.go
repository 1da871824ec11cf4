package contact

import "github.com/wojg58/Thursday/internal/core/domain"

// Имена полей detailIntro2 различаются по категориям. Таблицы неизменяемы:
// доступ только через функции ниже.

// infoCenterFields - поле "справочная" для каждой категории.
var infoCenterFields = map[string]string{
	domain.CategoryTouristSpot: "infocenter",
	domain.CategoryCulture:     "infocenterculture",
	domain.CategoryLeisure:     "infocenterleports",
	domain.CategoryLodging:     "infocenterlodging",
	domain.CategoryShopping:    "infocentershopping",
	domain.CategoryRestaurant:  "infocenterfood",
}

// homepageFields - порядок перебора полей intro в поисках сайта.
var homepageFields = [...]string{
	"homepage",
	"eventhomepage",
	"reservationurl",
	"reservationlodging",
	"bookingplace",
	"subevent",
}

var (
	useTimeFields = map[string]string{
		domain.CategoryTouristSpot: "usetime",
		domain.CategoryCulture:     "usetimeculture",
		domain.CategoryFestival:    "playtime",
		domain.CategoryCourse:      "taketime",
		domain.CategoryLeisure:     "usetimeleports",
		domain.CategoryLodging:     "checkintime",
		domain.CategoryShopping:    "opentime",
		domain.CategoryRestaurant:  "opentimefood",
	}
	restDateFields = map[string]string{
		domain.CategoryTouristSpot: "restdate",
		domain.CategoryCulture:     "restdateculture",
		domain.CategoryLeisure:     "restdateleports",
		domain.CategoryShopping:    "restdateshopping",
		domain.CategoryRestaurant:  "restdatefood",
	}
	useFeeFields = map[string]string{
		domain.CategoryCulture:  "usefee",
		domain.CategoryFestival: "usetimefestival",
		domain.CategoryLeisure:  "usefeeleports",
	}
	parkingFields = map[string]string{
		domain.CategoryTouristSpot: "parking",
		domain.CategoryCulture:     "parkingculture",
		domain.CategoryLeisure:     "parkingleports",
		domain.CategoryLodging:     "parkinglodging",
		domain.CategoryShopping:    "parkingshopping",
		domain.CategoryRestaurant:  "parkingfood",
	}
	capacityFields = map[string]string{
		domain.CategoryTouristSpot: "accomcount",
		domain.CategoryCulture:     "accomcountculture",
		domain.CategoryLeisure:     "accomcountleports",
		domain.CategoryLodging:     "accomcountlodging",
		domain.CategoryRestaurant:  "seat",
	}
	reservationFields = map[string]string{
		domain.CategoryLeisure:    "reservation",
		domain.CategoryLodging:    "reservationlodging",
		domain.CategoryRestaurant: "reservationfood",
	}
)

// InfoCenterField возвращает имя поля справочной для категории.
func InfoCenterField(contentTypeID string) (string, bool) {
	name, ok := infoCenterFields[contentTypeID]
	return name, ok
}

// HomepageFields возвращает копию списка полей сайта в порядке приоритета.
func HomepageFields() []string {
	fields := make([]string, len(homepageFields))
	copy(fields, homepageFields[:])
	return fields
}
