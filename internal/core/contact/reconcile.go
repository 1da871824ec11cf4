package contact

import (
	"strings"

	"github.com/wojg58/Thursday/internal/core/domain"
)

// Reconcile сводит телефон и сайт из двух записей detailCommon/detailIntro.
// Значения common всегда в приоритете, intro используется только как запасной вариант.
// intro может быть nil, если второй запрос не удался.
func Reconcile(common domain.CommonRecord, intro *domain.IntroRecord, contentTypeID string) domain.Contact {
	if contentTypeID == "" {
		contentTypeID = common.ContentTypeID
	}
	return domain.Contact{
		Phone:    ResolvePhone(common.Tel, intro, contentTypeID),
		Homepage: ResolveHomepage(common.Homepage, intro),
	}
}

// Summarize приводит категорийные поля intro к единым именам.
func Summarize(intro *domain.IntroRecord, contentTypeID string) domain.IntroSummary {
	if intro == nil {
		return domain.IntroSummary{}
	}
	pick := func(table map[string]string) string {
		if name, ok := table[contentTypeID]; ok {
			return cleanIntroText(intro.Field(name))
		}
		return ""
	}

	summary := domain.IntroSummary{
		UseTime:     pick(useTimeFields),
		RestDate:    pick(restDateFields),
		UseFee:      pick(useFeeFields),
		Parking:     pick(parkingFields),
		Capacity:    pick(capacityFields),
		Reservation: pick(reservationFields),
	}
	if field, ok := InfoCenterField(contentTypeID); ok {
		summary.InfoCenter = cleanIntroText(intro.Field(field))
	}
	return summary
}

var breakReplacer = strings.NewReplacer("<br />", "\n", "<br/>", "\n", "<br>", "\n", "<BR>", "\n")

// cleanIntroText заменяет переносы <br> и убирает пробелы по краям.
func cleanIntroText(s string) string {
	return strings.TrimSpace(breakReplacer.Replace(s))
}
