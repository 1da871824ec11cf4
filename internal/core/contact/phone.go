package contact

import (
	"regexp"
	"strings"

	"github.com/wojg58/Thursday/internal/core/domain"
)

var (
	// 02-123-4567, 031.123.4567, 010 1234 5678
	generalPhoneRe = regexp.MustCompile(`(?:^|\D)(\d{2,3})[-.\s](\d{3,4})[-.\s](\d{4})(?:$|\D)`)
	// сервисные номера: 1588-1234
	shortCodeRe = regexp.MustCompile(`(?:^|\D)(\d{4})[-.\s](\d{4})(?:$|\D)`)
	// (02) 123-4567
	parenPhoneRe = regexp.MustCompile(`\((\d{2,3})\)\s?(\d{3,4})[-.\s](\d{4})(?:$|\D)`)

	phonePatterns = []*regexp.Regexp{generalPhoneRe, shortCodeRe, parenPhoneRe}

	phoneJunk = strings.NewReplacer(".", "", " ", "", "(", "", ")", "")
)

const (
	minPhoneDigits = 8
	maxPhoneDigits = 13
)

// ResolvePhone выбирает телефон: common.tel в приоритете, иначе поле справочной из intro.
func ResolvePhone(commonTel string, intro *domain.IntroRecord, contentTypeID string) *string {
	if !domain.IsBlank(commonTel) {
		return &commonTel
	}

	field, ok := InfoCenterField(contentTypeID)
	if !ok {
		return nil
	}
	candidate := strings.TrimSpace(intro.Field(field))
	if candidate == "" {
		return nil
	}

	phone := NormalizePhone(candidate)
	return &phone
}

// NormalizePhone извлекает номер из свободного текста справочной.
// Если номер не найден, возвращает исходный текст без пробелов по краям.
func NormalizePhone(candidate string) string {
	candidate = strings.TrimSpace(candidate)

	for _, re := range phonePatterns {
		m := re.FindStringSubmatch(candidate)
		if m == nil {
			continue
		}
		groups := make([]string, 0, len(m)-1)
		for _, g := range m[1:] {
			groups = append(groups, phoneJunk.Replace(g))
		}
		return strings.Join(groups, "-")
	}

	digits := onlyDigits(candidate)
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return candidate
	}
	switch len(digits) {
	case 10:
		return digits[:2] + "-" + digits[2:6] + "-" + digits[6:]
	case 11:
		return digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
	default:
		return digits
	}
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
