package contact

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/wojg58/Thursday/internal/core/domain"
)

var (
	hrefRe     = regexp.MustCompile(`(?i)href\s*=\s*["']([^"']+)["']`)
	linkTextRe = regexp.MustCompile(`(?i)https?://[^\s<>"']+`)
)

// homepageSentinels - значения, которыми поставщик обозначает отсутствие сайта.
var homepageSentinels = map[string]struct{}{
	"":          {},
	"없음":        {},
	"n/a":       {},
	"-":         {},
	"null":      {},
	"undefined": {},
}

// ResolveHomepage выбирает сайт: common.homepage в приоритете, иначе первое
// непустое поле intro из HomepageFields.
func ResolveHomepage(commonHomepage string, intro *domain.IntroRecord) *string {
	candidate := commonHomepage
	if domain.IsBlank(candidate) {
		candidate = ""
		for _, field := range homepageFields {
			if v := intro.Field(field); !domain.IsBlank(v) {
				candidate = v
				break
			}
		}
	}
	return NormalizeHomepage(candidate)
}

// NormalizeHomepage приводит значение к абсолютному URL или возвращает nil.
func NormalizeHomepage(raw string) *string {
	s := strings.TrimSpace(raw)

	if strings.Contains(s, "<") && strings.Contains(s, ">") {
		if extracted, ok := extractURLFromMarkup(s); ok {
			s = extracted
		}
	}

	if _, sentinel := homepageSentinels[strings.ToLower(s)]; sentinel {
		return nil
	}

	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		s = "https://" + s
	}
	if !isAbsoluteHTTPURL(s) {
		return nil
	}
	return &s
}

// extractURLFromMarkup ищет сначала атрибут href, затем текст ссылки вида http(s)://.
func extractURLFromMarkup(markup string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return extractURLWithRegexp(markup)
	}

	if href, ok := doc.Find("[href]").First().Attr("href"); ok && strings.TrimSpace(href) != "" {
		return strings.TrimSpace(href), true
	}

	var found string
	doc.Find("a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if m := linkTextRe.FindString(strings.TrimSpace(sel.Text())); m != "" {
			found = m
			return false
		}
		return true
	})
	if found == "" {
		found = linkTextRe.FindString(doc.Text())
	}
	if found != "" {
		return found, true
	}
	return "", false
}

func extractURLWithRegexp(markup string) (string, bool) {
	if m := hrefRe.FindStringSubmatch(markup); m != nil && strings.TrimSpace(m[1]) != "" {
		return strings.TrimSpace(m[1]), true
	}
	if m := linkTextRe.FindString(markup); m != "" {
		return m, true
	}
	return "", false
}

func isAbsoluteHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	// url.Parse пропускает < > " в хосте, для ссылки это мусор
	return u.Host != "" && !strings.ContainsAny(u.Host, "<>\"'`{}|\\^")
}
