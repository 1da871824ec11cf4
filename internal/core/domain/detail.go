package domain

import "strings"

// CommonRecord - ответ detailCommon2.
type CommonRecord struct {
	ContentID     string
	ContentTypeID string
	Title         string
	Addr1         string
	Addr2         string
	Zipcode       string
	Overview      string
	Tel           string
	TelName       string
	Homepage      string
	MapX          string
	MapY          string
	FirstImage    string
	FirstImage2   string
	ModifiedTime  string
}

// IntroRecord - ответ detailIntro2. Набор полей зависит от категории,
// поэтому храним их как есть, приведенными к строкам.
type IntroRecord struct {
	ContentID     string
	ContentTypeID string
	Fields        map[string]string
}

// Field безопасен для nil-записи и отсутствующих ключей.
func (r *IntroRecord) Field(name string) string {
	if r == nil || r.Fields == nil {
		return ""
	}
	return r.Fields[name]
}

// TourImage - одна запись detailImage2.
type TourImage struct {
	Name      string
	OriginURL string
	SmallURL  string
}

// Contact - результат сверки телефона и сайта между common и intro.
type Contact struct {
	Phone    *string
	Homepage *string
}

// IntroSummary - категорийные поля intro, сведенные к единым именам.
type IntroSummary struct {
	InfoCenter  string
	UseTime     string
	RestDate    string
	UseFee      string
	Parking     string
	Capacity    string
	Reservation string
}

// TourDetail - итоговое представление страницы объекта.
type TourDetail struct {
	Common         CommonRecord
	Contact        Contact
	Location       *Point
	Summary        IntroSummary
	Intro          map[string]string
	IntroAvailable bool
	Images         []TourImage
}

// IsBlank - пустая строка или только пробелы.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
