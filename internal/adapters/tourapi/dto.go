package tourapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/wojg58/Thursday/internal/core/domain"
)

// envelope - общий конверт ответа:
// {"response":{"header":{...},"body":{"items":{"item":[...]},"totalCount":N}}}
type envelope struct {
	Response struct {
		Header resultHeader `json:"header"`
		Body   envelopeBody `json:"body"`
	} `json:"response"`

	// при ошибке ключа конверт иногда приходит без "response"
	resultHeader
}

type resultHeader struct {
	ResultCode string `json:"resultCode"`
	ResultMsg  string `json:"resultMsg"`
}

type envelopeBody struct {
	Items      json.RawMessage `json:"items"`
	NumOfRows  flexInt         `json:"numOfRows"`
	PageNo     flexInt         `json:"pageNo"`
	TotalCount flexInt         `json:"totalCount"`
}

func decodeEnvelope(operation string, raw []byte) (*envelopeBody, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		// ошибки шлюза data.go.kr приходят в XML даже при _type=json
		return nil, &domain.UpstreamError{Operation: operation, ResultCode: "NON_JSON", ResultMsg: snippet(trimmed)}
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("failed to decode envelope: %w", err)
	}

	header := env.Response.Header
	if header.ResultCode == "" {
		header = env.resultHeader
	}
	if header.ResultCode != resultCodeOK {
		return nil, &domain.UpstreamError{Operation: operation, ResultCode: header.ResultCode, ResultMsg: header.ResultMsg}
	}
	return &env.Response.Body, nil
}

func snippet(b []byte) string {
	const max = 120
	s := strings.TrimSpace(string(b))
	if len(s) > max {
		s = s[:max]
	}
	return s
}

// decodeItems понимает все формы поля items: "", {"item": {...}} и {"item": [...]}.
func decodeItems[T any](raw json.RawMessage) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] == '"' || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var wrapper struct {
		Item json.RawMessage `json:"item"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	item := bytes.TrimSpace(wrapper.Item)
	if len(item) == 0 || bytes.Equal(item, []byte("null")) {
		return nil, nil
	}

	if item[0] == '[' {
		var list []T
		if err := json.Unmarshal(item, &list); err != nil {
			return nil, fmt.Errorf("failed to decode item list: %w", err)
		}
		return list, nil
	}

	var single T
	if err := json.Unmarshal(item, &single); err != nil {
		return nil, fmt.Errorf("failed to decode single item: %w", err)
	}
	return []T{single}, nil
}

// flexString принимает и строку, и число.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = flexString(str)
		return nil
	}
	*s = flexString(string(b))
	return nil
}

// flexInt принимает число или строку с числом; пустая строка - 0.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	var s flexString
	if err := s.UnmarshalJSON(b); err != nil {
		return err
	}
	str := strings.TrimSpace(string(s))
	if str == "" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(str)
	if err != nil {
		return fmt.Errorf("not an integer: %q", str)
	}
	*n = flexInt(v)
	return nil
}

type listItemDTO struct {
	ContentID     flexString `json:"contentid"`
	ContentTypeID flexString `json:"contenttypeid"`
	Title         flexString `json:"title"`
	Addr1         flexString `json:"addr1"`
	Addr2         flexString `json:"addr2"`
	AreaCode      flexString `json:"areacode"`
	SigunguCode   flexString `json:"sigungucode"`
	MapX          flexString `json:"mapx"`
	MapY          flexString `json:"mapy"`
	FirstImage    flexString `json:"firstimage"`
	FirstImage2   flexString `json:"firstimage2"`
	Tel           flexString `json:"tel"`
	ModifiedTime  flexString `json:"modifiedtime"`
}

type commonDTO struct {
	ContentID     flexString `json:"contentid"`
	ContentTypeID flexString `json:"contenttypeid"`
	Title         flexString `json:"title"`
	Addr1         flexString `json:"addr1"`
	Addr2         flexString `json:"addr2"`
	Zipcode       flexString `json:"zipcode"`
	Overview      flexString `json:"overview"`
	Tel           flexString `json:"tel"`
	TelName       flexString `json:"telname"`
	Homepage      flexString `json:"homepage"`
	MapX          flexString `json:"mapx"`
	MapY          flexString `json:"mapy"`
	FirstImage    flexString `json:"firstimage"`
	FirstImage2   flexString `json:"firstimage2"`
	ModifiedTime  flexString `json:"modifiedtime"`
}

// introDTO - набор полей зависит от категории, поэтому читаем как карту.
type introDTO map[string]flexString

type imageDTO struct {
	ImgName       flexString `json:"imgname"`
	OriginImgURL  flexString `json:"originimgurl"`
	SmallImageURL flexString `json:"smallimageurl"`
}

type areaCodeDTO struct {
	Code flexString `json:"code"`
	Name flexString `json:"name"`
	RNum flexInt    `json:"rnum"`
}
