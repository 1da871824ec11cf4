package rest

import (
	"net/http"
	"strconv"

	"github.com/wojg58/Thursday/internal/core/domain"
	"github.com/wojg58/Thursday/internal/core/listing"
)

// descriptorFromQuery читает параметры выборки из query-строки. Категории
// принимаются и повтором параметра, и через запятую.
func descriptorFromQuery(r *http.Request) domain.FeedDescriptor {
	q := r.URL.Query()
	return listing.NewDescriptor(
		q.Get("areaCode"),
		q.Get("sigunguCode"),
		q["contentTypeId"],
		q.Get("sort"),
		q.Get("keyword"),
	)
}

func descriptorFromRequest(req FeedRequest) domain.FeedDescriptor {
	return listing.NewDescriptor(req.AreaCode, req.SubAreaCode, req.Categories, req.SortBy, req.Keyword)
}

// intParam возвращает def, если параметра нет или он не число.
func intParam(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return def
	}
	return v
}
