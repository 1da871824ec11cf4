package domain

// Point - координата в десятичных градусах.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MapMarker - маркер для карты. ContentID служит идентичностью маркера
// для выделения и связи со списком.
type MapMarker struct {
	ContentID     string
	ContentTypeID string
	Title         string
	Thumbnail     string
	Position      Point
	Geohash       string
}

// MarkerCluster - маркеры, попавшие в одну ячейку geohash.
type MarkerCluster struct {
	Cell       string
	Center     Point
	ContentIDs []string
}

// MapView - все, что нужно UI для отрисовки карты.
type MapView struct {
	Center            Point
	Zoom              int
	UsedDefaultCenter bool
	Markers           []MapMarker
	Clusters          []MarkerCluster
	TotalCount        int
}
