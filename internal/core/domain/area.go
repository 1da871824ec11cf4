package domain

// AreaCode - элемент справочника регионов areaCode2.
type AreaCode struct {
	Code string
	Name string
	RNum int
}
