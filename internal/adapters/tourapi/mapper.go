package tourapi

import (
	"strings"

	"github.com/wojg58/Thursday/internal/core/domain"
)

func str(s flexString) string {
	return strings.TrimSpace(string(s))
}

func toListingItem(d listItemDTO) domain.ListingItem {
	return domain.ListingItem{
		ContentID:     str(d.ContentID),
		ContentTypeID: str(d.ContentTypeID),
		Title:         str(d.Title),
		Addr1:         str(d.Addr1),
		Addr2:         str(d.Addr2),
		AreaCode:      str(d.AreaCode),
		SigunguCode:   str(d.SigunguCode),
		MapX:          str(d.MapX),
		MapY:          str(d.MapY),
		FirstImage:    str(d.FirstImage),
		FirstImage2:   str(d.FirstImage2),
		Tel:           str(d.Tel),
		ModifiedTime:  str(d.ModifiedTime),
	}
}

func toCommonRecord(d commonDTO) *domain.CommonRecord {
	return &domain.CommonRecord{
		ContentID:     str(d.ContentID),
		ContentTypeID: str(d.ContentTypeID),
		Title:         str(d.Title),
		Addr1:         str(d.Addr1),
		Addr2:         str(d.Addr2),
		Zipcode:       str(d.Zipcode),
		Overview:      str(d.Overview),
		// tel и homepage не обрезаем: сверка контактов сама решает, что пусто
		Tel:          string(d.Tel),
		TelName:      str(d.TelName),
		Homepage:     string(d.Homepage),
		MapX:         str(d.MapX),
		MapY:         str(d.MapY),
		FirstImage:   str(d.FirstImage),
		FirstImage2:  str(d.FirstImage2),
		ModifiedTime: str(d.ModifiedTime),
	}
}

func toIntroRecord(contentID, contentTypeID string, d introDTO) *domain.IntroRecord {
	fields := make(map[string]string, len(d))
	for k, v := range d {
		fields[strings.ToLower(k)] = string(v)
	}
	if id := strings.TrimSpace(fields["contentid"]); id != "" {
		contentID = id
	}
	if typeID := strings.TrimSpace(fields["contenttypeid"]); typeID != "" {
		contentTypeID = typeID
	}
	return &domain.IntroRecord{ContentID: contentID, ContentTypeID: contentTypeID, Fields: fields}
}

func toTourImage(d imageDTO) domain.TourImage {
	return domain.TourImage{
		Name:      str(d.ImgName),
		OriginURL: str(d.OriginImgURL),
		SmallURL:  str(d.SmallImageURL),
	}
}

func toAreaCode(d areaCodeDTO) domain.AreaCode {
	return domain.AreaCode{Code: str(d.Code), Name: str(d.Name), RNum: int(d.RNum)}
}
