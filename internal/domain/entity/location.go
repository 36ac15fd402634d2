package entity

import "strings"

// Location is a postal address. Only Country is required.
type Location struct {
	StreetNumber string `json:"streetNumber,omitempty" validate:"omitempty,max=9,streetnumber"`
	StreetName   string `json:"streetName,omitempty" validate:"omitempty,max=99,placename"`
	District     string `json:"district,omitempty" validate:"omitempty,max=100,district"`
	City         string `json:"city,omitempty" validate:"omitempty,max=99,placename"`
	Region       string `json:"region,omitempty" validate:"omitempty,max=99,placename"`
	Country      string `json:"country" validate:"required,max=99,placename"`
	Postcode     string `json:"postcode,omitempty" validate:"omitempty,max=16,postcode"`
}

// Format renders the location on one line. A partial format omits the
// street and postcode, which is what other users are shown.
func (l Location) Format(full bool) string {
	var parts []string

	if full {
		street := strings.TrimSpace(l.StreetNumber + " " + l.StreetName)
		parts = appendNonEmpty(parts, street, l.District)
	}

	parts = appendNonEmpty(parts, l.City, l.Region)

	if full && l.Postcode != "" {
		parts = append(parts, l.Postcode)
	}

	return strings.Join(appendNonEmpty(parts, l.Country), ", ")
}

func appendNonEmpty(parts []string, values ...string) []string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			parts = append(parts, v)
		}
	}

	return parts
}
