package entity

// Image is a product photo stored by the backend.
type Image struct {
	ID                int64  `json:"id"`
	Filename          string `json:"filename"`
	ThumbnailFilename string `json:"thumbnailFilename"`
}

// Product is a catalogue entry of a business. ID is the business-chosen product code.
type Product struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	Description            string   `json:"description,omitempty"`
	Manufacturer           string   `json:"manufacturer,omitempty"`
	RecommendedRetailPrice *float64 `json:"recommendedRetailPrice,omitempty"`
	Created                string   `json:"created,omitempty"`
	Images                 []Image  `json:"images"`
	CountryOfSale          string   `json:"countryOfSale,omitempty"`
}

// PrimaryImage returns the first image, which the backend keeps as the primary one.
func (p *Product) PrimaryImage() (Image, bool) {
	if len(p.Images) == 0 {
		return Image{}, false
	}

	return p.Images[0], true
}
