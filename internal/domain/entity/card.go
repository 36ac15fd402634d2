package entity

// Section is the marketplace board a card is posted to.
type Section string

const (
	SectionForSale  Section = "ForSale"
	SectionWanted   Section = "Wanted"
	SectionExchange Section = "Exchange"
)

// Sections lists every marketplace section.
var Sections = []Section{SectionForSale, SectionWanted, SectionExchange}

// IsValid checks if the Section is a valid value.
func (s Section) IsValid() bool {
	switch s {
	case SectionForSale, SectionWanted, SectionExchange:
		return true
	default:
		return false
	}
}

// Keyword tags marketplace cards.
type Keyword struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Created string `json:"created"`
}

// MarketplaceCard is a community classified ad.
type MarketplaceCard struct {
	ID               int64     `json:"id"`
	Creator          User      `json:"creator"`
	Section          Section   `json:"section"`
	Created          string    `json:"created"`
	DisplayPeriodEnd string    `json:"displayPeriodEnd,omitempty"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	Keywords         []Keyword `json:"keywords"`
}

// Currency describes a national currency.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
