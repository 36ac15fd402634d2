package entity

// BusinessType is the backend's fixed classification of a business.
type BusinessType string

const (
	BusinessTypeAccommodation BusinessType = "Accommodation and Food Services"
	BusinessTypeRetail        BusinessType = "Retail Trade"
	BusinessTypeCharitable    BusinessType = "Charitable organisation"
	BusinessTypeNonProfit     BusinessType = "Non-profit organisation"
)

// BusinessTypes lists every accepted business type in display order.
var BusinessTypes = []BusinessType{
	BusinessTypeAccommodation,
	BusinessTypeRetail,
	BusinessTypeCharitable,
	BusinessTypeNonProfit,
}

// IsValid checks if the BusinessType is a valid value.
func (t BusinessType) IsValid() bool {
	switch t {
	case BusinessTypeAccommodation, BusinessTypeRetail, BusinessTypeCharitable, BusinessTypeNonProfit:
		return true
	default:
		return false
	}
}

// Business is a trading entity administered by one or more users.
type Business struct {
	ID                     int64        `json:"id"`
	PrimaryAdministratorID int64        `json:"primaryAdministratorId"`
	Administrators         []User       `json:"administrators,omitempty"`
	Name                   string       `json:"name"`
	Description            string       `json:"description,omitempty"`
	Address                Location     `json:"address"`
	BusinessType           BusinessType `json:"businessType"`
	Created                string       `json:"created,omitempty"`
}

// IsAdministrator reports whether userID is listed as an administrator or is the primary one.
func (b *Business) IsAdministrator(userID int64) bool {
	if b.PrimaryAdministratorID == userID {
		return true
	}

	for i := range b.Administrators {
		if b.Administrators[i].ID == userID {
			return true
		}
	}

	return false
}
