package entity

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	UserID int64 `json:"userId"`
}

// CreateUser is the registration payload.
type CreateUser struct {
	FirstName   string   `json:"firstName" validate:"required,max=32,nametext"`
	LastName    string   `json:"lastName" validate:"required,max=32,nametext"`
	MiddleName  string   `json:"middleName,omitempty" validate:"omitempty,max=32,nametext"`
	Nickname    string   `json:"nickname,omitempty" validate:"omitempty,max=32,nickname"`
	Bio         string   `json:"bio,omitempty" validate:"omitempty,max=200,multiline"`
	Email       string   `json:"email" validate:"required,email"`
	DateOfBirth string   `json:"dateOfBirth" validate:"required,isodate,minage=13"`
	PhoneNumber string   `json:"phoneNumber,omitempty" validate:"omitempty,phone"`
	HomeAddress Location `json:"homeAddress"`
	Password    string   `json:"password" validate:"required,password"`
}

// CreateBusiness is the payload for registering a business.
type CreateBusiness struct {
	PrimaryAdministratorID int64        `json:"primaryAdministratorId" validate:"required,gt=0"`
	Name                   string       `json:"name" validate:"required,max=100,text"`
	Description            string       `json:"description,omitempty" validate:"omitempty,max=200,multiline"`
	Address                Location     `json:"address"`
	BusinessType           BusinessType `json:"businessType" validate:"required,businesstype"`
}

// CreateProduct is the payload for adding a product to a business catalogue.
type CreateProduct struct {
	ID                     string   `json:"id" validate:"required,productcode"`
	Name                   string   `json:"name" validate:"required,max=50,text"`
	Description            string   `json:"description,omitempty" validate:"omitempty,max=200,multiline"`
	Manufacturer           string   `json:"manufacturer,omitempty" validate:"omitempty,max=100,text"`
	RecommendedRetailPrice *float64 `json:"recommendedRetailPrice,omitempty" validate:"omitempty,gte=0,lt=100000,currency"`
	CountryOfSale          string   `json:"countryOfSale,omitempty" validate:"omitempty,max=100,placename"`
}

// CreateInventoryItem is the payload for stocking a product.
// Dates are ISO dates and must satisfy manufactured <= sellBy <= bestBefore <= expires.
type CreateInventoryItem struct {
	ProductID    string   `json:"productId" validate:"required,productcode"`
	Quantity     int      `json:"quantity" validate:"gte=1"`
	PricePerItem *float64 `json:"pricePerItem,omitempty" validate:"omitempty,gte=0,lt=100000,currency"`
	TotalPrice   *float64 `json:"totalPrice,omitempty" validate:"omitempty,gte=0,lt=1000000,currency"`
	Manufactured string   `json:"manufactured,omitempty" validate:"omitempty,isodate"`
	SellBy       string   `json:"sellBy,omitempty" validate:"omitempty,isodate"`
	BestBefore   string   `json:"bestBefore,omitempty" validate:"omitempty,isodate"`
	Expires      string   `json:"expires" validate:"required,isodate"`
}

// CreateInventoryItemResponse carries the id of a newly stocked item when the backend returns one.
type CreateInventoryItemResponse struct {
	InventoryItemID int64 `json:"inventoryItemId"`
}

// CreateSaleItem is the payload for listing inventory for sale.
type CreateSaleItem struct {
	InventoryItemID int64   `json:"inventoryItemId" validate:"required,gt=0"`
	Quantity        int     `json:"quantity" validate:"gt=0"`
	Price           float64 `json:"price" validate:"gte=0,lt=100000,currency"`
	MoreInfo        string  `json:"moreInfo,omitempty" validate:"omitempty,max=200,multiline"`
	Closes          string  `json:"closes,omitempty" validate:"omitempty,isodate"`
}

// CreateSaleItemResponse carries the id of a new listing.
type CreateSaleItemResponse struct {
	ListingID int64 `json:"listingId"`
}

// CreateMarketplaceCard is the payload for posting a card.
type CreateMarketplaceCard struct {
	CreatorID   int64   `json:"creatorId" validate:"required,gt=0"`
	Section     Section `json:"section" validate:"required,section"`
	Title       string  `json:"title" validate:"required,max=50,text"`
	Description string  `json:"description,omitempty" validate:"omitempty,max=200,multiline"`
	KeywordIDs  []int64 `json:"keywordIds" validate:"dive,gt=0"`
}

// AdministratorRequest names the user promoted to or removed from a business's administrators.
type AdministratorRequest struct {
	UserID int64 `json:"userId" validate:"required,gt=0"`
}

// CountResponse is the body of every count endpoint.
type CountResponse struct {
	Count int `json:"count"`
}
