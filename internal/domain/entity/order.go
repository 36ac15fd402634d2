package entity

import "strconv"

// UserOrderBy is a sort key accepted by the user search endpoint.
type UserOrderBy string

const (
	UserOrderByID         UserOrderBy = "userId"
	UserOrderByRelevance  UserOrderBy = "relevance"
	UserOrderByFirstName  UserOrderBy = "firstName"
	UserOrderByMiddleName UserOrderBy = "middleName"
	UserOrderByLastName   UserOrderBy = "lastName"
	UserOrderByNickname   UserOrderBy = "nickname"
	UserOrderByEmail      UserOrderBy = "email"
)

// ProductOrderBy is a sort key for a business catalogue.
type ProductOrderBy string

const (
	ProductOrderByName         ProductOrderBy = "name"
	ProductOrderByDescription  ProductOrderBy = "description"
	ProductOrderByManufacturer ProductOrderBy = "manufacturer"
	ProductOrderByRRP          ProductOrderBy = "recommendedRetailPrice"
	ProductOrderByCreated      ProductOrderBy = "created"
	ProductOrderByCode         ProductOrderBy = "productCode"
)

// InventoryOrderBy is a sort key for a business inventory.
type InventoryOrderBy string

const (
	InventoryOrderByProductCode  InventoryOrderBy = "productCode"
	InventoryOrderByName         InventoryOrderBy = "name"
	InventoryOrderByQuantity     InventoryOrderBy = "quantity"
	InventoryOrderByPricePerItem InventoryOrderBy = "pricePerItem"
	InventoryOrderByTotalPrice   InventoryOrderBy = "totalPrice"
	InventoryOrderByManufactured InventoryOrderBy = "manufactured"
	InventoryOrderBySellBy       InventoryOrderBy = "sellBy"
	InventoryOrderByBestBefore   InventoryOrderBy = "bestBefore"
	InventoryOrderByExpires      InventoryOrderBy = "expires"
)

// SaleOrderBy is a sort key for a business's listings.
type SaleOrderBy string

const (
	SaleOrderByCreated     SaleOrderBy = "created"
	SaleOrderByClosing     SaleOrderBy = "closing"
	SaleOrderByProductCode SaleOrderBy = "productCode"
	SaleOrderByProductName SaleOrderBy = "productName"
	SaleOrderByQuantity    SaleOrderBy = "quantity"
	SaleOrderByPrice       SaleOrderBy = "price"
)

// CardOrderBy is a sort key for a marketplace section.
type CardOrderBy string

const (
	CardOrderByCreated          CardOrderBy = "created"
	CardOrderByTitle            CardOrderBy = "title"
	CardOrderByCloses           CardOrderBy = "closes"
	CardOrderByCreatorFirstName CardOrderBy = "creatorFirstName"
	CardOrderByCreatorLastName  CardOrderBy = "creatorLastName"
)

// IsValid checks if the CardOrderBy is a valid value.
func (o CardOrderBy) IsValid() bool {
	switch o {
	case CardOrderByCreated, CardOrderByTitle, CardOrderByCloses, CardOrderByCreatorFirstName, CardOrderByCreatorLastName:
		return true
	default:
		return false
	}
}

// Page selects a 1-indexed page of a sorted listing.
type Page struct {
	Page           int
	ResultsPerPage int
	Reverse        bool
}

// DefaultPage is the first page of ten results in ascending order.
var DefaultPage = Page{Page: 1, ResultsPerPage: 10}

// Normalize clamps a page to sane values.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.ResultsPerPage < 1 {
		p.ResultsPerPage = DefaultPage.ResultsPerPage
	}

	return p
}

// Params returns the query parameters shared by every paginated endpoint.
func (p Page) Params(orderBy string) map[string]string {
	p = p.Normalize()

	return map[string]string{
		"page":           strconv.Itoa(p.Page),
		"resultsPerPage": strconv.Itoa(p.ResultsPerPage),
		"orderBy":        orderBy,
		"reverse":        strconv.FormatBool(p.Reverse),
	}
}
