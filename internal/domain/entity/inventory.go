package entity

// InventoryItem is a stocked batch of a product. RemainingQuantity never exceeds Quantity.
type InventoryItem struct {
	ID                int64    `json:"id"`
	Product           Product  `json:"product"`
	Quantity          int      `json:"quantity"`
	RemainingQuantity int      `json:"remainingQuantity"`
	PricePerItem      *float64 `json:"pricePerItem,omitempty"`
	TotalPrice        *float64 `json:"totalPrice,omitempty"`
	Manufactured      string   `json:"manufactured,omitempty"`
	SellBy            string   `json:"sellBy,omitempty"`
	BestBefore        string   `json:"bestBefore,omitempty"`
	Expires           string   `json:"expires"`
}

// Sale is a listing that offers part of an inventory item for a price.
type Sale struct {
	ID            int64         `json:"id"`
	InventoryItem InventoryItem `json:"inventoryItem"`
	Quantity      int           `json:"quantity"`
	Price         float64       `json:"price"`
	MoreInfo      string        `json:"moreInfo,omitempty"`
	Created       string        `json:"created"`
	Closes        string        `json:"closes,omitempty"`
}
