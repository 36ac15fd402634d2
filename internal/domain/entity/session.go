package entity

// SaleItemDialog targets the create-listing dialog at one inventory item.
type SaleItemDialog struct {
	BusinessID    int64         `json:"businessId"`
	InventoryItem InventoryItem `json:"inventoryItem"`
}

// Dialogs holds the targets of the create dialogs. A nil target means the dialog is hidden.
type Dialogs struct {
	CreateBusiness        bool            `json:"createBusiness"`
	CreateProduct         *int64          `json:"createProduct"`
	CreateInventory       *int64          `json:"createInventory"`
	CreateSaleItem        *SaleItemDialog `json:"createSaleItem"`
	CreateMarketplaceCard *User           `json:"createMarketplaceCard"`
}

// SessionState is a snapshot of the client session.
// User is nil while logged out, and ActiveRole is nil whenever User is nil.
type SessionState struct {
	User        *User       `json:"user"`
	ActiveRole  *ActiveRole `json:"activeRole"`
	GlobalError *string     `json:"globalError"`
	Dialogs     Dialogs     `json:"dialogs"`
}

// IsLoggedIn reports whether the snapshot holds a user.
func (s SessionState) IsLoggedIn() bool {
	return s.User != nil
}

// Clone returns a deep enough copy for observers to hold without racing the store.
func (s SessionState) Clone() SessionState {
	out := s
	if s.User != nil {
		user := *s.User
		out.User = &user
	}
	if s.ActiveRole != nil {
		role := *s.ActiveRole
		out.ActiveRole = &role
	}
	if s.GlobalError != nil {
		msg := *s.GlobalError
		out.GlobalError = &msg
	}
	if s.Dialogs.CreateProduct != nil {
		id := *s.Dialogs.CreateProduct
		out.Dialogs.CreateProduct = &id
	}
	if s.Dialogs.CreateInventory != nil {
		id := *s.Dialogs.CreateInventory
		out.Dialogs.CreateInventory = &id
	}
	if s.Dialogs.CreateSaleItem != nil {
		item := *s.Dialogs.CreateSaleItem
		out.Dialogs.CreateSaleItem = &item
	}
	if s.Dialogs.CreateMarketplaceCard != nil {
		user := *s.Dialogs.CreateMarketplaceCard
		out.Dialogs.CreateMarketplaceCard = &user
	}

	return out
}
