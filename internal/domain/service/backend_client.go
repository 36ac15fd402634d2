package service

import (
	"context"
	"io"

	"bazaar/internal/domain/entity"
)

// SessionBackend is the part of the backend the session store needs.
type SessionBackend interface {
	// Login submits credentials and returns the authenticated user's id.
	Login(ctx context.Context, email, password string) (int64, error)

	// GetUser fetches a full user record.
	GetUser(ctx context.Context, userID int64) (*entity.User, error)
}

// CardBackend is the part of the backend the marketplace pages need.
type CardBackend interface {
	CreateMarketplaceCard(ctx context.Context, card *entity.CreateMarketplaceCard) (int64, error)
	GetMarketplaceCardCount(ctx context.Context, section entity.Section) (int, error)
	GetMarketplaceCardsBySection(ctx context.Context, section entity.Section, page entity.Page, orderBy entity.CardOrderBy) ([]entity.MarketplaceCard, error)
	GetKeywords(ctx context.Context) ([]entity.Keyword, error)
}

// DemoBackend seeds the backend with demonstration data.
type DemoBackend interface {}

// BackendClient is the typed client for every marketplace backend operation.
// Every failure it returns is a *errors.ClientError whose message can be shown as is.
type BackendClient interface {
	SessionBackend
	CardBackend
	DemoBackend

	SearchUsers(ctx context.Context, query string, page entity.Page, orderBy entity.UserOrderBy) ([]entity.User, error)
	SearchUsersCount(ctx context.Context, query string) (int, error)
	CreateUser(ctx context.Context, user *entity.CreateUser) error
	MakeAdmin(ctx context.Context, userID int64) error
	RevokeAdmin(ctx context.Context, userID int64) error

	CreateBusiness(ctx context.Context, business *entity.CreateBusiness) error
	GetBusiness(ctx context.Context, businessID int64) (*entity.Business, error)
	MakeBusinessAdmin(ctx context.Context, businessID, userID int64) error
	RemoveBusinessAdmin(ctx context.Context, businessID, userID int64) error

	CreateProduct(ctx context.Context, businessID int64, product *entity.CreateProduct) error
	GetProducts(ctx context.Context, businessID int64, page entity.Page, orderBy entity.ProductOrderBy) ([]entity.Product, error)
	GetProductCount(ctx context.Context, businessID int64) (int, error)
	UploadProductImage(ctx context.Context, businessID int64, productCode, filename string, image io.Reader) error
	MakeImagePrimary(ctx context.Context, businessID int64, productCode string, imageID int64) error
	DeleteImage(ctx context.Context, businessID int64, productCode string, imageID int64) error

	GetInventory(ctx context.Context, businessID int64, page entity.Page, orderBy entity.InventoryOrderBy) ([]entity.InventoryItem, error)
	GetInventoryCount(ctx context.Context, businessID int64) (int, error)
	CreateInventoryItem(ctx context.Context, businessID int64, item *entity.CreateInventoryItem) (int64, error)

	CreateSaleItem(ctx context.Context, businessID int64, sale *entity.CreateSaleItem) (int64, error)
	GetBusinessSales(ctx context.Context, businessID int64, page entity.Page, orderBy entity.SaleOrderBy) ([]entity.Sale, error)
	GetBusinessSalesCount(ctx context.Context, businessID int64) (int, error)
}
