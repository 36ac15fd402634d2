// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// SessionUsecase is the client session store: the logged-in user, the role they act
// as, a single global error slot and the targets of the create dialogs.
type SessionUsecase interface {
	// Login authenticates against the backend and makes the user current.
	Login(ctx context.Context, email, password string) error
	// SetUser makes user current, acting as themselves, and persists the user cookie.
	SetUser(ctx context.Context, user *entity.User) error
	// Restore logs the user from the user cookie back in. Failures leave the store logged out.
	Restore(ctx context.Context)
	Logout(ctx context.Context) error
	// SetRole persists and adopts role. It fails with ErrNotLoggedIn while logged out.
	SetRole(ctx context.Context, role entity.ActiveRole) error

	SetError(message string)
	ClearError()

	ShowCreateBusiness()
	HideCreateBusiness()
	ShowCreateProduct(businessID int64)
	HideCreateProduct()
	ShowCreateInventory(businessID int64)
	HideCreateInventory()
	ShowCreateSaleItem(dialog entity.SaleItemDialog)
	HideCreateSaleItem()
	ShowCreateMarketplaceCard(user *entity.User)
	HideCreateMarketplaceCard()

	State() entity.SessionState
	IsLoggedIn() bool
	// Role returns the current user's application role, RoleUser when absent or logged out.
	Role() entity.Role
	// Subscribe registers fn to receive a snapshot after every change, in change order.
	// fn runs before the next change is applied and must not mutate the store.
	Subscribe(fn func(entity.SessionState)) (unsubscribe func())
}
