package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/api/response"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/validation"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Dialog names accepted by the dialog routes.
const (
	DialogBusiness  = "business"
	DialogProduct   = "product"
	DialogInventory = "inventory"
	DialogSale      = "sale"
	DialogCard      = "card"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler exposes the session store over HTTP
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SetErrorRequest represents the request body for setting the global error
type SetErrorRequest struct {
	Message string `json:"message" validate:"required"`
}

// BusinessDialogRequest targets a dialog at one business
type BusinessDialogRequest struct {
	BusinessID int64 `json:"businessId" validate:"required,gt=0"`
}

// RoleRequest represents the request body for switching the active role
type RoleRequest struct {
	Type entity.RoleType `json:"type" validate:"required,oneof=user business"`
	ID   int64           `json:"id" validate:"required,gt=0"`
}

// GetSession returns the current session snapshot
func (h *SessionHandler) GetSession(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.sessionUC.State())
}

// Login authenticates against the backend and makes the user current
func (h *SessionHandler) Login(c echo.Context) error {
	var req entity.LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.sessionUC.Login(c.Request().Context(), req.Email, req.Password); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.sessionUC.State())
}

// Logout forgets the current user
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.sessionUC.Logout(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.sessionUC.State())
}

// SetRole switches the identity the session acts as
func (h *SessionHandler) SetRole(c echo.Context) error {
	var req RoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	role := entity.ActiveRole{Type: req.Type, ID: req.ID}
	if user := h.sessionUC.State().User; user != nil && !canActAs(user, role) {
		return response.HandleAppError(c, domainerrors.ErrRoleNotPermitted)
	}

	if err := h.sessionUC.SetRole(c.Request().Context(), role); err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.RequestLogger(c, h.logger).Info("Active role changed",
		slog.String("role_type", string(role.Type)),
		slog.Int64("role_id", role.ID),
	)

	return response.Success(c, http.StatusOK, h.sessionUC.State())
}

// canActAs reports whether user may switch to role over HTTP.
func canActAs(user *entity.User, role entity.ActiveRole) bool {
	if role.IsBusiness() {
		return user.AdministersBusiness(role.ID)
	}

	return role.ID == user.ID
}

// SetError fills the global error slot
func (h *SessionHandler) SetError(c echo.Context) error {
	var req SetErrorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid error input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	h.sessionUC.SetError(req.Message)

	return response.Success(c, http.StatusOK, h.sessionUC.State())
}

// ClearError empties the global error slot
func (h *SessionHandler) ClearError(c echo.Context) error {
	h.sessionUC.ClearError()

	return response.Success(c, http.StatusOK, h.sessionUC.State())
}

// ShowDialog opens one of the create dialogs. Product and inventory dialogs take a
// business id, the sale dialog takes a business and inventory item, and the card
// dialog targets the current user.
func (h *SessionHandler) ShowDialog(c echo.Context) error {
	switch c.Param("dialog") {
	case DialogBusiness:
		h.sessionUC.ShowCreateBusiness()

	case DialogProduct, DialogInventory:
		var req BusinessDialogRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid dialog input")
		}
		if err := c.Validate(&req); err != nil {
			return response.ValidationError(c, err)
		}

		if c.Param("dialog") == DialogProduct {
			h.sessionUC.ShowCreateProduct(req.BusinessID)
		} else {
			h.sessionUC.ShowCreateInventory(req.BusinessID)
		}

	case DialogSale:
		var req entity.SaleItemDialog
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid dialog input")
		}
		if req.BusinessID <= 0 {
			return response.Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(),
				domainerrors.ErrValidationFailed.Message(), map[string]string{"businessId": "must be positive"})
		}
		// A listing needs at least one unit left on the item.
		if err := validation.ValidateSaleQuantity(1, req.InventoryItem.RemainingQuantity); err != nil {
			return response.Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(),
				domainerrors.ErrValidationFailed.Message(), map[string]string{"inventoryItem.remainingQuantity": err.Error()})
		}

		h.sessionUC.ShowCreateSaleItem(req)

	case DialogCard:
		state := h.sessionUC.State()
		if state.User == nil {
			return response.HandleAppError(c, domainerrors.ErrNotLoggedIn)
		}

		h.sessionUC.ShowCreateMarketplaceCard(state.User)

	default:
		return response.HandleAppError(c, domainerrors.ErrUnknownDialog)
	}

	return response.Success(c, http.StatusOK, h.sessionUC.State())
}

// HideDialog closes one of the create dialogs
func (h *SessionHandler) HideDialog(c echo.Context) error {
	switch c.Param("dialog") {
	case DialogBusiness:
		h.sessionUC.HideCreateBusiness()
	case DialogProduct:
		h.sessionUC.HideCreateProduct()
	case DialogInventory:
		h.sessionUC.HideCreateInventory()
	case DialogSale:
		h.sessionUC.HideCreateSaleItem()
	case DialogCard:
		h.sessionUC.HideCreateMarketplaceCard()
	default:
		return response.HandleAppError(c, domainerrors.ErrUnknownDialog)
	}

	return response.Success(c, http.StatusOK, h.sessionUC.State())
}
