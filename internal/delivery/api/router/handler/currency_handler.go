package handler

import (
	"net/http"
	"strconv"

	"bazaar/internal/delivery/api/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/domain/validation"
	"bazaar/internal/util"

	"github.com/labstack/echo/v4"
)

// CurrencyHandler resolves the currency of a country
type CurrencyHandler struct {
	currency service.CurrencyService
}

// NewCurrencyHandler is the constructor for CurrencyHandler
func NewCurrencyHandler(currency service.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currency: currency}
}

// CurrencyView is a currency, plus ?amount= rendered in it when one was given
type CurrencyView struct {
	entity.Currency

	Formatted string `json:"formatted,omitempty"`
}

// GetCurrency returns the first currency of ?country=
func (h *CurrencyHandler) GetCurrency(c echo.Context) error {
	country := c.QueryParam("country")
	if country == "" {
		return response.BadRequest(c, "INVALID_COUNTRY", "country is required")
	}

	amount := c.QueryParam("amount")
	if amount != "" && !validation.IsCurrencyAmount(amount, validation.MaxTotalPrice) {
		return response.BadRequest(c, "INVALID_AMOUNT", "amount must be a non-negative price with two decimals")
	}

	currency, err := h.currency.CurrencyFromCountry(c.Request().Context(), country)
	if err != nil {
		return err
	}

	view := CurrencyView{Currency: *currency}
	if amount != "" {
		value, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_AMOUNT", "amount must be a number")
		}
		view.Formatted = util.FormatPrice(value, currency)
	}

	return response.Success(c, http.StatusOK, view)
}
