package validation

import (
	"time"

	"bazaar/internal/errors"
)

// Form-level errors. The messages are shown beside the offending field.
var (
	ErrInvalidDate           = errors.New("Date must be between the years 1000 and 9999")
	ErrManufacturedInFuture  = errors.New("Manufactured date cannot be in the future")
	ErrDateInPast            = errors.New("Date cannot be in the past")
	ErrDatesOutOfOrder       = errors.New("Dates must be in the order manufactured, sell by, best before, expires")
	ErrQuantityNotPositive   = errors.New("Quantity must be greater than zero")
	ErrQuantityExceedsStock  = errors.New("Quantity cannot exceed the remaining quantity")
	ErrRemainingExceedsTotal = errors.New("Remaining quantity cannot exceed quantity")
	ErrClosesBeforeToday     = errors.New("Closing date must be today or later")
)

// InventoryDates are the optional dates of an inventory item; Expires is required.
type InventoryDates struct {
	Manufactured *time.Time
	SellBy       *time.Time
	BestBefore   *time.Time
	Expires      time.Time
}

// ValidateInventoryDates checks manufactured <= today <= sellBy <= bestBefore <= expires,
// skipping dates that are not set.
func ValidateInventoryDates(dates InventoryDates, today time.Time) error {
	all := []*time.Time{dates.Manufactured, dates.SellBy, dates.BestBefore, &dates.Expires}
	for _, d := range all {
		if d != nil && !IsValidDate(*d) {
			return ErrInvalidDate
		}
	}

	if dates.Manufactured != nil && IsAfter(*dates.Manufactured, today) {
		return ErrManufacturedInFuture
	}

	for _, d := range all[1:] {
		if d != nil && IsBefore(*d, today) {
			return ErrDateInPast
		}
	}

	var prev *time.Time
	for _, d := range all {
		if d == nil {
			continue
		}
		if prev != nil && IsAfter(*prev, *d) {
			return ErrDatesOutOfOrder
		}
		prev = d
	}

	return nil
}

// ValidateSaleQuantity checks a listing quantity against the stock left on the item.
func ValidateSaleQuantity(quantity, remaining int) error {
	if quantity <= 0 {
		return ErrQuantityNotPositive
	}
	if quantity > remaining {
		return ErrQuantityExceedsStock
	}

	return nil
}

// ValidateInventoryQuantities checks remaining <= quantity and quantity >= 1.
func ValidateInventoryQuantities(quantity, remaining int) error {
	if quantity < 1 {
		return ErrQuantityNotPositive
	}
	if remaining > quantity {
		return ErrRemainingExceedsTotal
	}

	return nil
}

// ValidateSaleCloses checks that a closing date is today or later and within the calendar bound.
func ValidateSaleCloses(closes, today time.Time) error {
	if !IsValidDate(closes) {
		return ErrInvalidDate
	}
	if IsBefore(closes, today) {
		return ErrClosesBeforeToday
	}

	return nil
}
