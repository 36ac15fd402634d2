package validation

import (
	"math"
	"reflect"
	"strconv"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator validates payload structs using their `validate` tags plus the
// marketplace-specific tags registered here.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// New creates a Validator whose date rules are relative to the current day.
func New() (*Validator, error) {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) (*Validator, error) {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      now,
	}

	stringRules := map[string]func(string) bool{
		"productcode":  IsProductCode,
		"nametext":     IsNameText,
		"nickname":     IsNickname,
		"text":         IsText,
		"multiline":    IsMultilineText,
		"placename":    IsPlaceName,
		"district":     IsDistrict,
		"streetnumber": IsStreetNumber,
		"postcode":     IsPostcode,
		"phone":        IsPhone,
		"password":     IsPassword,
		"keywordname":  IsKeywordName,
		"businesstype": func(s string) bool { return entity.BusinessType(s).IsValid() },
		"section":      func(s string) bool { return entity.Section(s).IsValid() },
		"isodate": func(s string) bool {
			_, ok := ParseISODate(s)

			return ok
		},
	}

	for tag, rule := range stringRules {
		if err := v.validate.RegisterValidation(tag, stringTag(rule)); err != nil {
			return nil, errors.Wrapf(err, "failed to register %s", tag)
		}
	}

	if err := v.validate.RegisterValidation("currency", currencyTag); err != nil {
		return nil, errors.Wrap(err, "failed to register currency")
	}
	if err := v.validate.RegisterValidation("minage", v.minAgeTag); err != nil {
		return nil, errors.Wrap(err, "failed to register minage")
	}

	v.validate.RegisterStructValidation(v.inventoryItemRules, entity.CreateInventoryItem{})
	v.validate.RegisterStructValidation(v.saleItemRules, entity.CreateSaleItem{})

	return v, nil
}

// Struct validates s and returns validator.ValidationErrors on failure.
func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}

// Var validates a single value against a tag list.
func (v *Validator) Var(field any, tag string) error {
	return v.validate.Var(field, tag)
}

func stringTag(rule func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}

		return rule(field.String())
	}
}

// currencyTag accepts non-negative amounts with at most two decimals. String
// amounts are checked as typed text, against the tag parameter as an exclusive maximum.
func currencyTag(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		return HasAtMostTwoDecimals(field.Float())
	case reflect.Int, reflect.Int32, reflect.Int64:
		return field.Int() >= 0
	case reflect.String:
		limit := math.MaxFloat64
		if fl.Param() != "" {
			parsed, err := strconv.ParseFloat(fl.Param(), 64)
			if err != nil {
				return false
			}
			limit = parsed
		}

		return IsCurrencyAmount(field.String(), limit)
	default:
		return false
	}
}

func (v *Validator) minAgeTag(fl validator.FieldLevel) bool {
	minAge, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	dob, ok := ParseISODate(fl.Field().String())
	if !ok {
		return false
	}

	return IsOldEnough(dob, v.now(), minAge)
}

func (v *Validator) inventoryItemRules(sl validator.StructLevel) {
	item, ok := sl.Current().Interface().(entity.CreateInventoryItem)
	if !ok {
		return
	}

	expires, ok := ParseISODate(item.Expires)
	if !ok {
		// Reported by the field-level isodate tag.
		return
	}

	dates := InventoryDates{Expires: expires}
	optional := []struct {
		value string
		into  **time.Time
	}{
		{item.Manufactured, &dates.Manufactured},
		{item.SellBy, &dates.SellBy},
		{item.BestBefore, &dates.BestBefore},
	}
	for _, o := range optional {
		if o.value == "" {
			continue
		}
		d, ok := ParseISODate(o.value)
		if !ok {
			return
		}
		*o.into = &d
	}

	switch err := ValidateInventoryDates(dates, v.now()); {
	case err == nil:
	case errors.Is(err, ErrManufacturedInFuture):
		sl.ReportError(item.Manufactured, "Manufactured", "manufactured", "notfuture", "")
	case errors.Is(err, ErrDateInPast):
		sl.ReportError(item.Expires, "Expires", "expires", "notpast", "")
	default:
		sl.ReportError(item.Expires, "Expires", "expires", "dateorder", "")
	}
}

func (v *Validator) saleItemRules(sl validator.StructLevel) {
	sale, ok := sl.Current().Interface().(entity.CreateSaleItem)
	if !ok || sale.Closes == "" {
		return
	}

	closes, ok := ParseISODate(sale.Closes)
	if !ok {
		return
	}

	if err := ValidateSaleCloses(closes, v.now()); err != nil {
		sl.ReportError(sale.Closes, "Closes", "closes", "notpast", "")
	}
}

// FieldErrors flattens validator errors into field -> failed tag, for API responses.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Namespace()] = fe.Tag()
	}

	return out
}
