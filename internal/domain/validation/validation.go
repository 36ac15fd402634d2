// Package validation holds the pure predicates behind every create and edit form.
package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MinYear and MaxYear bound every accepted calendar date, MaxYear exclusive.
	MinYear = 1000
	MaxYear = 10000

	MaxProductCodeLength = 15
	MinPasswordLength    = 7
	MaxPasswordLength    = 32
	MinUserAge           = 13

	MaxPricePerItem = 100000
	MaxTotalPrice   = 1000000
)

var (
	productCodePattern  = regexp.MustCompile(`^[-A-Z0-9]+$`)
	nameTextPattern     = regexp.MustCompile(`^[ a-zA-Z\-]+$`)
	nicknamePattern     = regexp.MustCompile(`^[ a-zA-Z]*$`)
	textPattern         = regexp.MustCompile(`^[ \d[:punct:]\p{L}]*$`)
	multilinePattern    = regexp.MustCompile(`^[\s\d[:punct:]\p{L}]*$`)
	placeNamePattern    = regexp.MustCompile(`^[ a-zA-Z]+$`)
	districtPattern     = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)
	streetNumberPattern = regexp.MustCompile(`^([0-9]+|[0-9]+/[0-9]+)[a-zA-Z]?$`)
	postcodePattern     = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	phonePattern        = regexp.MustCompile(`^(\+\d{1,2}\s)?\(?\d{1,3}\)?[\s.-]?\d{3,4}[\s.-]?\d{4,5}$`)
	emailPattern        = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)
	keywordPattern      = regexp.MustCompile(`^\p{L}{1,25}$`)
	letterPattern       = regexp.MustCompile(`\p{L}`)
	digitPattern        = regexp.MustCompile(`[0-9]`)
	currencyPattern     = regexp.MustCompile(`^\d+(\.\d{2})?$`)
	nonNegIntPattern    = regexp.MustCompile(`^\d+$`)
)

// IsValidDate reports whether d falls within [MinYear, MaxYear).
func IsValidDate(d time.Time) bool {
	return d.Year() >= MinYear && d.Year() < MaxYear
}

// ParseISODate parses YYYY-MM-DD and checks the calendar bound.
func ParseISODate(value string) (time.Time, bool) {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil || !IsValidDate(d) {
		return time.Time{}, false
	}

	return d, true
}

// IsBefore reports whether a is strictly before b, comparing calendar days.
func IsBefore(a, b time.Time) bool {
	return truncateDay(a).Before(truncateDay(b))
}

// IsAfter reports whether a is strictly after b, comparing calendar days.
func IsAfter(a, b time.Time) bool {
	return truncateDay(a).After(truncateDay(b))
}

// IsSameOrBefore reports whether a is on or before b, comparing calendar days.
func IsSameOrBefore(a, b time.Time) bool {
	return !IsAfter(a, b)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsNonNegativeInteger reports whether s is a whole number >= 0 written with digits only.
func IsNonNegativeInteger(s string) bool {
	if !nonNegIntPattern.MatchString(s) {
		return false
	}

	_, err := strconv.ParseInt(s, 10, 64)

	return err == nil
}

// IsPositiveInteger reports whether s is a whole number > 0.
func IsPositiveInteger(s string) bool {
	if !IsNonNegativeInteger(s) {
		return false
	}

	n, _ := strconv.ParseInt(s, 10, 64)

	return n > 0
}

// IsCurrencyAmount reports whether s is a non-negative amount with no or exactly two
// decimal places that is strictly below max.
func IsCurrencyAmount(s string, max float64) bool {
	if !currencyPattern.MatchString(s) {
		return false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}

	return v < max
}

// HasAtMostTwoDecimals reports whether v carries no more than two decimal places.
func HasAtMostTwoDecimals(v float64) bool {
	if v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return false
	}

	cents := v * 100

	return math.Abs(cents-math.Round(cents)) < 1e-6
}

// IsProductCode reports whether s is 1-15 upper-case letters, digits or dashes.
func IsProductCode(s string) bool {
	return len(s) >= 1 && len(s) <= MaxProductCodeLength && productCodePattern.MatchString(s)
}

// IsNameText reports whether s holds only letters, spaces and hyphens.
func IsNameText(s string) bool {
	return nameTextPattern.MatchString(s)
}

// IsNickname reports whether s holds only letters and spaces.
func IsNickname(s string) bool {
	return nicknamePattern.MatchString(s)
}

// IsText reports whether s is single-line text of letters, digits, spaces and punctuation.
func IsText(s string) bool {
	return textPattern.MatchString(s)
}

// IsMultilineText is IsText that also allows any whitespace.
func IsMultilineText(s string) bool {
	return multilinePattern.MatchString(s)
}

// IsPlaceName reports whether s is a street, city, region or country name.
func IsPlaceName(s string) bool {
	return placeNamePattern.MatchString(s)
}

// IsDistrict reports whether s holds only letters, digits and spaces.
func IsDistrict(s string) bool {
	return districtPattern.MatchString(s)
}

// IsStreetNumber accepts "12", "12a" and unit forms like "3/24b".
func IsStreetNumber(s string) bool {
	return utf8.RuneCountInString(s) <= 9 && streetNumberPattern.MatchString(s)
}

// IsPostcode reports whether s is 1-16 letters or digits.
func IsPostcode(s string) bool {
	return len(s) <= 16 && postcodePattern.MatchString(s)
}

// IsPhone reports whether s looks like a phone number.
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsEmail reports whether s has a local part and a domain.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsPassword reports whether s is 7-32 characters with at least one letter and one digit.
func IsPassword(s string) bool {
	n := utf8.RuneCountInString(s)
	if strings.TrimSpace(s) == "" || n < MinPasswordLength || n > MaxPasswordLength {
		return false
	}

	return letterPattern.MatchString(s) && digitPattern.MatchString(s)
}

// IsKeywordName reports whether s is 1-25 letters.
func IsKeywordName(s string) bool {
	return keywordPattern.MatchString(s)
}

// IsOldEnough reports whether someone born on dob is at least minAge years old on today.
func IsOldEnough(dob, today time.Time, minAge int) bool {
	return IsSameOrBefore(dob.AddDate(minAge, 0, 0), today)
}
