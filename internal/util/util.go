package util

import (
	"fmt"
	"strings"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/pkg/errors"
)

const (
	displayDateLayout = "02 Jan 2006"
	isoDateLayout     = "2006-01-02"
)

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDate renders t as "02 Jan 2006".
func FormatDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

// FormatDateString parses an ISO date or RFC 3339 timestamp and renders it with FormatDate.
func FormatDateString(value string) (string, error) {
	t, err := ParseDate(value)
	if err != nil {
		return "", err
	}

	return FormatDate(t), nil
}

// ParseDate accepts the backend's date forms: YYYY-MM-DD or an RFC 3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(isoDateLayout, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, errors.Errorf("unparseable date %q", value)
	}

	return t, nil
}

// FormatPrice renders an amount with the currency's symbol and code when known, e.g. "$12.50 NZD".
func FormatPrice(amount float64, currency *entity.Currency) string {
	if currency == nil {
		return fmt.Sprintf("%.2f", amount)
	}

	price := fmt.Sprintf("%s%.2f", currency.Symbol, amount)
	if currency.Code != "" {
		price += " " + currency.Code
	}

	return price
}
