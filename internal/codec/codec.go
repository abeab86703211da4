// Package codec holds the line layouts for every record type. Each codec
// implements repository.Codec and lists its fields in persisted order.
package codec

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jbweber/homelab/recordbook/internal/repository"
)

// DateLayout is used for every persisted date.
const DateLayout = time.RFC3339

func formatInt(v int) string { return strconv.Itoa(v) }

func formatDate(t time.Time) string { return t.Format(DateLayout) }

func parseInt(field, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, repository.InvalidField(field, value, "not an integer")
	}
	return v, nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, repository.InvalidField(field, value, "not an RFC 3339 date")
	}
	return t, nil
}

func parseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Decimal{}, repository.InvalidField(field, value, "not a decimal number")
	}
	return d, nil
}

func requireText(field, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", repository.MissingField(field, field+" cannot be empty")
	}
	return value, nil
}

// exact rejects lines with more fields than the layout has, which happens when
// a text field contained the delimiter.
func exact(fields []string, n int) error {
	if len(fields) != n {
		return repository.InvalidField("line", strings.Join(fields, repository.Delimiter), "unexpected number of fields")
	}
	return nil
}
