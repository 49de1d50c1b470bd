package postgres

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Row normalization. The driver hands back loosely-typed values (numerics as
// []byte or string, dates as time.Time or string, booleans occasionally as
// ints in older dumps); these helpers coerce anything scanned into `any`
// into the canonical record representation.

// toDecimal coerces v into a decimal. Non-numeric or missing values coerce
// to zero silently rather than raising.
func toDecimal(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case int64:
		return decimal.NewFromInt(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case float64:
		return decimal.NewFromFloat(x)
	case []byte:
		return parseDecimal(string(x))
	case string:
		return parseDecimal(x)
	default:
		return decimal.Zero
	}
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// toBool coerces v into a bool: explicit booleans pass through, numerics are
// nonzero-true, strings are false only for "0" and case-insensitive "false".
func toBool(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case int64:
		return x != 0
	case int:
		return x != 0
	case float64:
		return x != 0
	case []byte:
		return parseBool(string(x))
	case string:
		return parseBool(x)
	default:
		return false
	}
}

func parseBool(s string) bool {
	s = strings.TrimSpace(s)
	if s == "0" || strings.EqualFold(s, "false") {
		return false
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n != 0
	}
	return s != ""
}

// toDate truncates any date representation to its 10-char YYYY-MM-DD portion.
func toDate(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case time.Time:
		return x.Format("2006-01-02")
	case []byte:
		return truncDate(string(x))
	case string:
		return truncDate(x)
	default:
		return ""
	}
}

func truncDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

// toTime coerces v into a UTC timestamp: native times convert directly,
// strings are parsed as RFC 3339 (with a date-only fallback), null is the
// zero time.
func toTime(v any) time.Time {
	switch x := v.(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return x.UTC()
	case []byte:
		return parseTime(string(x))
	case string:
		return parseTime(x)
	default:
		return time.Time{}
	}
}

func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05.999999999Z07:00", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// movementTotal returns the persisted total, recomputing quantity × unit
// price when the stored value is absent.
func movementTotal(total any, quantity, unitPrice decimal.Decimal) decimal.Decimal {
	if total == nil {
		return quantity.Mul(unitPrice)
	}
	if s, ok := total.(string); ok && strings.TrimSpace(s) == "" {
		return quantity.Mul(unitPrice)
	}
	if b, ok := total.([]byte); ok && strings.TrimSpace(string(b)) == "" {
		return quantity.Mul(unitPrice)
	}
	return toDecimal(total)
}
