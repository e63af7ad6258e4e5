package estimate

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Stringify returns the plain textual representation of a value, or the
// empty string for nil. It never fails.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// Numify resolves a value to a number, or nil when the value is absent
// or unparseable. A literal 0 or "0" is a present value, not absent.
func Numify(v any) *float64 {
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		return &x
	case float32:
		f := float64(x)
		return &f
	case int:
		f := float64(x)
		return &f
	case int64:
		f := float64(x)
		return &f
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil
		}
		return &f
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// JoinAddressLines drops nil/blank lines and joins the rest with
// newlines, preserving order.
func JoinAddressLines(lines []string) string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// CityStateZip formats a party's city/state/zip as a single
// space-joined line, omitting empty parts.
func CityStateZip(p Party) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.City, p.State, p.Zip} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// SumExtendedTotals sums the extended totals of a list of ancillary
// items, skipping entries that do not resolve to a number. It returns
// nil when no entry contributed, distinguishing "zero total" from
// "no data".
func SumExtendedTotals(items []AncillaryItem) *float64 {
	var sum float64
	found := false
	for _, it := range items {
		if v := Numify(it.ExtendedTotal); v != nil {
			sum += *v
			found = true
		}
	}
	if !found {
		return nil
	}
	return &sum
}
