package cart

import (
	"encoding/json"
	"math"
	"strconv"
)

// Money formats v as dollars with exactly two decimals. Anything that is not
// a finite number (or a numeric string) formats as "$0.00".
func Money(v any) string {
	n, ok := toNumber(v)
	if !ok {
		return "$0.00"
	}
	return "$" + strconv.FormatFloat(n, 'f', 2, 64)
}

// Total sums the prices of items. Non-numeric prices contribute 0.
func Total(items []Item) float64 {
	var total float64
	for _, it := range items {
		if n, ok := it.Price.Amount(); ok {
			total += n
		}
	}
	return total
}

func toNumber(v any) (float64, bool) {
	var n float64
	switch x := v.(type) {
	case Price:
		return x.Amount()
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int32:
		n = float64(x)
	case int64:
		n = float64(x)
	case uint:
		n = float64(x)
	case json.Number:
		return parseNumber(string(x))
	case string:
		return parseNumber(x)
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
