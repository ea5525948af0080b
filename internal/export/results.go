// Package export serializes calculator results into downloadable
// artifacts: CSV, a formatted PDF document, and rendered curve plots.
// Serializers are pure; they return in-memory byte buffers and never
// touch the file system.
package export

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrSerialize reports a result set that cannot be rendered into the
// requested format. No partial output accompanies the error.
var ErrSerialize = errors.New("serialization failed")

// Pair is one labelled value in a result set.
type Pair struct {
	Label string
	Value any
}

// Results is an ordered label→value collection. Every export format
// emits fields in insertion order.
type Results struct {
	pairs []Pair
}

// Add appends a labelled value and returns r for chaining. Supported
// value types are string, float64 and int; anything else surfaces as
// ErrSerialize when the set is serialized.
func (r *Results) Add(label string, value any) *Results {
	r.pairs = append(r.pairs, Pair{Label: label, Value: value})
	return r
}

// Len reports the number of pairs.
func (r *Results) Len() int { return len(r.pairs) }

// Pairs returns the labelled values in insertion order.
func (r *Results) Pairs() []Pair { return r.pairs }

func formatValue(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case int:
		return strconv.Itoa(x), nil
	default:
		return "", fmt.Errorf("%w: unsupported value type %T", ErrSerialize, v)
	}
}

// Round trims x to the given number of decimal places. Result sets quote
// per-unit values to six places and ZIP powers to four.
func Round(x float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(x*scale) / scale
}
