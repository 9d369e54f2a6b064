package pricing

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Shape classifies a pricing blob after normalization.
type Shape string

const (
	ShapeSIC      Shape = "sic"
	ShapePaxTiers Shape = "pax_tiers"
	ShapeFlat     Shape = "flat_hotel"
	ShapeGroup    Shape = "group_size"
	ShapeLegacy   Shape = "per_person"
	ShapeUnknown  Shape = "unknown"
)

// Normalized is the one-time classification of a pricing blob so list pages
// resolve the display price at load time instead of per render.
type Normalized struct {
	Shape        Shape   `json:"shape"`
	DisplayPrice float64 `json:"displayPrice"`
}

// Resolve picks the lowest advertised per-person price out of a loosely
// typed pricing blob. Input may be raw JSON bytes, a JSON string, or an
// already-decoded value. It never panics and returns 0 when the price
// cannot be determined, which callers treat as "hide the price badge".
func Resolve(raw any) float64 {
	price, _ := resolve(raw)
	return price
}

// Normalize classifies the blob and resolves its display price in one pass.
func Normalize(raw any) Normalized {
	price, shape := resolve(raw)
	return Normalized{Shape: shape, DisplayPrice: price}
}

func resolve(raw any) (float64, Shape) {
	obj, ok := decode(raw)
	if !ok {
		return 0, ShapeUnknown
	}

	// 1. Daily tours / shore excursions advertise the SIC seat price directly.
	if v, ok := number(obj["sicPrice"]); ok {
		return clamp(v), ShapeSIC
	}

	// 2. Hotel packages: prefer the 6-pax tier, three-star double occupancy.
	if tiers, ok := obj["paxTiers"].(map[string]any); ok {
		if v, ok := tierThreeStarDouble(tiers, "6"); ok {
			return clamp(v), ShapePaxTiers
		}
		for _, key := range tierKeysDescending(tiers) {
			if v, ok := tierThreeStarDouble(tiers, key); ok {
				return clamp(v), ShapePaxTiers
			}
		}
		// fall through: tiers present but unusable
	}

	// 3. Legacy flat hotel shape without tiering.
	if v, ok := nestedNumber(obj, "threestar", "double"); ok {
		return clamp(v), ShapeFlat
	}

	// 4. Land-only group pricing, largest group first (cheapest per person).
	for _, key := range []string{"sixAdults", "fourAdults", "twoAdults"} {
		if v, ok := number(obj[key]); ok {
			return clamp(v), ShapeGroup
		}
	}

	// 5. Oldest records carry a single per-person figure.
	if v, ok := number(obj["perPerson"]); ok {
		return clamp(v), ShapeLegacy
	}

	return 0, ShapeUnknown
}

// decode tolerates []byte, json.RawMessage, string (parsed as JSON), and
// already-decoded maps. Anything else, including malformed JSON, yields no
// pricing data.
func decode(raw any) (map[string]any, bool) {
	switch v := raw.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return v, true
	case json.RawMessage:
		return decodeBytes(v)
	case []byte:
		return decodeBytes(v)
	case string:
		return decodeBytes([]byte(v))
	default:
		return nil, false
	}
}

func decodeBytes(b []byte) (map[string]any, bool) {
	b = []byte(strings.TrimSpace(string(b)))
	if len(b) == 0 {
		return nil, false
	}
	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func tierThreeStarDouble(tiers map[string]any, key string) (float64, bool) {
	tier, ok := tiers[key].(map[string]any)
	if !ok {
		return 0, false
	}
	return nestedNumber(tier, "threestar", "double")
}

// tierKeysDescending returns the numeric tier keys sorted high to low.
// Keys that are not numbers are skipped.
func tierKeysDescending(tiers map[string]any) []string {
	type tierKey struct {
		raw string
		n   float64
	}
	keys := make([]tierKey, 0, len(tiers))
	for k := range tiers {
		n, err := strconv.ParseFloat(strings.TrimSpace(k), 64)
		if err != nil {
			continue
		}
		keys = append(keys, tierKey{raw: k, n: n})
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].n > keys[j].n })
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.raw
	}
	return out
}

func nestedNumber(obj map[string]any, keys ...string) (float64, bool) {
	cur := obj
	for i, k := range keys {
		if i == len(keys)-1 {
			return number(cur[k])
		}
		next, ok := cur[k].(map[string]any)
		if !ok {
			return 0, false
		}
		cur = next
	}
	return 0, false
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// clamp maps non-positive and non-finite stored values to the 0 sentinel so
// a bad record hides the badge instead of advertising a negative price.
func clamp(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
