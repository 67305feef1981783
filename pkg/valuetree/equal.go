package valuetree

import (
	"math"
	"math/big"
	"reflect"
)

// Equal compares two tree values the way the sample's source language does:
// numbers compare by value across integer, float and bool, mappings ignore
// key order, sets ignore element order, and lists never equal tuples.
func Equal(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)

	if isNumeric(ka) && isNumeric(kb) {
		return numericEqual(a, b)
	}
	if ka != kb {
		// set and frozenset compare equal when their members match
		if (ka == KindSet || ka == KindFrozenSet) && (kb == KindSet || kb == KindFrozenSet) {
			ea, _ := Elements(a)
			eb, _ := Elements(b)
			return sameMembers(ea, eb)
		}
		return false
	}

	switch ka {
	case KindNull:
		return true
	case KindString:
		return a.(string) == b.(string)
	case KindList, KindTuple:
		ea, _ := Elements(a)
		eb, _ := Elements(b)
		if len(ea) != len(eb) {
			return false
		}
		for i := range ea {
			if !Equal(ea[i], eb[i]) {
				return false
			}
		}
		return true
	case KindSet, KindFrozenSet:
		ea, _ := Elements(a)
		eb, _ := Elements(b)
		return sameMembers(ea, eb)
	case KindMap:
		ma, mb := a.(*Map), b.(*Map)
		if ma == mb {
			return true
		}
		if ma.Len() != mb.Len() {
			return false
		}
		for pair := ma.Oldest(); pair != nil; pair = pair.Next() {
			other, ok := mb.Get(pair.Key)
			if !ok || !Equal(pair.Value, other) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

func sameMembers(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for _, x := range a {
		found := false
		for _, y := range b {
			if Equal(x, y) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func isNumeric(k Kind) bool {
	return k == KindBool || k == KindInt || k == KindFloat
}

func numericEqual(a, b any) bool {
	ra, okA := toRat(a)
	rb, okB := toRat(b)
	if !okA || !okB {
		return false
	}
	return ra.Cmp(rb) == 0
}

// toRat converts a numeric value to an exact rational. NaN and infinities
// have no rational form and never compare equal.
func toRat(v any) (*big.Rat, bool) {
	switch n := v.(type) {
	case bool:
		if n {
			return big.NewRat(1, 1), true
		}
		return new(big.Rat), true
	case int:
		return new(big.Rat).SetInt64(int64(n)), true
	case int8:
		return new(big.Rat).SetInt64(int64(n)), true
	case int16:
		return new(big.Rat).SetInt64(int64(n)), true
	case int32:
		return new(big.Rat).SetInt64(int64(n)), true
	case int64:
		return new(big.Rat).SetInt64(n), true
	case uint:
		return new(big.Rat).SetUint64(uint64(n)), true
	case uint8:
		return new(big.Rat).SetUint64(uint64(n)), true
	case uint16:
		return new(big.Rat).SetUint64(uint64(n)), true
	case uint32:
		return new(big.Rat).SetUint64(uint64(n)), true
	case uint64:
		return new(big.Rat).SetUint64(n), true
	case *big.Int:
		return new(big.Rat).SetInt(n), true
	case float32:
		return floatRat(float64(n))
	case float64:
		return floatRat(n)
	}
	return nil, false
}

func floatRat(f float64) (*big.Rat, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return new(big.Rat).SetFloat64(f), true
}
