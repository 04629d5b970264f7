package chart

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// NumberOrZero converts loosely typed input into a finite float64, returning 0
// for anything that is not a usable number:
//
//   - nil (an absent field) is 0
//   - integers and floats convert directly; NaN and ±Inf are 0
//   - strings are trimmed and parsed; empty or non-numeric strings are 0
//   - json.Number is parsed like a string
//   - true is 1 and false is 0
//   - pointers are dereferenced, nil pointers are 0
//   - every other type is 0
func NumberOrZero(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(n)
	case float32:
		return finiteOrZero(float64(n))
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case json.Number:
		return parseOrZero(string(n))
	case string:
		return parseOrZero(n)
	case *float64:
		if n == nil {
			return 0
		}
		return finiteOrZero(*n)
	case *string:
		if n == nil {
			return 0
		}
		return parseOrZero(*n)
	default:
		return 0
	}
}

func parseOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(f)
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
