package mapping

import (
	"fmt"
	"strconv"
	"strings"
)

// CastFunc converts a raw leaf into a typed scalar. A failed cast is
// reported through the error and the field is omitted; it never aborts
// the surrounding rule list.
type CastFunc func(v any) (any, error)

// ConvFunc post-processes a successfully cast numeric value, typically
// to rescale vendor units. Conversions run only when the cast produced
// a float64; results of any other kind pass through unchanged.
type ConvFunc func(f float64) float64

// Scale returns a conversion that multiplies by k.
func Scale(k float64) ConvFunc {
	return func(f float64) float64 { return f * k }
}

// AsString casts any scalar to its string form.
func AsString(v any) (any, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case nil:
		return nil, fmt.Errorf("cannot cast nil to string")
	default:
		return fmt.Sprint(t), nil
	}
}

// AsFloat casts numeric kinds and numeric strings to float64.
func AsFloat(v any) (any, error) {
	f, err := toFloat(v)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// AsInt casts numeric kinds and integer strings to int64. Fractional
// floats do not round silently; they fail the cast.
func AsInt(v any) (any, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint:
		return int64(t), nil
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint64:
		return int64(t), nil
	case float32:
		return floatToInt(float64(t))
	case float64:
		return floatToInt(t)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return nil, err
		}
		return i, nil
	default:
		return nil, fmt.Errorf("cannot cast %T to int", v)
	}
}

func floatToInt(f float64) (any, error) {
	i := int64(f)
	if float64(i) != f {
		return nil, fmt.Errorf("non-integral value %v", f)
	}
	return i, nil
}

// AsBool casts bools, 0/1 numerics and the usual string spellings.
func AsBool(v any) (any, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		f, err := toFloat(v)
		if err != nil {
			return nil, fmt.Errorf("cannot cast %T to bool", v)
		}
		return f != 0, nil
	}
}

// AsStringList casts a sequence of scalars to []string.
func AsStringList(v any) (any, error) {
	seq, ok := v.([]any)
	if !ok {
		if ss, ok := v.([]string); ok {
			return ss, nil
		}
		return nil, fmt.Errorf("cannot cast %T to string list", v)
	}
	out := make([]string, 0, len(seq))
	for _, e := range seq {
		s, err := AsString(e)
		if err != nil {
			return nil, err
		}
		out = append(out, s.(string))
	}
	return out, nil
}

// FloatSuffix returns a cast that strips a literal suffix from a string
// leaf and parses the remainder as a float, e.g. "2 mm" with suffix
// " mm" -> 2.0.
func FloatSuffix(suffix string) CastFunc {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("cannot cast %T to suffixed float", v)
		}
		return AsFloat(strings.TrimSpace(strings.TrimSuffix(s, suffix)))
	}
}

func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int8:
		return float64(t), nil
	case int16:
		return float64(t), nil
	case int32:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint:
		return float64(t), nil
	case uint8:
		return float64(t), nil
	case uint16:
		return float64(t), nil
	case uint32:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(t), 64)
	default:
		return 0, fmt.Errorf("cannot cast %T to float", v)
	}
}
