package models

import (
	"bytes"
	"math"
	"reflect"
	"strconv"
)

// WeightScale is the number of weight units in one percent.
const WeightScale = 10000

// Weight is a grade category weight with four implied decimals: 123400 is
// 12.34% and 1000000 is 100%. The last two digits are always zero.
// It encodes as a JSON number and decodes from a number or a numeric string.
type Weight int32

// WeightFromPercent converts a percentage, rounded to two decimals.
func WeightFromPercent(percent float64) Weight {
	return Weight(math.Round(percent*100) * 100)
}

// Percent returns the weight as a percentage.
func (w Weight) Percent() float64 {
	return float64(w) / WeightScale
}

// UnmarshalJSON implements json.Unmarshaler.
func (w *Weight) UnmarshalJSON(data []byte) error {
	n, err := decodeInt32(reflect.TypeOf(*w), data)
	if err != nil {
		return err
	}
	*w = Weight(n)
	return nil
}

// Denominator is an integer the API transports as a JSON string.
type Denominator int32

// MarshalJSON implements json.Marshaler.
func (d Denominator) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatInt(int64(d), 10))), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Denominator) UnmarshalJSON(data []byte) error {
	n, err := decodeInt32(reflect.TypeOf(*d), data)
	if err != nil {
		return err
	}
	*d = Denominator(n)
	return nil
}

func decodeInt32(t reflect.Type, data []byte) (int32, error) {
	raw := bytes.TrimSpace(data)
	if string(raw) == "null" {
		return 0, nil
	}
	text := string(raw)
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		unquoted, err := strconv.Unquote(text)
		if err != nil {
			return 0, typeError(describe(raw), t)
		}
		text = unquoted
	}
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, typeError(describe(raw), t)
	}
	return int32(n), nil
}
