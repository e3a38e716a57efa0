// Package value holds the loosely typed fields clients post for listings and requests.
// A field keeps the scalar the client sent, a number or free text, so documents written
// by older clients decode and echo back unchanged.
package value

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type kind uint8

const (
	kindAbsent kind = iota
	kindNumber
	kindText
	kindTime
)

// maxExactInteger is the largest integer a float64 holds without rounding.
const maxExactInteger = 1 << 53

var errUnsupportedJSON = errors.New("value must be a string or a number")

type scalar struct {
	kind   kind
	number float64
	text   string
	time   time.Time
}

// IsZero reports whether no value was sent. Absent fields are omitted when stored.
func (s scalar) IsZero() bool {
	return s.kind == kindAbsent
}

// String returns the value as text; empty when absent.
func (s scalar) String() string {
	switch s.kind {
	case kindNumber:
		return strconv.FormatFloat(s.number, 'f', -1, 64)
	case kindText:
		return s.text
	case kindTime:
		return s.time.Format(time.RFC3339Nano)
	default:
		return ""
	}
}

func (s scalar) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case kindNumber:
		if math.IsNaN(s.number) || math.IsInf(s.number, 0) {
			return json.Marshal(s.String())
		}
		return []byte(s.String()), nil
	case kindText:
		return json.Marshal(s.text)
	case kindTime:
		return json.Marshal(s.time)
	default:
		return []byte("null"), nil
	}
}

func (s *scalar) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*s = scalar{}
	case float64:
		*s = scalar{kind: kindNumber, number: v}
	case string:
		*s = scalar{kind: kindText, text: v}
	default:
		return errUnsupportedJSON
	}
	return nil
}

func (s scalar) MarshalBSONValue() (byte, []byte, error) {
	var (
		typ  bson.Type
		data []byte
		err  error
	)

	switch s.kind {
	case kindNumber:
		if s.number == math.Trunc(s.number) && math.Abs(s.number) <= maxExactInteger {
			typ, data, err = bson.MarshalValue(int64(s.number))
		} else {
			typ, data, err = bson.MarshalValue(s.number)
		}
	case kindText:
		typ, data, err = bson.MarshalValue(s.text)
	case kindTime:
		typ, data, err = bson.MarshalValue(s.time)
	default:
		return byte(bson.TypeNull), nil, nil
	}
	return byte(typ), data, err
}

// UnmarshalBSONValue accepts any stored scalar. Numbers of every BSON width decode as
// numbers, dates as times and anything else as its text form.
func (s *scalar) UnmarshalBSONValue(typ byte, data []byte) error {
	rv := bson.RawValue{Type: bson.Type(typ), Value: data}

	switch rv.Type {
	case bson.TypeNull, bson.TypeUndefined:
		*s = scalar{}
	case bson.TypeDouble, bson.TypeInt32, bson.TypeInt64:
		*s = scalar{kind: kindNumber, number: rv.AsFloat64()}
	case bson.TypeDecimal128:
		d, _ := rv.Decimal128OK()
		n, err := strconv.ParseFloat(d.String(), 64)
		if err != nil {
			return fmt.Errorf("failed to decode decimal %s: %w", d, err)
		}
		*s = scalar{kind: kindNumber, number: n}
	case bson.TypeString:
		*s = scalar{kind: kindText, text: rv.StringValue()}
	case bson.TypeDateTime:
		*s = scalar{kind: kindTime, time: rv.Time().UTC()}
	default:
		if err := rv.Validate(); err != nil {
			return err
		}
		*s = scalar{kind: kindText, text: rv.String()}
	}
	return nil
}

// Quantity is an amount as the donor entered it: a number, or text such as "2 kg".
type Quantity struct {
	scalar
}

// QuantityOf returns a numeric quantity.
func QuantityOf(n float64) Quantity {
	return Quantity{scalar{kind: kindNumber, number: n}}
}

// QuantityText returns a quantity kept as the given text.
func QuantityText(s string) Quantity {
	return Quantity{scalar{kind: kindText, text: s}}
}

// Number returns the numeric value, and false when the quantity is text or absent.
func (q Quantity) Number() (float64, bool) {
	return q.number, q.kind == kindNumber
}

// Date is a date as the client sent it. Text that parses with ParseDate is kept as a
// time so it sorts chronologically; other text and numbers are kept verbatim.
type Date struct {
	scalar
}

// DateOf returns a date holding t in UTC. A zero t gives an absent date.
func DateOf(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return Date{scalar{kind: kindTime, time: t.UTC()}}
}

// DateText returns a date kept as the given text without parsing it.
func DateText(s string) Date {
	return Date{scalar{kind: kindText, text: s}}
}

// Time returns the parsed time, and false when the date is not a time.
func (d Date) Time() (time.Time, bool) {
	return d.time, d.kind == kindTime
}

// UnmarshalJSON reads a date string, number or null. Empty strings are absent.
func (d *Date) UnmarshalJSON(data []byte) error {
	if err := d.scalar.UnmarshalJSON(data); err != nil {
		return err
	}
	if d.kind != kindText {
		return nil
	}
	if d.text == "" {
		*d = Date{}
		return nil
	}
	if t, err := ParseDate(d.text); err == nil {
		*d = DateOf(t)
	}
	return nil
}
