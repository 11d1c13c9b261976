package stock

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// OptionalDecimal is a numeric field that may be absent. The remote backend
// reports unset numeric fields as null or false, and occasionally as a
// numeric string; all of those decode without error. Only a finite numeric
// value marks the field as set, which keeps downstream arithmetic free of
// NaN and infinity by construction.
type OptionalDecimal struct {
	value decimal.Decimal
	valid bool
}

// NewOptionalDecimal returns a set OptionalDecimal holding the given value.
func NewOptionalDecimal(value decimal.Decimal) OptionalDecimal {
	return OptionalDecimal{value: value, valid: true}
}

// OptionalFromFloat returns a set OptionalDecimal from a float64.
func OptionalFromFloat(value float64) OptionalDecimal {
	return NewOptionalDecimal(decimal.NewFromFloat(value))
}

// Decimal returns the value and whether it is set.
func (o OptionalDecimal) Decimal() (decimal.Decimal, bool) {
	return o.value, o.valid
}

// Valid returns true if the field carries a numeric value.
func (o OptionalDecimal) Valid() bool {
	return o.valid
}

// Or returns the value if set, otherwise the fallback.
func (o OptionalDecimal) Or(fallback decimal.Decimal) decimal.Decimal {
	if o.valid {
		return o.value
	}
	return fallback
}

// OrZero returns the value if set, otherwise zero.
func (o OptionalDecimal) OrZero() decimal.Decimal {
	return o.Or(decimal.Zero)
}

// UnmarshalJSON accepts a number or a numeric string as a set value. Null,
// false, and any non-numeric shape decode to the unset state instead of
// failing the surrounding record.
func (o *OptionalDecimal) UnmarshalJSON(data []byte) error {
	*o = OptionalDecimal{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case 'n', 'f', 't', '[', '{':
		return nil
	}

	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return nil
	}
	o.value = d
	o.valid = true
	return nil
}

// MarshalJSON emits the numeric value, or null when unset.
func (o OptionalDecimal) MarshalJSON() ([]byte, error) {
	if !o.valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// timestampLayouts are the formats the remote backend uses for date fields,
// tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is a date/time field that may be absent. Unset dates arrive as
// null or false; set dates as RFC3339 or the backend's space-separated
// datetime and plain date forms.
type Timestamp struct {
	value time.Time
	valid bool
}

// NewTimestamp returns a set Timestamp holding the given time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{value: t, valid: true}
}

// Time returns the value and whether it is set.
func (t Timestamp) Time() (time.Time, bool) {
	return t.value, t.valid
}

// Valid returns true if the field carries a date.
func (t Timestamp) Valid() bool {
	return t.valid
}

// Before reports whether the timestamp is set and strictly before the given
// instant.
func (t Timestamp) Before(instant time.Time) bool {
	return t.valid && t.value.Before(instant)
}

// UnmarshalJSON accepts a date string in any known layout. Null, false, and
// unparseable values decode to the unset state.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	*t = Timestamp{}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.value = parsed
			t.valid = true
			return nil
		}
	}
	return nil
}

// MarshalJSON emits the date as RFC3339, or null when unset.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if !t.valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.value.Format(time.RFC3339))
}
