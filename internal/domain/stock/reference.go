package stock

import (
	"bytes"
	"encoding/json"
)

// RecordID is the upstream identifier of a record. The remote backend emits
// identifiers sometimes as JSON numbers and sometimes as strings; both are
// normalized to their string form. The zero value means "no identifier".
type RecordID string

// IsZero returns true if the identifier is absent.
func (id RecordID) IsZero() bool {
	return id == ""
}

func (id RecordID) String() string {
	return string(id)
}

// UnmarshalJSON accepts a number, a string, or null. Any other shape decodes
// to the zero identifier rather than failing the surrounding record.
func (id *RecordID) UnmarshalJSON(data []byte) error {
	*id = recordIDFromRaw(data)
	return nil
}

// EntityRef is the normalized form of a foreign-key field. Upstream responses
// carry these either as a bare identifier or as an [id, label] pair; EntityRef
// is the single place that distinction is resolved, so downstream code never
// re-checks the shape.
type EntityRef struct {
	ID    RecordID
	Label string
}

// IsZero returns true if the reference points at nothing.
func (r EntityRef) IsZero() bool {
	return r.ID.IsZero() && r.Label == ""
}

// UnmarshalJSON accepts a bare id (number or string), an [id, label] pair,
// null, or false. Unexpected shapes normalize to the zero reference; decoding
// a foreign-key field never fails a record.
func (r *EntityRef) UnmarshalJSON(data []byte) error {
	*r = EntityRef{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '[':
		var pair []json.RawMessage
		if err := json.Unmarshal(data, &pair); err != nil {
			return nil
		}
		if len(pair) > 0 {
			r.ID = recordIDFromRaw(pair[0])
		}
		if len(pair) > 1 {
			var label string
			if err := json.Unmarshal(pair[1], &label); err == nil {
				r.Label = label
			}
		}
	default:
		r.ID = recordIDFromRaw(data)
	}
	return nil
}

// MarshalJSON emits the normalized [id, label] pair, or null for the zero ref.
func (r EntityRef) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal([2]string{r.ID.String(), r.Label})
}

// recordIDFromRaw extracts an identifier from a raw JSON value. Numbers keep
// their literal form (upstream ids are integers), strings their content.
// Everything else, including null and false, is the zero identifier.
func recordIDFromRaw(data []byte) RecordID {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ""
		}
		return RecordID(s)
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return ""
	}
	return RecordID(n.String())
}
