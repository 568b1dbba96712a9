package dto

import (
	"bytes"
	"encoding/json"
	"reflect"
	"time"
)

// MsgDate is reported for a due date that is neither layout Date accepts.
const MsgDate = "must be a date (YYYY-MM-DD) or an RFC 3339 timestamp"

// dateLayouts are tried in order. A bare date is midnight UTC.
var dateLayouts = []string{time.DateOnly, time.RFC3339Nano}

// Date is a request due date. It decodes a calendar date such as
// "2026-03-01" as well as a full RFC 3339 timestamp.
type Date time.Time

// NewDate returns t as a *Date.
func NewDate(t time.Time) *Date {
	d := Date(t)
	return &d
}

// UnmarshalJSON implements json.Unmarshaler. Unparseable input yields a
// *json.UnmarshalTypeError, which the decoder tags with the field name.
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				*d = Date(t)
				return nil
			}
		}
	}
	return &json.UnmarshalTypeError{Value: string(b), Type: reflect.TypeFor[Date]()}
}

// MarshalJSON writes a bare date when d falls on midnight UTC, and an
// RFC 3339 timestamp otherwise.
func (d Date) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.Location() == time.UTC && t.Equal(t.Truncate(24*time.Hour)) {
		return json.Marshal(t.Format(time.DateOnly))
	}
	return json.Marshal(t.Format(time.RFC3339Nano))
}

// Time returns the date as a *time.Time, or nil for a nil d.
func (d *Date) Time() *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}
