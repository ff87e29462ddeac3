// File: encoding.go
// Title: Text Encoding
// Description: encoding.TextMarshaler and TextUnmarshaler for the value
//              types, which makes them usable in JSON, TOML and YAML documents.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package chrono

import "encoding"

var (
	_ encoding.TextMarshaler   = DateTime{}
	_ encoding.TextUnmarshaler = (*DateTime)(nil)
	_ encoding.TextMarshaler   = TimeSpan{}
	_ encoding.TextUnmarshaler = (*TimeSpan)(nil)
	_ encoding.TextMarshaler   = Period{}
	_ encoding.TextUnmarshaler = (*Period)(nil)
)

// MarshalText writes the ISO-8601 form
func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(d.IsoString()), nil
}

// UnmarshalText reads the ISO-8601 form
func (d *DateTime) UnmarshalText(text []byte) error {
	v, err := FromIsoString(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalText writes the SpanNormal form
func (s TimeSpan) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts every form ParseTimeSpan accepts
func (s *TimeSpan) UnmarshalText(text []byte) error {
	v, err := ParseTimeSpan(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText writes the ISO-8601 duration. The start is not encoded.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText reads an ISO-8601 duration
func (p *Period) UnmarshalText(text []byte) error {
	v, err := ParseISOPeriod(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
