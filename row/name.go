package row

import (
	"bytes"
	"encoding/json"
)

// Name is the optional name of a cell. The zero value is NoName.
// An unnamed cell is still visible by position but never by name.
type Name struct {
	s  string
	ok bool
}

// NoName marks a cell without a name.
var NoName = Name{}

// Named returns a present name. The empty string is a valid name.
func Named(s string) Name {
	return Name{s: s, ok: true}
}

// Value returns the name and whether it is set.
func (n Name) Value() (string, bool) {
	return n.s, n.ok
}

func (n Name) IsSet() bool {
	return n.ok
}

// String returns the name, or "<unnamed>" when absent.
func (n Name) String() string {
	if !n.ok {
		return "<unnamed>"
	}
	return n.s
}

// MarshalJSON encodes an absent name as null.
func (n Name) MarshalJSON() ([]byte, error) {
	if !n.ok {
		return []byte("null"), nil
	}
	return json.Marshal(n.s)
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Name) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*n = NoName
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*n = Named(s)
	return nil
}
