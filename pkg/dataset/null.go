package dataset

import (
	"bytes"
	"encoding/json"
	"strconv"
)

var jsonNull = []byte("null")

// NullInt is an int64 that may be missing. Missing is never zero.
type NullInt struct {
	Int64 int64
	Valid bool
}

// Int returns a present NullInt.
func Int(v int64) NullInt { return NullInt{Int64: v, Valid: true} }

func (n NullInt) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatInt(n.Int64, 10)
}

func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return strconv.AppendInt(nil, n.Int64, 10), nil
}

func (n *NullInt) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, jsonNull) {
		*n = NullInt{}
		return nil
	}
	var v int64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = Int(v)
	return nil
}

// NullString is text that may be missing.
type NullString struct {
	String string
	Valid  bool
}

// Str returns a present NullString.
func Str(v string) NullString { return NullString{String: v, Valid: true} }

func (n NullString) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return json.Marshal(n.String)
}

func (n *NullString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, jsonNull) {
		*n = NullString{}
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = Str(v)
	return nil
}
