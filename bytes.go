package hexlit

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Bytes is a byte sequence that travels as hex text through JSON and SQL.
// The zero value is an empty sequence.
type Bytes []byte

// FromHex parses hex text into Bytes using the strict decoder.
func FromHex(src string) (Bytes, error) {
	b, err := DecodeString(src)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return Bytes(b), nil
}

// String returns the uppercase hex encoding.
func (b Bytes) String() string {
	return EncodeToString(b)
}

// MarshalJSON implements the json.Marshaler interface.
// Encodes the bytes as an uppercase hex string.
func (b Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Accepts a hex string and validates it through the strict decoder.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	var hexStr string
	if err := json.Unmarshal(data, &hexStr); err != nil {
		return fmt.Errorf("failed to unmarshal Bytes: expected hex string")
	}

	parsed, err := FromHex(hexStr)
	if err != nil {
		return fmt.Errorf("failed to parse hex string: %w", err)
	}
	*b = parsed
	return nil
}

// Value implements the driver.Valuer interface for SQL database support.
// Returns a copy of the raw bytes for storage as a BLOB.
func (b Bytes) Value() (driver.Value, error) {
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// Scan implements the sql.Scanner interface for SQL database support.
// Accepts raw bytes, hex-encoded strings, or nil.
func (b *Bytes) Scan(value interface{}) error {
	if value == nil {
		*b = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		out := make([]byte, len(v))
		copy(out, v)
		*b = out
		return nil
	case string:
		parsed, err := FromHex(v)
		if err != nil {
			return fmt.Errorf("failed to scan string: %w", err)
		}
		*b = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into Bytes", value)
	}
}
