package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Identifier is a backend-assigned ID. The backend emits both numeric and
// string IDs, so either JSON form is accepted and kept verbatim.
type Identifier string

func (id *Identifier) UnmarshalJSON(data []byte) error {
	s, err := decodeScalar(data)
	if err != nil {
		return fmt.Errorf("identifier must be a string or number: %w", err)
	}
	*id = Identifier(s)
	return nil
}

func (id Identifier) String() string {
	return string(id)
}

// Quantity is a product or purchase amount as the backend reports it. Like
// Identifier it decodes from a JSON number or a quoted string.
type Quantity string

func (q *Quantity) UnmarshalJSON(data []byte) error {
	s, err := decodeScalar(data)
	if err != nil {
		return fmt.Errorf("amount must be a string or number: %w", err)
	}
	*q = Quantity(s)
	return nil
}

func (q Quantity) String() string {
	return string(q)
}

// decodeScalar returns a JSON string or number verbatim; null decodes to "".
func decodeScalar(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}
