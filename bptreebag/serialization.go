package bptreebag

import "encoding/json"

var _ json.Marshaler = (*Bag[string])(nil)
var _ json.Unmarshaler = (*Bag[string])(nil)

// MarshalJSON outputs the JSON representation of the bag as a sorted array
// with duplicates preserved.
func (b *Bag[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Values())
}

// UnmarshalJSON populates the bag from the input JSON representation.
func (b *Bag[T]) UnmarshalJSON(data []byte) error {
	var elements []T

	err := json.Unmarshal(data, &elements)
	if err == nil {
		b.Clear()
		b.Append(elements...)
	}

	return err
}
