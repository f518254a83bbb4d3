package bptreeset

import "encoding/json"

var _ json.Marshaler = (*Set[string])(nil)
var _ json.Unmarshaler = (*Set[string])(nil)

// MarshalJSON outputs the JSON representation of the set as a sorted array.
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON populates the set from the input JSON representation.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var elements []T

	err := json.Unmarshal(data, &elements)
	if err == nil {
		s.Clear()
		s.Append(elements...)
	}

	return err
}
