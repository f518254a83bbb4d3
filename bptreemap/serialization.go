package bptreemap

import "encoding/json"

var _ json.Marshaler = (*Map[string, int])(nil)
var _ json.Unmarshaler = (*Map[string, int])(nil)

// MarshalJSON outputs the JSON representation of the map as an object.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	elements := make(map[K]V, m.Len())
	for k, v := range m.Iter() {
		elements[k] = v
	}

	return json.Marshal(elements)
}

// UnmarshalJSON populates the map from the input JSON representation.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	elements := make(map[K]V)

	err := json.Unmarshal(data, &elements)
	if err != nil {
		return err
	}

	m.Clear()

	for k, v := range elements {
		m.Put(k, v)
	}

	return nil
}
