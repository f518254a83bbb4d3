package bptreemultimap

import "encoding/json"

var _ json.Marshaler = (*MultiMap[string, int])(nil)
var _ json.Unmarshaler = (*MultiMap[string, int])(nil)

// entry mirrors bptree.Entry with JSON field names. A JSON object cannot
// hold duplicate keys, so the multimap serializes as an ordered array of
// pairs.
type entry[K, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// MarshalJSON outputs the JSON representation of the multimap as an array
// of key-value objects in key order.
func (m *MultiMap[K, V]) MarshalJSON() ([]byte, error) {
	elements := make([]entry[K, V], 0, m.Len())
	for k, v := range m.Iter() {
		elements = append(elements, entry[K, V]{Key: k, Value: v})
	}

	return json.Marshal(elements)
}

// UnmarshalJSON populates the multimap from the input JSON representation.
// Pairs are inserted in array order, so the stable order of equal keys
// round-trips.
func (m *MultiMap[K, V]) UnmarshalJSON(data []byte) error {
	var elements []entry[K, V]

	err := json.Unmarshal(data, &elements)
	if err != nil {
		return err
	}

	m.Clear()

	for _, e := range elements {
		m.Add(e.Key, e.Value)
	}

	return nil
}
