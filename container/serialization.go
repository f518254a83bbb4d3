package container

import "encoding/json"

// JSONCodec is implemented by containers that support both JSON
// serialization and deserialization. It combines the Marshaler and
// Unmarshaler interfaces for convenience.
//
// This interface is optional and may be implemented as needed.
type JSONCodec interface {
	json.Marshaler
	json.Unmarshaler
}
