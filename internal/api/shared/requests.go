package shared

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into the given struct.
// Unknown fields are rejected so malformed payloads fail before any
// business logic runs.
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
