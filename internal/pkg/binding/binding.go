package binding

import (
	"encoding/json"
	"net/http"
)

// StrictJSON decodes the request body and rejects unknown fields, so
// stray payload keys are never silently persisted.
func StrictJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
