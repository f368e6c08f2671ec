package problem

import (
	"encoding/json"
	"net/http"
)

// ContentType is the media type of problem documents.
const ContentType = "application/problem+json"

// Write sends d with its own status code.
func Write(w http.ResponseWriter, d *Document) error {
	w.Header().Set("Content-Type", ContentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(d.Status)
	return json.NewEncoder(w).Encode(d)
}
