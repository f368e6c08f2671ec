// Package problem builds RFC 7807 problem documents, the single shape every
// error response of the catalog API takes.
package problem

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// DefaultDetail is used when a caller does not supply a detail.
const DefaultDetail = "An error occurred"

// typeURLTemplate tags a document with the class of its status code. The URI is
// a category label only and is not meant to be dereferenced.
const typeURLTemplate = "https://tools.ietf.org/html/rfc7231#section-6.5.%d"

// Document is the wire representation of an error response.
type Document struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	Status        int    `json:"status"`
	Detail        string `json:"detail"`
	CorrelationID string `json:"correlation_id"`

	// Extensions are extra top-level members. They never replace the
	// standard members above.
	Extensions map[string]any `json:"-"`
}

// Option customizes a Document built by Build.
type Option func(*Document)

// WithTitle overrides the title derived from the status code.
func WithTitle(title string) Option {
	return func(d *Document) {
		d.Title = title
	}
}

// WithDetail sets the human-safe explanation.
func WithDetail(detail string) Option {
	return func(d *Document) {
		d.Detail = detail
	}
}

// WithType overrides the synthesized type URI.
func WithType(typeURL string) Option {
	return func(d *Document) {
		d.Type = typeURL
	}
}

// WithExtension adds an extra top-level member.
func WithExtension(key string, value any) Option {
	return func(d *Document) {
		if d.Extensions == nil {
			d.Extensions = make(map[string]any)
		}
		d.Extensions[key] = value
	}
}

// Build creates a Document for status. Omitted title, type and detail are
// filled from the status title table, the type template and DefaultDetail.
// Every call gets a fresh random correlation id.
func Build(status int, opts ...Option) *Document {
	d := &Document{Status: status}
	for _, opt := range opts {
		opt(d)
	}

	if d.Title == "" {
		d.Title = Title(status)
	}
	if d.Type == "" {
		d.Type = TypeURL(status)
	}
	if d.Detail == "" {
		d.Detail = DefaultDetail
	}
	d.CorrelationID = uuid.NewString()

	return d
}

// TypeURL returns the category URI for a status code.
func TypeURL(status int) string {
	return fmt.Sprintf(typeURLTemplate, status/100)
}

// MarshalJSON writes the standard members and merges extensions beside them.
func (d Document) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(d.Extensions)+5)
	for k, v := range d.Extensions {
		m[k] = v
	}
	m["type"] = d.Type
	m["title"] = d.Title
	m["status"] = d.Status
	m["detail"] = d.Detail
	m["correlation_id"] = d.CorrelationID
	return json.Marshal(m)
}
