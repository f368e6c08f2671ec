package handlers

import (
	"context"
	"net/http"
)

type contextKey string

const ownerIDKey contextKey = "owner_id"

// WithOwnerID returns a copy of ctx carrying the caller's owner id
func WithOwnerID(ctx context.Context, ownerID int64) context.Context {
	return context.WithValue(ctx, ownerIDKey, ownerID)
}

// ownerID extracts the caller's owner id from the request context
func ownerID(r *http.Request) (int64, bool) {
	id, ok := r.Context().Value(ownerIDKey).(int64)
	return id, ok
}
