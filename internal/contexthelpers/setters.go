package contexthelpers

import (
	"context"
	"net/http"
)

func SetProfileID(r *http.Request, profileID string) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, ProfileIDContextKey, profileID)
	return r.WithContext(ctx)
}
