package contexthelpers

import (
	"context"
)

// ProfileID returns the session-scoped profile ID, or "" when the
// request has not passed the session middleware.
func ProfileID(ctx context.Context) string {
	profileID, ok := ctx.Value(ProfileIDContextKey).(string)
	if !ok {
		return ""
	}

	return profileID
}
