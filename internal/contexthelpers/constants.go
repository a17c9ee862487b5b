package contexthelpers

type contextKey string

const ProfileIDContextKey = contextKey("profileID")
