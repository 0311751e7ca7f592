package presentation

const (
	// SessionCookie carries the opaque session token.
	SessionCookie = "vidvault_session"
	// UserIDKey is the echo context key the auth middleware stores the
	// resolved viewer id under.
	UserIDKey = "userID"
	// VideoIDParam is the route parameter naming a video.
	VideoIDParam = "id"
	// ScopeQuery selects the catalog scope ("mine" or "all").
	ScopeQuery = "scope"
)
