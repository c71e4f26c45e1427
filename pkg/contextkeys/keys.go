package contextkeys

type contextKey string

const (
	UserEmailKey contextKey = "UserEmail"
	SessionIDKey contextKey = "SessionID"
)
