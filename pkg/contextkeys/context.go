package contextkeys

// Custom type so keys cannot collide with other packages.
type contextKey string

// DBContextKey is the key under which the per-request *gorm.DB transaction
// is stored in the request context.
const DBContextKey = contextKey("db")

// CurrentUserKey is the key under which the auth middleware stores the
// resolved user for the current request.
const CurrentUserKey = contextKey("current_user")
