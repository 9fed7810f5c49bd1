package auth

// AuthError is a custom error type for authentication errors
type AuthError string

// Error implements the error interface
func (e AuthError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidEmail       AuthError = "email is required"
	ErrInvalidPassword    AuthError = "password must be at least 6 characters"
	ErrEmailExists        AuthError = "email already registered"
	ErrInvalidCredentials AuthError = "invalid email or password"
	ErrNotSignedIn        AuthError = "not signed in"
	ErrSessionExpired     AuthError = "session expired, log in again"
	ErrNilConfig          AuthError = "config cannot be nil"
	ErrNilAccountRepo     AuthError = "account repository cannot be nil"
	ErrNilStatsRepo       AuthError = "stats repository cannot be nil"
	ErrNilClock           AuthError = "clock cannot be nil"
	ErrNilUUIDGenerator   AuthError = "UUID generator cannot be nil"
	ErrMissingSecret      AuthError = "JWT secret cannot be empty"
)
