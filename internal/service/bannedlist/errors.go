package bannedlist

import "errors"

// Sentinel errors for the banned-list service layer.
var (
	// ErrStoreUnavailable wraps any store-connectivity failure. Every
	// Repository operation surfaces it so callers can errors.Is on one
	// value regardless of backend.
	ErrStoreUnavailable = errors.New("banned-list store unavailable")

	// ErrEmptyEmail is returned when an operation receives an address
	// that normalizes to the empty string.
	ErrEmptyEmail = errors.New("email is required")
)
