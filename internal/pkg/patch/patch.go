package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise fallback.
// Used to fold partial-update requests onto existing entity state.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
