package config

// Backend is the key-value storage the Store writes through. It is the subset
// of fyne.Preferences the store needs, so any fyne app's Preferences() can be
// passed directly. Implementations must be safe for concurrent use and must
// return the fallback for absent keys or values of another type.
type Backend interface {
	BoolWithFallback(key string, fallback bool) bool
	SetBool(key string, value bool)
	IntWithFallback(key string, fallback int) int
	SetInt(key string, value int)
	StringWithFallback(key, fallback string) string
	SetString(key string, value string)
	RemoveValue(key string)
}
