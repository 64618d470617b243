// Package cache provides translation cache backends. Cached translations let
// repeated store content (shared tags, boilerplate descriptions, recurring
// widget text) skip the model entirely.
package cache

// TranslationCache is the interface for translation caching.
type TranslationCache interface {
	// Get retrieves a cached translation. Returns false if absent or expired.
	Get(key string) (string, bool)

	// Set stores a translation.
	Set(key string, value string) error
}
