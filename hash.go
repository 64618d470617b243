package storelingo

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	sum := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(sum[:])
}

// CacheKey builds a cache key from a text hash and target language, so the
// same source text cached for different languages never collides.
func CacheKey(hash, targetLang string) string {
	return hash + ":" + targetLang
}
