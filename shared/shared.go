package shared

import (
	"strings"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the prefix and key parts into a single redis key.
// Empty parts are dropped so optional qualifiers never leave double
// separators behind.
func BuildCacheKey(prefix string, parts ...string) string {
	keyParts := make([]string, 0, len(parts)+1)
	keyParts = append(keyParts, prefix)

	for _, part := range parts {
		if part == "" {
			continue
		}

		keyParts = append(keyParts, part)
	}

	return strings.Join(keyParts, cacheKeySeparator)
}
