// Package pathutil provides path and object-key normalization helpers shared
// by the filesystem backends.
package pathutil

import "strings"

// StripScheme removes a leading "scheme://" prefix from a path, if present.
// Object-store clients deal in bare keys, so "store://bucket/data" and
// "bucket/data" must compare equal. Paths without a scheme prefix are
// returned unchanged.
func StripScheme(path string) string {
	idx := strings.Index(path, "://")
	if idx < 0 || !isScheme(path[:idx]) {
		return path
	}
	return path[idx+len("://"):]
}

// isScheme reports whether s is a plausible URI scheme: a letter followed by
// letters, digits, '+', '-', or '.'.
func isScheme(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case i > 0 && ((r >= '0' && r <= '9') || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

// NormalizeKey sanitizes a path into a bare object-store key: the scheme
// prefix is stripped and surrounding slashes are trimmed. No further
// canonicalization is applied; key contents are preserved verbatim.
func NormalizeKey(path string) string {
	return strings.Trim(StripScheme(path), "/")
}

// Base returns the final component of a slash-separated key, the empty
// string if the key ends in a slash or is empty.
func Base(key string) string {
	if idx := strings.LastIndex(key, "/"); idx >= 0 {
		return key[idx+1:]
	}
	return key
}

// Join joins a parent key with an entry name using forward slashes. An empty
// parent yields the name alone, so bucket-root entries stay bare keys.
func Join(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
