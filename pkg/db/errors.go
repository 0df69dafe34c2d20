package db

import "strings"

// IsUniqueViolation reports whether the provided error references a unique
// constraint violation. Both backends surface this as message text rather
// than a typed error, so the check is string based: sqlite emits
// "UNIQUE constraint failed", postgres "duplicate key value".
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if constraintName != "" && strings.Contains(msg, constraintName) {
		return true
	}
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
