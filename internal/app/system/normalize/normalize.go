// internal/app/system/normalize/normalize.go

// Package normalize provides canonical forms for user-supplied values so
// comparisons and unique indexes behave predictably.
package normalize

import "strings"

// Email lowercases and trims an email address. Emails are the logical key
// for users and joined events, so every store write and lookup goes
// through this.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// QueryParam trims a query-string value, preserving case. Case handling
// (e.g. the case-insensitive title search) belongs to the query itself.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}
