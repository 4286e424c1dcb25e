// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips unsafe HTML from user-supplied rich text.
//
// Event descriptions and locations arrive from arbitrary clients and are
// later rendered by frontends that trust this API, so every create/update
// path runs them through here.
package htmlsanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

// policy is built once; bluemonday policies are safe for concurrent use.
var policy = bluemonday.UGCPolicy()

// Sanitize returns s with scripts, event handlers, and javascript: URLs
// removed. Common formatting tags (p, strong, em, lists, safe links) are
// preserved.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
