package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips all HTML. Titles, descriptions and comment bodies
// are stored as plain text.
var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText removes any HTML markup from user-supplied text and trims
// surrounding whitespace.
func SanitizeText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
