package service

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// User-authored text passes through bluemonday before storage: plain fields
// (names, codes, solution content) lose all markup, descriptions keep the
// UGC-safe subset.
var (
	strictPolicy = bluemonday.StrictPolicy()
	ugcPolicy    = bluemonday.UGCPolicy()
)

func sanitizePlain(input string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(input))
}

func sanitizeRich(input string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(input))
}
