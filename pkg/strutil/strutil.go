// Package strutil holds small stateless string helpers with literal
// input/output contracts.
package strutil

import "strings"

// Contains reports whether needle occurs within haystack.
func Contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}

// ContainsOneOf reports whether any of the needles occurs within haystack.
func ContainsOneOf(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// EndsWith reports whether haystack ends with needle.
func EndsWith(haystack, needle string) bool {
	return strings.HasSuffix(haystack, needle)
}

// urlUnsafe substitutes the URL-safe base64 alphabet characters with their
// standard counterparts: '_' -> '/', '-' -> '+', '*' -> '='.
var urlUnsafe = strings.NewReplacer("_", "/", "-", "+", "*", "=")

// ToURLUnsafe translates a URL-safe base64 string to the standard base64
// alphabet, positionally and without length validation.
func ToURLUnsafe(base64url string) string {
	return urlUnsafe.Replace(base64url)
}
