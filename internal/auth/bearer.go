package auth

import "strings"

// BearerFromHeader extracts the token from an Authorization header value.
// Returns "" when the header is empty or not a bearer scheme.
func BearerFromHeader(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
