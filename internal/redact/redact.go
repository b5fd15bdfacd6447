// Package redact provides utilities for redacting sensitive information from
// strings before they are logged. This prevents accidental leakage of
// credentials, connection strings, and tokens through error messages.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedTokenPlaceholder      = "[REDACTED_JWT]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
)

// Precompiled regex patterns
var (
	// Database connection strings with embedded credentials
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql|db|database)://[^@\s]+@`)

	// Password fields appearing in error text
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`)

	// Bcrypt digests ($2a$, $2b$, $2y$ prefixes)
	bcryptRegex = regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}`)

	// JWT token pattern - the standard three-part base64url format
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// SQL fragments surfaced by driver errors
	sqlRegex = regexp.MustCompile(
		`(?i)(SELECT|INSERT|UPDATE|DELETE)[\s\w,*()]+(?:FROM|INTO|SET)(?:[\s\w,*()='"$]+)?`,
	)

	patternPlaceholders = []struct {
		pattern     *regexp.Regexp
		placeholder string
	}{
		{dbConnRegex, RedactedCredentialPlaceholder},
		{passwordRegex, RedactedCredentialPlaceholder},
		{bcryptRegex, RedactedCredentialPlaceholder},
		{jwtTokenRegex, RedactedTokenPlaceholder},
		{sqlRegex, RedactedSQLPlaceholder},
	}
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, p := range patternPlaceholders {
		result = p.pattern.ReplaceAllString(result, p.placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
