package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchesRegex fails when value is blank or does not match pattern.
// description names the expected shape in the error message.
func MatchesRegex(field, value, pattern, description string) Rule {
	re := regexp.MustCompile(pattern)
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return re.MatchString(value)
		},
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must match %s pattern", description)},
	}
}

// StartsWith fails unless value begins with prefix.
func StartsWith(field, value, prefix string) Rule {
	return Rule{
		Check: func() bool {
			return strings.HasPrefix(value, prefix)
		},
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must start with %q", prefix)},
	}
}

// Identifier fails unless value is a non-empty run of ASCII letters, digits,
// '-' and '_'.
func Identifier(field, value string) Rule {
	return MatchesRegex(field, value, `^[A-Za-z0-9_-]+$`, "identifier")
}
