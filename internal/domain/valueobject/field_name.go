package valueobject

import "regexp"

// MaxFieldNameLength is the longest custom field name accepted.
const MaxFieldNameLength = 64

var fieldNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// IsValidFieldName reports whether name is lowercase, starts with a letter and
// contains only letters, digits and underscores.
func IsValidFieldName(name string) bool {
	return len(name) <= MaxFieldNameLength && fieldNamePattern.MatchString(name)
}
