package utils

import (
	"regexp"

	"github.com/pkg/errors"
)

// maxNameLength bounds names and prefixes alike.
const maxNameLength = 60

// ValidNameRegex is the pattern that matches to a valid link or joint name.
// The name must begin with a letter or underscore i.e. [a-zA-Z_],
// and can only contain up to 60 letters, numbers, dashes, and underscores i.e. [-\w]*.
var ValidNameRegex = regexp.MustCompile(`^[a-zA-Z_]([-\w]){0,59}$`)

// ErrInvalidName returns a human-readable error for when ValidNameRegex doesn't match.
func ErrInvalidName(name string) error {
	if len(name) > maxNameLength {
		// this is broken out to improve readability of the error msg
		return errors.Errorf("name %q must be %d characters or fewer", name, maxNameLength)
	}
	return errors.Errorf("name %q must start with a letter or underscore and must only contain letters, numbers, dashes, and underscores",
		name)
}

// ValidateName returns ErrInvalidName for names that do not match ValidNameRegex.
func ValidateName(name string) error {
	if !ValidNameRegex.MatchString(name) {
		return ErrInvalidName(name)
	}
	return nil
}

// ValidatePrefix checks a prefix that will be prepended to names. The empty prefix is valid.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return nil
	}
	return ValidateName(prefix)
}
