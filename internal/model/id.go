package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidID reports an identifier outside the accepted charset.
var ErrInvalidID = errors.New("invalid puzzle id")

var idPattern = regexp.MustCompile(`^[0-9A-Fa-f-]{1,64}$`)

// NormalizeID validates an identifier or identifier fragment. Accepted
// forms are 1-64 characters of hex digits and hyphens.
func NormalizeID(id string) (string, error) {
	s := strings.TrimSpace(id)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidID)
	}
	if !idPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q may only contain hex characters and '-'", ErrInvalidID, id)
	}
	return s, nil
}

// ShortID returns the first hyphen-delimited segment of an identifier.
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i >= 0 {
		return id[:i]
	}
	return id
}
