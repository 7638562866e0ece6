// Package extract pulls an embedded puzzle array out of a fetched page.
//
// The upstream site inlines its puzzle batch as a JS array literal
// (`const preloadedPuzzles = [...]`) whose entries use single-quoted,
// Python-style object literals. Array finds the literal with a small
// bracket/quote scanner; Records rewrites each entry into strict JSON.
package extract

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMarkerNotFound means the named array assignment is absent.
	ErrMarkerNotFound = errors.New("array marker not found")
	// ErrUnterminated means the page ends before the array closes.
	ErrUnterminated = errors.New("unterminated array")
)

// ArrayName is the variable carrying the embedded puzzle batch.
const ArrayName = "preloadedPuzzles"

type scanState int

const (
	stateNormal scanState = iota
	stateInString
	stateEscaped
)

// Array returns the exact text between the brackets of `const <name> = [...]`.
// Brackets inside quoted strings are opaque, including after escaped
// backslashes, so string values like "a\\]b" cannot close the array early.
func Array(page, name string) (string, error) {
	marker := "const " + name + " = ["
	pos := strings.Index(page, marker)
	if pos < 0 {
		return "", fmt.Errorf("%w: %s", ErrMarkerNotFound, name)
	}
	open := pos + len(marker) - 1

	state := stateNormal
	var quote byte
	depth := 0

	for i := open; i < len(page); i++ {
		ch := page[i]
		switch state {
		case stateEscaped:
			state = stateInString
		case stateInString:
			switch ch {
			case '\\':
				state = stateEscaped
			case quote:
				state = stateNormal
			}
		case stateNormal:
			switch ch {
			case '\'', '"':
				state = stateInString
				quote = ch
			case '[':
				depth++
			case ']':
				depth--
				if depth == 0 {
					return page[open+1 : i], nil
				}
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnterminated, name)
}
