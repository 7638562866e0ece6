// Package share builds SudokuPad links for stored puzzles.
package share

import (
	"strings"

	"sudoq/internal/model"
)

const baseURL = "https://sudokupad.app/puzzle/"

// KindNative marks a working SudokuPad link; KindNone marks its absence.
const (
	KindNative = "native"
	KindNone   = "none"
)

// NativeLink returns a SudokuPad link for a classic 9x9 clue grid. The
// native digit-string form only exists for 9x9; other sizes report false.
func NativeLink(clues [][]int, size int) (string, bool) {
	if size != 9 || len(clues) != 9 {
		return "", false
	}
	var b strings.Builder
	b.Grow(81)
	for _, row := range clues {
		if len(row) != 9 {
			return "", false
		}
		for _, v := range row {
			b.WriteByte(byte('0' + v))
		}
	}
	return baseURL + b.String(), true
}

// ForDocument computes the share field for a freshly fetched puzzle.
func ForDocument(clues [][]int, size int) model.Share {
	if link, ok := NativeLink(clues, size); ok {
		return model.Share{Kind: KindNative, Link: link}
	}
	return model.Share{Kind: KindNone}
}
