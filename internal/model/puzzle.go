// Package model defines the core puzzle data types.
package model

import "time"

// Record is one raw candidate from a fetched batch, before decoding.
type Record struct {
	ID   string `json:"id"`
	Data string `json:"data"`
}

// Preset describes one upstream puzzle source.
type Preset struct {
	Key     string `json:"key"`
	Desc    string `json:"desc"`
	URL     string `json:"url"`
	Letters bool   `json:"letters"`
}

// Picked records which candidate was selected from a batch.
type Picked struct {
	ID    string `json:"id"`
	Index int    `json:"index"`
	Total int    `json:"total"`
}

// Block holds the box dimensions of a grid, in cells. BW*BH == Size.
type Block struct {
	BW int `json:"bw"`
	BH int `json:"bh"`
}

// Share holds an optional share link. Kind is "native" or "none".
type Share struct {
	Kind string `json:"kind"`
	Link string `json:"link,omitempty"`
}

// Document is the persisted, decoded form of a puzzle. Written once,
// never mutated. Clues use 0 for unfilled cells; Solution is fully filled.
type Document struct {
	Version    int     `json:"version"`
	CreatedUTC string  `json:"created_utc"`
	Preset     Preset  `json:"preset"`
	Picked     Picked  `json:"picked"`
	Size       int     `json:"size"`
	Block      Block   `json:"block"`
	Clues      [][]int `json:"clues"`
	Solution   [][]int `json:"solution"`
	Share      Share   `json:"share"`
}

// DocumentVersion is the current Document schema version.
const DocumentVersion = 2

// ShortID returns the filename-embedded short form of the document id.
func (d *Document) ShortID() string {
	return ShortID(d.Picked.ID)
}

// LettersMode reports whether cells render as letters instead of digits.
func (d *Document) LettersMode() bool {
	return d.Preset.Letters
}

// BlockDims returns the box width and height in cells for a grid size.
func BlockDims(size int) (bw, bh int) {
	switch size {
	case 4:
		return 2, 2
	case 6:
		return 3, 2
	case 9:
		return 3, 3
	}
	for h := size - 1; h >= 1; h-- {
		if size%h == 0 && size/h >= h {
			return size / h, h
		}
	}
	return size, 1
}

// FormatCellValue renders a cell value for display. Zero means unfilled
// and renders as an empty string; letters mode maps 1 -> "A", 2 -> "B", ...
func FormatCellValue(v int, letters bool) string {
	if v == 0 {
		return ""
	}
	if letters {
		return string(rune('A' + v - 1))
	}
	return string(rune('0' + v))
}

// UTCStamp formats a time the way document stamps and filenames expect.
func UTCStamp(t time.Time) string {
	return t.UTC().Format("2006-01-02_150405Z")
}
