package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"sudoq/internal/model"
)

// The source dialect never nests object literals.
var fragmentPattern = regexp.MustCompile(`\{[^}]+\}`)

// Records parses the array interior into puzzle records. Each `{...}`
// fragment is rewritten to strict JSON (single quotes become double quotes;
// true/false/null already match) and kept only if it parses and carries
// both an id and a data value. Malformed fragments are skipped, not fatal:
// partial or truncated embedded data must not abort the whole batch.
func Records(blob string) []model.Record {
	var records []model.Record
	for _, frag := range fragmentPattern.FindAllString(blob, -1) {
		strict := strings.ReplaceAll(frag, "'", `"`)

		var rec model.Record
		if err := json.Unmarshal([]byte(strict), &rec); err != nil {
			continue
		}
		if rec.ID == "" || rec.Data == "" {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// PreloadedPuzzles extracts and parses the upstream puzzle batch from a page.
func PreloadedPuzzles(page string) ([]model.Record, error) {
	blob, err := Array(page, ArrayName)
	if err != nil {
		return nil, err
	}
	return Records(blob), nil
}
