package render

import (
	"fmt"
	"strings"

	"sudoq/internal/model"
)

// HTML renders the clue grid as a standalone page with thin cell borders
// and thick block borders.
func HTML(doc *model.Document) string {
	bw, bh := model.BlockDims(doc.Size)
	letters := doc.LettersMode()

	var rows strings.Builder
	for r := 0; r < doc.Size; r++ {
		rows.WriteString("<tr>")
		for c := 0; c < doc.Size; c++ {
			var classes []string
			if c == 0 {
				classes = append(classes, "edge-left")
			}
			if r == 0 {
				classes = append(classes, "edge-top")
			}
			if (c+1)%bw == 0 {
				classes = append(classes, "edge-right-thick")
			} else {
				classes = append(classes, "edge-right")
			}
			if (r+1)%bh == 0 {
				classes = append(classes, "edge-bottom-thick")
			} else {
				classes = append(classes, "edge-bottom")
			}
			text := model.FormatCellValue(doc.Clues[r][c], letters)
			fmt.Fprintf(&rows, `<td class="%s"><span class="cell-value">%s</span></td>`,
				strings.Join(classes, " "), text)
		}
		rows.WriteString("</tr>")
	}

	return fmt.Sprintf(htmlPage, rows.String())
}

const htmlPage = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Sudoku</title>
  <style>
    :root {
      --cell: 56px;
      --thin: 1px;
      --thick: 3px;
      --line: #444;
      --thick-line: #000;
    }
    body {
      margin: 0;
      min-height: 100vh;
      display: grid;
      place-items: center;
      background: #fff;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
    }
    table.sudoku {
      border-collapse: collapse;
      border-spacing: 0;
    }
    table.sudoku td {
      width: var(--cell);
      height: var(--cell);
      min-width: var(--cell);
      min-height: var(--cell);
      text-align: center;
      vertical-align: middle;
      box-sizing: border-box;
      padding: 0;
    }
    .cell-value {
      width: 100%%;
      height: 100%%;
      display: grid;
      place-items: center;
      font-size: calc(var(--cell) * 0.52);
      line-height: 1;
      font-weight: 600;
      color: #111;
    }
    .edge-left { border-left: var(--thick) solid var(--thick-line); }
    .edge-top { border-top: var(--thick) solid var(--thick-line); }
    .edge-right { border-right: var(--thin) solid var(--line); }
    .edge-bottom { border-bottom: var(--thin) solid var(--line); }
    .edge-right-thick { border-right: var(--thick) solid var(--thick-line); }
    .edge-bottom-thick { border-bottom: var(--thick) solid var(--thick-line); }
  </style>
</head>
<body>
  <table class="sudoku" aria-label="Sudoku grid">%s</table>
</body>
</html>
`
