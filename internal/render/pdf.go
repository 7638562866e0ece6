package render

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"sudoq/internal/model"
)

// A4 portrait in millimetres.
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	gridSide   = 170.0
)

// PDFOptions selects the PDF variant.
type PDFOptions struct {
	Solution  bool
	Printable bool
}

// PDF writes an A4 sheet with the grid centered horizontally.
func PDF(doc *model.Document, opts PDFOptions, outPath string) error {
	size := doc.Size
	cell := gridSide / float64(size)
	left := (pageWidth - gridSide) / 2
	top := 40.0

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	if opts.Printable {
		title := Title(doc)
		if opts.Solution {
			title = "Solution: " + title
		}
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Text(left, top-12, title)
		pdf.SetFont("Helvetica", "", 11)
		short := doc.ShortID()
		pdf.Text(left+gridSide-pdf.GetStringWidth(short), top-12, short)
	}

	bw, bh := model.BlockDims(size)
	pdf.SetDrawColor(0, 0, 0)
	for i := 0; i <= size; i++ {
		w := 0.25
		if i%bw == 0 {
			w = 0.9
		}
		pdf.SetLineWidth(w)
		x := left + float64(i)*cell
		pdf.Line(x, top, x, top+gridSide)

		w = 0.25
		if i%bh == 0 {
			w = 0.9
		}
		pdf.SetLineWidth(w)
		y := top + float64(i)*cell
		pdf.Line(left, y, left+gridSide, y)
	}

	letters := doc.LettersMode()
	fontSize := cell * 1.7 // mm -> pt, roughly 60% of the cell
	pdf.SetFont("Helvetica", "B", fontSize)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			given := doc.Clues[r][c]
			v := given
			pdf.SetTextColor(0, 0, 0)
			if opts.Solution {
				v = doc.Solution[r][c]
				if given == 0 {
					pdf.SetTextColor(0x1d, 0x4e, 0xd8)
				}
			}
			if v == 0 {
				continue
			}
			text := model.FormatCellValue(v, letters)
			x := left + float64(c)*cell + (cell-pdf.GetStringWidth(text))/2
			y := top + float64(r)*cell + cell*0.72
			pdf.Text(x, y, text)
		}
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
