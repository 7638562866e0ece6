package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"sudoq/internal/model"
)

var (
	lineColor  = color.Black
	givenColor = color.Black
	fillColor  = color.RGBA{R: 0x1d, G: 0x4e, B: 0xd8, A: 0xff}
)

var (
	fontOnce  sync.Once
	fontErr   error
	cellFace  font.Face
	titleFace font.Face
)

func loadFaces() error {
	fontOnce.Do(func() {
		bold, err := opentype.Parse(gobold.TTF)
		if err != nil {
			fontErr = fmt.Errorf("parse bold font: %w", err)
			return
		}
		cellFace, fontErr = opentype.NewFace(bold, &opentype.FaceOptions{
			Size: 32, DPI: 72, Hinting: font.HintingFull,
		})
		if fontErr != nil {
			return
		}
		regular, err := opentype.Parse(goregular.TTF)
		if err != nil {
			fontErr = fmt.Errorf("parse regular font: %w", err)
			return
		}
		titleFace, fontErr = opentype.NewFace(regular, &opentype.FaceOptions{
			Size: 18, DPI: 72, Hinting: font.HintingFull,
		})
	})
	return fontErr
}

// ImageOptions selects the render variant.
type ImageOptions struct {
	// Solution overlays the solved grid: givens stay black, filled-in
	// values render blue.
	Solution bool
	// Printable adds a header line with the title and short id inside
	// the top inset.
	Printable bool
}

// Image renders a stored puzzle as a raster grid.
func Image(doc *model.Document, opts ImageOptions) (image.Image, error) {
	if err := loadFaces(); err != nil {
		return nil, err
	}

	size := doc.Size
	side := ImageSide(size)
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	drawGridLines(img, size)

	letters := doc.LettersMode()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			given := doc.Clues[r][c]
			v := given
			var col color.Color = givenColor
			if opts.Solution {
				v = doc.Solution[r][c]
				if given == 0 {
					col = fillColor
				}
			}
			if v == 0 {
				continue
			}
			drawCellValue(img, size, r, c, model.FormatCellValue(v, letters), col)
		}
	}

	if opts.Printable {
		title := Title(doc)
		if opts.Solution {
			title = "Solution: " + title
		}
		drawHeader(img, title, doc.ShortID())
	}
	return img, nil
}

func drawGridLines(img *image.RGBA, size int) {
	bw, bh := model.BlockDims(size)
	gridPx := size * CellSize
	for i := 0; i <= size; i++ {
		thick := 1
		if i%bw == 0 {
			thick = 3
		}
		x := Inset + i*CellSize
		fillRect(img, x-thick/2, Inset, thick, gridPx, lineColor)

		thick = 1
		if i%bh == 0 {
			thick = 3
		}
		y := Inset + i*CellSize
		fillRect(img, Inset, y-thick/2, gridPx, thick, lineColor)
	}
	// Square off the outer corners.
	fillRect(img, Inset-1, Inset-1, gridPx+3, 3, lineColor)
	fillRect(img, Inset-1, Inset+gridPx-1, gridPx+3, 3, lineColor)
	fillRect(img, Inset-1, Inset-1, 3, gridPx+3, lineColor)
	fillRect(img, Inset+gridPx-1, Inset-1, 3, gridPx+3, lineColor)
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.Color) {
	draw.Draw(img, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Src)
}

func drawCellValue(img *image.RGBA, size, r, c int, text string, col color.Color) {
	if text == "" {
		return
	}
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: cellFace,
	}
	w := d.MeasureString(text)
	metrics := cellFace.Metrics()
	x := Inset + c*CellSize + (CellSize-w.Round())/2
	y := Inset + r*CellSize + (CellSize+metrics.Ascent.Round()-metrics.Descent.Round())/2
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}

func drawHeader(img *image.RGBA, title, shortID string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(givenColor),
		Face: titleFace,
	}
	baseline := Inset - 14
	d.Dot = fixed.P(Inset, baseline)
	d.DrawString(title)

	w := d.MeasureString(shortID)
	right := img.Bounds().Dx() - Inset - w.Round()
	d.Dot = fixed.P(right, baseline)
	d.DrawString(shortID)
}

// Title builds the human heading for a document: "Kids 6x6" style for
// kids presets, "Easy Classic" style otherwise.
func Title(doc *model.Document) string {
	key := doc.Preset.Key
	if len(key) >= 4 && key[:4] == "kids" {
		title := fmt.Sprintf("Kids %dx%d", doc.Size, doc.Size)
		if doc.LettersMode() {
			title += " Letters"
		}
		return title
	}
	difficulty := ""
	for _, ch := range key {
		if ch >= '0' && ch <= '9' {
			continue
		}
		difficulty += string(ch)
	}
	if difficulty == "" {
		difficulty = "easy"
	}
	return capitalize(difficulty) + " Classic"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// WritePNG encodes img to path.
func WritePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
