package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
)

// CropBox cuts one box out of a rendered grid image. The rectangle is
// expanded by CropPad and clamped to the image bounds before cutting.
func CropBox(srcPath string, size, boxR, boxC int, outPath string) error {
	return cropRect(srcPath, BoxRect(size, boxR, boxC), outPath)
}

// CropCell cuts one cell out of a rendered grid image.
func CropCell(srcPath string, size, r, c int, outPath string) error {
	return cropRect(srcPath, CellRect(size, r, c), outPath)
}

func cropRect(srcPath string, r Rect, outPath string) error {
	f, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open render: %w", err)
	}
	src, err := png.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("decode render: %w", err)
	}

	bounds := src.Bounds()
	r = r.Expand(CropPad, bounds.Dx(), bounds.Dy())

	out := image.NewRGBA(image.Rect(0, 0, r.X1-r.X0, r.Y1-r.Y0))
	draw.Draw(out, out.Bounds(), src, image.Pt(r.X0, r.Y0), draw.Src)
	return WritePNG(out, outPath)
}
