package render

import (
	"strings"
	"testing"

	"sudoq/internal/model"
)

// Golden values: size=9, block=(3,3), cell=60px, margin=40.

func TestBoxRectGolden(t *testing.T) {
	// Box index 5 is row 2, col 2.
	r := BoxRect(9, 2, 2)
	if r.X0 != 220 || r.Y0 != 220 {
		t.Errorf("got (%d,%d), want (220,220)", r.X0, r.Y0)
	}
	if r.X1 != 400 || r.Y1 != 400 {
		t.Errorf("got (%d,%d), want (400,400)", r.X1, r.Y1)
	}
}

func TestCellRectGolden(t *testing.T) {
	r := CellRect(9, 5, 5)
	if r.X0 != 280 || r.Y0 != 280 {
		t.Errorf("got (%d,%d), want (280,280)", r.X0, r.Y0)
	}
	if r.X1 != 340 || r.Y1 != 340 {
		t.Errorf("got (%d,%d), want (340,340)", r.X1, r.Y1)
	}
}

func TestBoxRect6x6(t *testing.T) {
	// 6x6 blocks are 3 wide, 2 tall.
	r := BoxRect(6, 2, 2)
	if r.X0 != Inset+3*CellSize || r.Y0 != Inset+2*CellSize {
		t.Errorf("got (%d,%d)", r.X0, r.Y0)
	}
	if r.X1-r.X0 != 3*CellSize || r.Y1-r.Y0 != 2*CellSize {
		t.Errorf("box span (%d,%d)", r.X1-r.X0, r.Y1-r.Y0)
	}
}

func TestExpandClamps(t *testing.T) {
	side := ImageSide(9)
	r := CellRect(9, 1, 1).Expand(CropPad, side, side)
	if r.X0 != Inset-CropPad || r.Y0 != Inset-CropPad {
		t.Errorf("got (%d,%d)", r.X0, r.Y0)
	}

	// Padding past the image edge clamps to the bounds.
	r = Rect{X0: 2, Y0: 2, X1: side - 2, Y1: side - 2}.Expand(CropPad, side, side)
	if r.X0 != 0 || r.Y0 != 0 || r.X1 != side || r.Y1 != side {
		t.Errorf("expected clamped rect, got %+v", r)
	}
}

func TestImageSide(t *testing.T) {
	if got := ImageSide(9); got != 2*40+9*60 {
		t.Errorf("got %d", got)
	}
	if got := ImageSide(4); got != 2*40+4*60 {
		t.Errorf("got %d", got)
	}
}

func TestBoxFromIndex(t *testing.T) {
	r, c, err := BoxFromIndex(9, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != 2 || c != 2 {
		t.Errorf("index 5: got (%d,%d), want (2,2)", r, c)
	}

	r, c, err = BoxFromIndex(9, 1)
	if err != nil || r != 1 || c != 1 {
		t.Errorf("index 1: got (%d,%d), %v", r, c, err)
	}
	r, c, err = BoxFromIndex(9, 9)
	if err != nil || r != 3 || c != 3 {
		t.Errorf("index 9: got (%d,%d), %v", r, c, err)
	}

	for _, bad := range []int{0, 10, -1} {
		if _, _, err := BoxFromIndex(9, bad); err == nil {
			t.Errorf("index %d: expected error", bad)
		}
	}

	// 6x6: 2 boxes per row, 3 rows of boxes.
	r, c, err = BoxFromIndex(6, 3)
	if err != nil || r != 2 || c != 1 {
		t.Errorf("6x6 index 3: got (%d,%d), %v", r, c, err)
	}
	if _, _, err := BoxFromIndex(6, 7); err == nil {
		t.Error("6x6 index 7: expected error")
	}
}

func TestBoxIndexRoundTrip(t *testing.T) {
	for _, size := range []int{4, 6, 9} {
		perRow, perCol := BoxGrid(size)
		for idx := 1; idx <= perRow*perCol; idx++ {
			r, c, err := BoxFromIndex(size, idx)
			if err != nil {
				t.Fatalf("size %d idx %d: %v", size, idx, err)
			}
			got, err := BoxIndex(size, r, c)
			if err != nil {
				t.Fatalf("size %d (%d,%d): %v", size, r, c, err)
			}
			if got != idx {
				t.Errorf("size %d: idx %d round-tripped to %d", size, idx, got)
			}
		}
	}

	if _, err := BoxIndex(6, 4, 1); err == nil {
		t.Error("expected error for box row 4 on 6x6")
	}
}

func TestTitle(t *testing.T) {
	doc := &model.Document{Size: 6, Preset: model.Preset{Key: "kids6l", Letters: true}}
	if got := Title(doc); got != "Kids 6x6 Letters" {
		t.Errorf("got %q", got)
	}
	doc = &model.Document{Size: 9, Preset: model.Preset{Key: "medium9"}}
	if got := Title(doc); got != "Medium Classic" {
		t.Errorf("got %q", got)
	}
}

func TestOutputPathShape(t *testing.T) {
	doc := &model.Document{
		Size:   9,
		Preset: model.Preset{Key: "easy9"},
		Picked: model.Picked{ID: "324306f5-034d-4089-8723-56a8087fde14"},
	}
	p := OutputPath("/tmp/renders", doc, "puzzle", "png")
	base := p[strings.LastIndex(p, "/")+1:]
	if !strings.Contains(base, "_easy9_9x9_324306f5_puzzle_") || !strings.HasSuffix(base, ".png") {
		t.Errorf("unexpected output name %q", base)
	}

	// Same-second renders must not collide.
	if p2 := OutputPath("/tmp/renders", doc, "puzzle", "png"); p2 == p {
		t.Error("expected distinct output paths")
	}
}
