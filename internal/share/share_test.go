package share

import (
	"strings"
	"testing"
)

func grid9() [][]int {
	g := make([][]int, 9)
	for r := range g {
		g[r] = make([]int, 9)
	}
	g[0][0] = 5
	g[8][8] = 9
	return g
}

func TestNativeLink(t *testing.T) {
	link, ok := NativeLink(grid9(), 9)
	if !ok {
		t.Fatal("expected a native link for 9x9")
	}
	if !strings.HasPrefix(link, "https://sudokupad.app/puzzle/") {
		t.Errorf("unexpected prefix: %s", link)
	}
	digits := strings.TrimPrefix(link, "https://sudokupad.app/puzzle/")
	if len(digits) != 81 {
		t.Fatalf("expected 81 digits, got %d", len(digits))
	}
	if digits[0] != '5' || digits[80] != '9' {
		t.Errorf("clues misplaced: first %c last %c", digits[0], digits[80])
	}
}

func TestNativeLinkNon9x9(t *testing.T) {
	g := [][]int{{1, 0}, {0, 1}}
	if _, ok := NativeLink(g, 2); ok {
		t.Error("expected no link for non-9x9")
	}
}

func TestForDocument(t *testing.T) {
	s := ForDocument(grid9(), 9)
	if s.Kind != KindNative || s.Link == "" {
		t.Errorf("unexpected share %+v", s)
	}

	s = ForDocument([][]int{{1}}, 1)
	if s.Kind != KindNone || s.Link != "" {
		t.Errorf("unexpected share %+v", s)
	}
}
