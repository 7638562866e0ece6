package decode

import (
	"errors"
	"strings"
	"testing"
)

func TestGrid4x4(t *testing.T) {
	clues := "1030" + "0002" + "0400" + "2003"
	solution := "1234" + "4312" + "3421" + "2143"

	size, c, s, err := Grid(clues + solution)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != 4 {
		t.Fatalf("expected size 4, got %d", size)
	}
	if c[0][0] != 1 || c[0][1] != 0 || c[0][2] != 3 {
		t.Errorf("unexpected clues row 0: %v", c[0])
	}
	if s[3][0] != 2 || s[3][3] != 3 {
		t.Errorf("unexpected solution row 3: %v", s[3])
	}
}

func TestGrid9x9(t *testing.T) {
	var clues, solution strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := (r*3+r/3+c)%9 + 1
			solution.WriteByte(byte('0' + v))
			if (r+c)%2 == 0 {
				clues.WriteByte(byte('0' + v))
			} else {
				clues.WriteByte('0')
			}
		}
	}

	size, c, s, err := Grid(clues.String() + solution.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != 9 {
		t.Fatalf("expected size 9, got %d", size)
	}
	for r := 0; r < 9; r++ {
		for col := 0; col < 9; col++ {
			if c[r][col] != 0 && c[r][col] != s[r][col] {
				t.Fatalf("clue/solution mismatch at (%d,%d)", r, col)
			}
		}
	}
}

func TestGridBadLength(t *testing.T) {
	_, _, _, err := Grid("12345")
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestGridNonDigit(t *testing.T) {
	data := strings.Repeat("1", 31) + "x"
	_, _, _, err := Grid(data)
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestGridEmptySolutionCell(t *testing.T) {
	clues := strings.Repeat("0", 16)
	solution := "1234" + "4312" + "3421" + "2140" // trailing zero
	_, _, _, err := Grid(clues + solution)
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestGridClueContradiction(t *testing.T) {
	clues := "2000" + strings.Repeat("0", 12)
	solution := "1234" + "4312" + "3421" + "2143"
	_, _, _, err := Grid(clues + solution)
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestGridValueExceedsSize(t *testing.T) {
	clues := "5000" + strings.Repeat("0", 12)
	solution := "1234" + "4312" + "3421" + "2143"
	_, _, _, err := Grid(clues + solution)
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}
