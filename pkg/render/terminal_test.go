package render

import (
	"image/color"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

func TestFramebufferDraw(t *testing.T) {
	fb := NewFramebuffer(3, 4)
	fb.SetPixel(0, 0, ColorRed)
	fb.SetPixel(0, 1, ColorBlue)
	fb.SetPixel(2, 3, ColorGreen)

	scr := uv.NewScreenBuffer(5, 3)
	fb.Draw(scr, uv.Rect(1, 1, 4, 2))

	tests := []struct {
		name   string
		x, y   int
		fg, bg ARGB
	}{
		{"top left pair", 1, 1, ColorRed, ColorBlue},
		{"bottom right pair", 3, 2, ColorTransparent, ColorGreen},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cell := scr.CellAt(tc.x, tc.y)
			if cell == nil || cell.Content != upperHalfBlock {
				t.Fatalf("cell (%d, %d) = %+v, want half block", tc.x, tc.y, cell)
			}
			if got := argbOrNil(cell.Style.Fg); got != tc.fg {
				t.Errorf("fg = %v, want %v", got, tc.fg)
			}
			if got := argbOrNil(cell.Style.Bg); got != tc.bg {
				t.Errorf("bg = %v, want %v", got, tc.bg)
			}
		})
	}

	// Column 4 of the area lies past the framebuffer width.
	if cell := scr.CellAt(4, 1); cell.Style.Fg != nil || cell.Style.Bg != nil {
		t.Errorf("cell past framebuffer = %+v, want no color", cell)
	}
	// Outside the area nothing is drawn.
	if cell := scr.CellAt(0, 0); cell.Content == upperHalfBlock {
		t.Error("drew outside the area")
	}
}

func TestTerminalRenderer(t *testing.T) {
	scr := uv.NewScreenBuffer(8, 4)
	tr := NewTerminalRenderer(scr, 8, 4)

	w, h := tr.FramebufferSize()
	if w != 8 || h != 8 {
		t.Fatalf("FramebufferSize = %dx%d, want 8x8", w, h)
	}

	fb := NewFramebuffer(w, h)
	fb.ClearColor(ColorGray)
	tr.Render(fb)
	if err := tr.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	cell := scr.CellAt(7, 3)
	if got := argbOrNil(cell.Style.Bg); got != ColorGray {
		t.Errorf("last cell bg = %v, want gray", got)
	}
}

func argbOrNil(c color.Color) ARGB {
	if c == nil {
		return ColorTransparent
	}
	return ARGBFromColor(c)
}
