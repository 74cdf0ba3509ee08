package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// upperHalfBlock shows the top pixel as foreground and the bottom pixel as
// background.
const upperHalfBlock = "▀"

// Draw converts the framebuffer to terminal cells and draws them into area
// of the screen. Each cell covers two framebuffer rows, so the framebuffer
// height should be 2x the area height. Pixels beyond the framebuffer are
// drawn with no color.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	area = area.Intersect(scr.Bounds())

	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			scr.SetCell(col, row, &uv.Cell{
				Content: upperHalfBlock,
				Width:   1,
				Style: uv.Style{
					Fg: fb.cellColor(x, topY),
					Bg: fb.cellColor(x, botY),
				},
			})
		}
	}
}

// cellColor returns the pixel at (x, y) as a terminal color, or nil when it
// is transparent or outside the framebuffer.
func (fb *Framebuffer) cellColor(x, y int) color.Color {
	if x >= fb.Width || y >= fb.Height {
		return nil
	}
	c := fb.GetPixel(x, y)
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// TerminalRenderer presents framebuffers on an ultraviolet screen.
type TerminalRenderer struct {
	screen        uv.Screen
	width, height int
}

// NewTerminalRenderer creates a renderer for a width x height cell area
// at the top left of screen.
func NewTerminalRenderer(screen uv.Screen, width, height int) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		width:  max(width, 1),
		height: max(height, 1),
	}
}

// FramebufferSize returns the framebuffer size that exactly fills the
// renderer's cell area.
func (tr *TerminalRenderer) FramebufferSize() (width, height int) {
	return tr.width, tr.height * 2
}

// Render draws fb into the renderer's area.
func (tr *TerminalRenderer) Render(fb *Framebuffer) {
	fb.Draw(tr.screen, uv.Rect(0, 0, tr.width, tr.height))
}

// Flush displays pending cells if the screen supports it, as
// *uv.Terminal does.
func (tr *TerminalRenderer) Flush() error {
	if d, ok := tr.screen.(interface{ Display() error }); ok {
		return d.Display()
	}
	return nil
}
