package render

import (
	"github.com/gdamore/tcell/v2"
)

// Flush pushes the composed buffer to a tcell screen in one pass.
// Unfilled cells reset to the terminal default so stale content from
// the previous frame never lingers
func Flush(buf *Buffer, screen tcell.Screen) {
	for y := 0; y < buf.H; y++ {
		for x := 0; x < buf.W; x++ {
			c := buf.At(x, y)
			if !c.Filled {
				screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
				continue
			}

			style := tcell.StyleDefault
			if c.BG != (RGB{}) {
				style = style.Background(tcell.NewRGBColor(int32(c.BG.R), int32(c.BG.G), int32(c.BG.B)))
			}
			if c.FG != (RGB{}) {
				style = style.Foreground(tcell.NewRGBColor(int32(c.FG.R), int32(c.FG.G), int32(c.FG.B)))
			}
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	screen.Show()
}
