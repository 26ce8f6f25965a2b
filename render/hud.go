package render

import (
	"fmt"

	catppuccin "github.com/catppuccin/go"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/crystal-galaxy/parameter"
	"github.com/lixenwraith/crystal-galaxy/track"
)

// HUD draws the two reserved rows under the viewport: track caption and
// status on the first, key hints on the second. Colors come from the
// catppuccin Mocha palette
type HUD struct {
	text    RGB
	accent  RGB
	dim     RGB
	warning RGB
}

func NewHUD() *HUD {
	m := catppuccin.Mocha
	return &HUD{
		text:    paletteRGB(m.Text().Hex),
		accent:  paletteRGB(m.Mauve().Hex),
		dim:     paletteRGB(m.Overlay0().Hex),
		warning: paletteRGB(m.Peach().Hex),
	}
}

// HUDState is the per-frame HUD input
type HUDState struct {
	Caption     string
	Unavailable bool
	Focused     bool
	PerfMode    bool
	Mode        string
}

// Draw writes the HUD rows into the buffer's reserved bottom band
func (h *HUD) Draw(buf *Buffer, state HUDState) {
	statusY := buf.H - parameter.HUDRows
	hintY := buf.H - 1
	if statusY < 0 {
		return
	}

	if state.Caption != "" {
		fg := h.accent
		if state.Unavailable {
			fg = h.dim
		}
		buf.WriteString(1, statusY, state.Caption, fg, RGB{})
	}

	if state.PerfMode {
		banner := "[performance mode]"
		buf.WriteString(buf.W-len(banner)-1, statusY, banner, h.warning, RGB{})
	}

	hints := fmt.Sprintf("tab:cycle  enter:focus  o:%s  q:quit", state.Mode)
	if state.Focused {
		hints = "esc:back  q:quit"
	}
	buf.WriteString(1, hintY, hints, h.dim, RGB{})
}

// Caption formats the track line shown while a body is hovered or
// focused
func Caption(rec track.Record) string {
	s := fmt.Sprintf("♪ %s — %s  [%s]  %d:%02d",
		rec.Title, rec.Artist, rec.NormalizedGenre(), rec.Duration/60, rec.Duration%60)
	if !rec.Available {
		s += "  (unavailable)"
	}
	return s
}

func paletteRGB(hex string) RGB {
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{200, 200, 200}
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}
}
