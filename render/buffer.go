package render

// Cell is one terminal cell of the frame: glyph, colors, and the view
// depth that produced it, kept for the depth-of-field pass
type Cell struct {
	Rune   rune
	FG     RGB
	BG     RGB
	Depth  float64
	Filled bool
}

// Buffer is the offscreen frame the pipeline composes into before a
// single flush to the terminal
type Buffer struct {
	W, H  int
	cells []Cell
}

func NewBuffer(w, h int) *Buffer {
	return &Buffer{W: w, H: h, cells: make([]Cell, w*h)}
}

// Resize reallocates for a new terminal size, discarding content
func (b *Buffer) Resize(w, h int) {
	b.W, b.H = w, h
	b.cells = make([]Cell, w*h)
}

// Clear resets every cell to the empty background
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
}

// Set writes one cell, silently clipping out-of-bounds coordinates
func (b *Buffer) Set(x, y int, r rune, fg, bg RGB, depth float64) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return
	}
	b.cells[y*b.W+x] = Cell{Rune: r, FG: fg, BG: bg, Depth: depth, Filled: true}
}

// At returns the cell at x,y; the zero cell outside bounds
func (b *Buffer) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return Cell{}
	}
	return b.cells[y*b.W+x]
}

// WriteString writes text foreground-only starting at x,y
func (b *Buffer) WriteString(x, y int, s string, fg, bg RGB) {
	for _, r := range s {
		b.Set(x, y, r, fg, bg, 0)
		x++
	}
}
