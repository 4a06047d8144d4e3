package core

// Screen is a 2D buffer of display tags. It decouples the game state from
// the terminal: the renderer fills tags and a style table turns them into
// output later.
type Screen struct {
	width  int
	height int
	cells  [][]Tag
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Tag, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Tag, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with TagEmpty.
func (s *Screen) Clear() {
	s.Fill(TagEmpty)
}

// Fill fills the entire screen with the given tag.
func (s *Screen) Fill(t Tag) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = t
		}
	}
}

// Set places a tag at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(p Position, t Tag) {
	if p.X < 0 || p.X >= s.width || p.Y < 0 || p.Y >= s.height {
		return
	}
	s.cells[p.Y][p.X] = t
}

// Get returns the tag at the given position.
// Returns TagEmpty for out-of-bounds coordinates.
func (s *Screen) Get(p Position) Tag {
	if p.X < 0 || p.X >= s.width || p.Y < 0 || p.Y >= s.height {
		return TagEmpty
	}
	return s.cells[p.Y][p.X]
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, t Tag) {
	for i := 0; i < length; i++ {
		s.Set(Position{X: x + i, Y: y}, t)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (s *Screen) DrawVLine(x, y, length int, t Tag) {
	for i := 0; i < length; i++ {
		s.Set(Position{X: x, Y: y + i}, t)
	}
}

// DrawBorder tags the full first and last rows and the first and last
// column of every row in between.
func (s *Screen) DrawBorder(t Tag) {
	if s.width == 0 || s.height == 0 {
		return
	}
	s.DrawHLine(0, 0, s.width, t)
	s.DrawHLine(0, s.height-1, s.width, t)
	s.DrawVLine(0, 1, s.height-2, t)
	s.DrawVLine(s.width-1, 1, s.height-2, t)
}

// Row returns a copy of the specified row.
// Returns nil for out-of-bounds rows.
func (s *Screen) Row(y int) []Tag {
	if y < 0 || y >= s.height {
		return nil
	}
	row := make([]Tag, s.width)
	copy(row, s.cells[y])
	return row
}
