package session

// Style is the display class of one cell.
type Style int

// Cell styles.
const (
	StylePending Style = iota
	StyleCorrect
	StyleError
)

// Cell is one draw instruction relative to the passage origin.
type Cell struct {
	Row   int
	Col   int
	Char  rune
	Style Style
}

// Position maps a buffer index to its wrapped row and column. Widths below
// one are treated as one.
func Position(k, width int) (row, col int) {
	if width < 1 {
		width = 1
	}
	return k / width, k % width
}

// Cells lays out the passage at the given width. Typed positions show the
// typed rune so mistakes stay visible; the rest show the target.
func (s *Session) Cells(width int) []Cell {
	cells := make([]Cell, len(s.target))
	for k, target := range s.target {
		row, col := Position(k, width)
		cell := Cell{Row: row, Col: col, Char: target, Style: StylePending}
		if k < len(s.typed) {
			cell.Char = s.typed[k]
			if s.typed[k] == target {
				cell.Style = StyleCorrect
			} else {
				cell.Style = StyleError
			}
		}
		cells[k] = cell
	}
	return cells
}
