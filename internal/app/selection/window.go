package selection

// Window returns the first visible row of a viewport of height rows over a view of
// length rows. The selected row is kept centered when possible.
func Window(selected, length, height int) int {
	if height <= 0 || length <= height {
		return 0
	}

	offset := selected - height/2

	return max(0, min(offset, length-height))
}

// Scrollbar is a position/length pair for a scrollable pane
type Scrollbar struct {
	Position int
	Length   int
}

// NewScrollbar creates a scrollbar for position within length items
func NewScrollbar(position, length int) Scrollbar {
	if length <= 0 {
		return Scrollbar{}
	}

	return Scrollbar{Position: max(0, min(position, length-1)), Length: length}
}

// Thumb returns the start and size of the scrollbar thumb on a track of height cells
func (s Scrollbar) Thumb(height int) (int, int) {
	if height <= 0 || s.Length <= 0 {
		return 0, 0
	}

	if s.Length <= height {
		return 0, height
	}

	size := max(1, height*height/s.Length)
	travel := height - size

	start := 0
	if s.Length > 1 {
		start = s.Position * travel / (s.Length - 1)
	}

	return start, size
}
