package sidebar

// Bounds is a tile's vertical extent in the sidebar list.
type Bounds struct {
	Top    float64
	Height float64
}

func (b Bounds) mid() float64 { return b.Top + b.Height/2 }

// InsertBefore computes the drop position during a drag gesture: given the
// non-dragging siblings' bounds in list order and the pointer's vertical
// position, it returns the index of the sibling the dragged tile should be
// inserted before — the nearest sibling whose midpoint lies below the
// pointer. ok=false means the pointer is below every sibling: insert at end.
//
// Ties cannot occur under real pixel geometry; if they do, the first sibling
// in iteration order wins (stable).
func InsertBefore(sibs []Bounds, pointerY float64) (index int, ok bool) {
	best := -1
	bestOffset := 0.0
	for i, b := range sibs {
		offset := pointerY - b.mid()
		if offset >= 0 {
			continue
		}
		if best == -1 || offset > bestOffset {
			best = i
			bestOffset = offset
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
