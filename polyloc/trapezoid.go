package polyloc

// Trapezoid is a face of the trapezoidal decomposition: a (possibly
// unbounded) region bounded by up to two vertices (Top, Bottom) and up to
// two polygon edges (Left, Right).
type Trapezoid struct {
	Left, Right *Edge
	Top, Bottom *Vertex

	TrapezoidsAbove, TrapezoidsBelow neighborList
	Sink                             *node
}

// neighborList holds up to three neighbors; a trapezoid can briefly gain a
// third neighbor mid-split, but never in the stable state.
type neighborList [3]*Trapezoid

func (nl *neighborList) add(t *Trapezoid) {
	for i, n := range nl {
		if n == t {
			return
		}
		if n == nil {
			nl[i] = t
			return
		}
	}
	panic("polyloc: trapezoid neighbor list overflow")
}

func (nl *neighborList) remove(t *Trapezoid) {
	for i, n := range nl {
		if n == t {
			nl[i] = nil
			return
		}
	}
}

func (nl *neighborList) replace(orig, replacement *Trapezoid) {
	for i, n := range nl {
		if n == orig {
			nl[i] = replacement
			return
		}
	}
	nl.add(replacement)
}

// Inside reports whether the trapezoid lies inside the polygon: it has both
// a left and a right bounding edge, and the left one points down (which, by
// the lexicographic convention, also makes the right one point up for any
// valid CCW simple polygon).
func (t *Trapezoid) Inside() bool {
	return t.Left != nil && t.Right != nil && t.Left.PointsDown()
}

func (t *Trapezoid) hasVertex(v *Vertex) bool {
	if t.Top == v || t.Bottom == v {
		return true
	}
	if t.Left != nil && (t.Left.Start == v || t.Left.End == v) {
		return true
	}
	if t.Right != nil && (t.Right.Start == v || t.Right.End == v) {
		return true
	}
	return false
}

func (t *Trapezoid) degenerateOn(dir yDirection) bool {
	switch dir {
	case up:
		return t.Left != nil && t.Left.Top() == t.Right.Top()
	case down:
		return t.Left != nil && t.Left.Bottom() == t.Right.Bottom()
	}
	panic("polyloc: invalid direction")
}

func (t *Trapezoid) bottomIntersects(e *Edge) bool {
	if e.IsHorizontal() || t.Bottom == nil {
		return false
	}
	x := e.XAt(t.Bottom.Y)
	p := &Vertex{X: x, Y: t.Bottom.Y}
	return t.Left.IsLeftOf(p) && t.Right.IsRightOf(p)
}

func (t *Trapezoid) canMergeWith(other *Trapezoid) bool {
	return t.Left == other.Left && t.Right == other.Right
}

// splitBySegment splits t into left/right halves along e, which must pass
// fully through it. The returned trapezoids still point at t's sink; the
// caller is responsible for wiring new sinks in once same-side chains have
// been merged.
func (t *Trapezoid) splitBySegment(e *Edge) (left, right *Trapezoid) {
	left = new(Trapezoid)
	right = new(Trapezoid)
	*left = *t
	*right = *t
	left.Right = e
	right.Left = e
	left.TrapezoidsAbove, left.TrapezoidsBelow = neighborList{}, neighborList{}
	right.TrapezoidsAbove, right.TrapezoidsBelow = neighborList{}, neighborList{}

	top, bottom := e.Top(), e.Bottom()

	for _, neighbor := range t.TrapezoidsAbove {
		if neighbor == nil {
			continue
		}
		neighbor.TrapezoidsBelow.remove(t)
		if !left.degenerateOn(up) && (neighbor.Left == nil || neighbor.Left.IsLeftOf(top)) {
			left.TrapezoidsAbove.add(neighbor)
			neighbor.TrapezoidsBelow.add(left)
		}
		if !right.degenerateOn(up) && (neighbor.Right == nil || neighbor.Right.IsRightOf(top)) {
			right.TrapezoidsAbove.add(neighbor)
			neighbor.TrapezoidsBelow.add(right)
		}
	}
	for _, neighbor := range t.TrapezoidsBelow {
		if neighbor == nil {
			continue
		}
		neighbor.TrapezoidsAbove.remove(t)
		if !left.degenerateOn(down) && (neighbor.Left == nil || neighbor.Left.IsLeftOf(bottom)) {
			left.TrapezoidsBelow.add(neighbor)
			neighbor.TrapezoidsAbove.add(left)
		}
		if !right.degenerateOn(down) && (neighbor.Right == nil || neighbor.Right.IsRightOf(bottom)) {
			right.TrapezoidsBelow.add(neighbor)
			neighbor.TrapezoidsAbove.add(right)
		}
	}
	return left, right
}
