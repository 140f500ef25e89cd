package polyloc

type xDirection int

const (
	left xDirection = iota
	right
)

type yDirection int

const (
	down yDirection = iota
	up
)

// direction is the vector a point-location query approaches a vertex from,
// used to disambiguate when the query point is itself a graph vertex.
type direction struct {
	x float64
	y float64
}

// nodeInner is the polymorphic payload of a query graph node: a sink
// pointing at a trapezoid, or an internal node that routes the search left
// of/right of a segment (xNode) or above/below a vertex (yNode).
type nodeInner interface {
	findPoint(p *Vertex, dir direction) *node
	children() []*node
}

type node struct {
	inner nodeInner
}

func (n *node) findPoint(p *Vertex, dir direction) *node {
	if _, ok := n.inner.(sinkNode); ok {
		return n
	}
	return n.inner.findPoint(p, dir)
}

func (n *node) children() []*node {
	return n.inner.children()
}

type sinkNode struct {
	Trapezoid     *Trapezoid
	InitialParent *node // nil once this sink has been merged from multiple parents
}

func (sinkNode) findPoint(*Vertex, direction) *node {
	panic("polyloc: cannot search further from a sink")
}

func (sinkNode) children() []*node { return nil }

// yNode routes the search above or below Key.
type yNode struct {
	Above, Below *node
	Key          *Vertex
}

func (n yNode) findPoint(p *Vertex, dir direction) *node {
	var dy yDirection
	if n.Key == p {
		// The query point is this vertex itself; use the approach
		// direction to decide which side we're asking about.
		if dir.y == 0 {
			if dir.x > 0 {
				dy = up
			} else {
				dy = down
			}
		} else if dir.y > 0 {
			dy = up
		} else {
			dy = down
		}
	} else if p.Below(n.Key) {
		dy = down
	} else {
		dy = up
	}
	if dy == up {
		return n.Above.findPoint(p, dir)
	}
	return n.Below.findPoint(p, dir)
}

func (n yNode) children() []*node { return []*node{n.Above, n.Below} }

// xNode routes the search left or right of Key.
type xNode struct {
	Left, Right *node
	Key         *Edge
}

func (n xNode) findPoint(p *Vertex, dir direction) *node {
	var dx xDirection
	if n.Key.Start == p || n.Key.End == p {
		nudged := &Vertex{X: p.X + dir.x, Y: p.Y + dir.y}
		if n.Key.IsLeftOf(nudged) {
			dx = right
		} else {
			dx = left
		}
	} else if n.Key.IsLeftOf(p) {
		dx = right
	} else {
		dx = left
	}
	if dx == left {
		return n.Left.findPoint(p, dir)
	}
	return n.Right.findPoint(p, dir)
}

func (n xNode) children() []*node { return []*node{n.Left, n.Right} }

// walk visits every node reachable from root exactly once. Traversal order
// is unspecified.
func walk(root *node) []*node {
	var out []*node
	seen := map[*node]bool{}
	stack := []*node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
		stack = append(stack, n.children()...)
	}
	return out
}
