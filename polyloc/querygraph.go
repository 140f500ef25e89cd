package polyloc

import "math/rand"

// defaultDirection is used for queries that don't care about tie-breaking
// at a vertex (e.g. a one-off ContainsPoint check against an already-built
// graph).
var defaultDirection = direction{x: -1, y: -1}

// Graph is a trapezoidal point-location structure built incrementally from
// a polygon's boundary edges (Seidel 1991): insert edges one at a time, in
// random order, splitting whichever trapezoids they pass through. Expected
// O(n log n) construction, O(log n) point queries.
type Graph struct {
	root *node
}

// NewGraph builds a graph from the polygon's edges using a fixed seed, so
// repeated builds of the same polygon are reproducible.
func NewGraph(poly Polygon) *Graph {
	poly = poly.CCW()
	edges := poly.edges()

	r := rand.New(rand.NewSource(1))
	r.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	g := &Graph{}
	for _, e := range edges {
		if g.root == nil {
			g.root = newGraphFromSegment(e)
			continue
		}
		g.addSegment(e)
	}
	return g
}

func newGraphFromSegment(e *Edge) *node {
	a, b := e.Top(), e.Bottom()

	top := &Trapezoid{Bottom: a}
	top.Sink = &node{sinkNode{Trapezoid: top}}

	leftT := &Trapezoid{Right: e, Top: a, Bottom: b}
	leftT.Sink = &node{sinkNode{Trapezoid: leftT}}

	rightT := &Trapezoid{Left: e, Top: a, Bottom: b}
	rightT.Sink = &node{sinkNode{Trapezoid: rightT}}

	bottom := &Trapezoid{Top: b}
	bottom.Sink = &node{sinkNode{Trapezoid: bottom}}

	top.TrapezoidsBelow[0] = leftT
	top.TrapezoidsBelow[1] = rightT
	leftT.TrapezoidsAbove[0] = top
	leftT.TrapezoidsBelow[0] = bottom
	rightT.TrapezoidsAbove[0] = top
	rightT.TrapezoidsBelow[0] = bottom
	bottom.TrapezoidsAbove[0] = leftT
	bottom.TrapezoidsAbove[1] = rightT

	root := &node{yNode{
		Key:   a,
		Above: top.Sink,
		Below: &node{yNode{
			Key:   b,
			Below: bottom.Sink,
			Above: &node{xNode{Key: e, Left: leftT.Sink, Right: rightT.Sink}},
		}},
	}}

	for _, n := range walk(root) {
		for _, child := range n.children() {
			if sink, ok := child.inner.(sinkNode); ok {
				sink.InitialParent = n
				child.inner = sink
			}
		}
	}
	return root
}

func (g *Graph) find(p *Vertex, dir direction) *node {
	return g.root.findPoint(p, dir)
}

// ContainsPoint reports whether p lies strictly inside the polygon the
// graph was built from. Behavior is unspecified for points exactly on the
// boundary.
func (g *Graph) ContainsPoint(p *Vertex) bool {
	n := g.find(p, defaultDirection)
	return n.inner.(sinkNode).Trapezoid.Inside()
}

// addSegment inserts e into the graph, splitting every trapezoid it passes
// through and merging the resulting chains back together on each side.
func (g *Graph) addSegment(e *Edge) {
	top, bottom := e.Top(), e.Bottom()
	topToBottom := direction{x: sign(e.End.X - e.Start.X), y: -1}

	topNode := g.find(top, topToBottom)
	topTrap := topNode.inner.(sinkNode).Trapezoid
	if !topTrap.hasVertex(top) {
		g.splitHorizontally(topNode, top)
	}

	bottomNode := g.find(bottom, direction{x: -topToBottom.x, y: 1})
	bottomTrap := bottomNode.inner.(sinkNode).Trapezoid
	if !bottomTrap.hasVertex(bottom) {
		g.splitHorizontally(bottomNode, bottom)
		bottomTrap = bottomNode.inner.(yNode).Above.inner.(sinkNode).Trapezoid
	}

	var leftChain, rightChain []*Trapezoid
	cur := bottomTrap
	for {
		l, r := cur.splitBySegment(e)
		leftChain = append(leftChain, l)
		rightChain = append(rightChain, r)

		if top == cur.Bottom {
			break
		}
		var next *Trapezoid
		for _, neighbor := range cur.TrapezoidsAbove {
			if neighbor != nil && neighbor.bottomIntersects(e) {
				next = neighbor
				break
			}
		}
		if next == nil {
			break
		}
		cur = next
	}

	for side, chain := range [2][]*Trapezoid{leftChain, rightChain} {
		var chunks [][]*Trapezoid
		curChunk := []*Trapezoid{chain[0]}
		for _, t := range chain[1:] {
			if curChunk[0].canMergeWith(t) {
				curChunk = append(curChunk, t)
			} else {
				chunks = append(chunks, curChunk)
				curChunk = []*Trapezoid{t}
			}
		}
		chunks = append(chunks, curChunk)

		for _, chunk := range chunks {
			merged := new(Trapezoid)
			bottomT := chunk[0]
			*merged = *bottomT
			topT := chunk[len(chunk)-1]
			merged.Top = topT.Top
			merged.TrapezoidsAbove = topT.TrapezoidsAbove
			for _, neighbor := range merged.TrapezoidsAbove {
				if neighbor != nil {
					neighbor.TrapezoidsBelow.replace(topT, merged)
				}
			}
			for _, neighbor := range merged.TrapezoidsBelow {
				if neighbor != nil {
					neighbor.TrapezoidsAbove.replace(bottomT, merged)
				}
			}
			merged.Sink = &node{sinkNode{Trapezoid: merged}}

			for _, t := range chunk {
				n := t.Sink
				var xn xNode
				if xDirection(side) == left {
					xn = xNode{Key: e, Left: merged.Sink}
				} else {
					xn = n.inner.(xNode)
					xn.Right = merged.Sink
				}
				n.inner = xn
			}
		}
	}
}

// splitHorizontally splits the sink node's trapezoid at point into an above
// and below half, replacing the sink with a yNode.
func (g *Graph) splitHorizontally(n *node, point *Vertex) {
	sink := n.inner.(sinkNode)
	top := new(Trapezoid)
	bottom := new(Trapezoid)
	*top = *sink.Trapezoid
	*bottom = *sink.Trapezoid
	top.Bottom = point
	bottom.Top = point
	top.TrapezoidsBelow = neighborList{bottom}
	bottom.TrapezoidsAbove = neighborList{top}
	top.Sink = &node{sinkNode{Trapezoid: top, InitialParent: n}}
	bottom.Sink = &node{sinkNode{Trapezoid: bottom, InitialParent: n}}

	for _, neighbor := range top.TrapezoidsAbove {
		if neighbor != nil {
			neighbor.TrapezoidsBelow.replace(sink.Trapezoid, top)
		}
	}
	for _, neighbor := range bottom.TrapezoidsBelow {
		if neighbor != nil {
			neighbor.TrapezoidsAbove.replace(sink.Trapezoid, bottom)
		}
	}
	n.inner = yNode{Key: point, Above: top.Sink, Below: bottom.Sink}
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}
