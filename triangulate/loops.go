package triangulate

import "github.com/kaelbrook/meshclip/geom"

// traceLoops walks a set of directed edges (indices into points) and
// extracts every simple closed loop it can find by following each vertex's
// single successor. Edges that don't close into a loop (a malformed or
// partially-degenerate boundary) are returned separately as leftover
// segments, passed on to the triangulator as plain constraints instead of
// perimeter/hole loops.
func traceLoops(edges [][2]int) (loops [][]int, leftover [][2]int) {
	successor := make(map[int]int, len(edges))
	used := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		successor[e[0]] = e[1]
	}

	visited := make(map[int]bool, len(edges))
	for _, e := range edges {
		start := e[0]
		if visited[start] {
			continue
		}
		loop := []int{start}
		visited[start] = true
		cur := start
		closed := false
		var walked [][2]int
		for i := 0; i < len(edges)+1; i++ {
			next, ok := successor[cur]
			if !ok {
				break
			}
			walked = append(walked, [2]int{cur, next})
			if next == start {
				closed = true
				break
			}
			if visited[next] {
				break
			}
			loop = append(loop, next)
			visited[next] = true
			cur = next
		}
		if closed && len(loop) >= 3 {
			loops = append(loops, loop)
			for _, w := range walked {
				used[w] = true
			}
		}
	}

	for _, e := range edges {
		if !used[e] {
			leftover = append(leftover, e)
		}
	}
	return loops, leftover
}

// loopArea returns twice the signed area of a polygon (X,Y projected via
// idx into points), used to pick the outer perimeter: the loop enclosing
// the most area wins, the rest become holes.
func loopArea(points []geom.Vec2, loop []int) float64 {
	area := 0.0
	n := len(loop)
	for i := 0; i < n; i++ {
		a := points[loop[i]]
		b := points[loop[(i+1)%n]]
		area += a.X()*b.Y() - b.X()*a.Y()
	}
	return area
}
