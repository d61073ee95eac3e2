// Package triangulate adapts the planar boundary loop to the external
// constrained-Delaunay collaborator (spec.md §6, collaborator 1), backed by
// github.com/iceisfun/gomesh/cdt. It is the only package that talks to that
// library; everything upstream deals in plain points and index pairs.
package triangulate

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/iceisfun/gomesh/cdt"
	"github.com/iceisfun/gomesh/types"

	"github.com/kaelbrook/meshclip/geom"
)

// ErrTriangulationFailure wraps any error the underlying CDT collaborator
// reports: a recoverable-by-convention failure per spec §7.
var ErrTriangulationFailure = errors.New("triangulate: constrained triangulation failed")

// Result is a self-contained 2D triangulation: every point referenced by
// Triangles, including Steiner points the triangulator introduced that
// weren't in the input.
type Result struct {
	Points    []geom.Vec2
	Triangles [][3]int
}

// Triangulate builds a constrained Delaunay triangulation of points, with
// edges naming the constrained boundary segments (by index into points).
// The boundary is decomposed into closed loops; the largest by area becomes
// the outer perimeter, the rest become holes, and any edges that don't close
// into a loop are passed through as extra constraints.
func Triangulate(points []geom.Vec2, edges [][2]int) (Result, error) {
	if len(points) < 3 {
		return Result{}, fmt.Errorf("%w: fewer than 3 points", ErrTriangulationFailure)
	}

	loops, leftover := traceLoops(edges)
	if len(loops) == 0 {
		return Result{}, fmt.Errorf("%w: boundary did not close into a loop", ErrTriangulationFailure)
	}

	sort.Slice(loops, func(i, j int) bool {
		return math.Abs(loopArea(points, loops[i])) > math.Abs(loopArea(points, loops[j]))
	})

	outer := toPointLoop(points, loops[0])
	holes := make([][]types.Point, 0, len(loops)-1)
	for _, l := range loops[1:] {
		holes = append(holes, toPointLoop(points, l))
	}

	extras := make([][2]types.Point, 0, len(leftover))
	for _, e := range leftover {
		extras = append(extras, [2]types.Point{toPoint(points[e[0]]), toPoint(points[e[1]])})
	}

	opts := cdt.DefaultBuildOptions()
	m, err := cdt.BuildWithOptions(outer, holes, extras, opts)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrTriangulationFailure, err)
	}

	out := Result{
		Points:    make([]geom.Vec2, len(m.Vertices)),
		Triangles: make([][3]int, len(m.Triangles)),
	}
	for i, v := range m.Vertices {
		out.Points[i] = geom.Vec2{v.X, v.Y}
	}
	for i, tri := range m.Triangles {
		out.Triangles[i] = [3]int{tri.V[0], tri.V[1], tri.V[2]}
	}
	return out, nil
}

func toPoint(p geom.Vec2) types.Point {
	return types.Point{X: p.X(), Y: p.Y()}
}

func toPointLoop(points []geom.Vec2, loop []int) []types.Point {
	out := make([]types.Point, len(loop))
	for i, idx := range loop {
		out[i] = toPoint(points[idx])
	}
	return out
}
