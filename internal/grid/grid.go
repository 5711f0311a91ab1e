/*
NAME
  grid.go

DESCRIPTION
  grid.go provides a concrete rectangular 2-D array type shared by every
  stage of the image-compression pipeline.

AUTHOR
  Generated for the ausocean/imgcomp codec.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package grid provides a generic row-major rectangular array, used in
// place of a dispatch-table abstraction over plain and blocked layouts:
// every grid the pipeline needs is a dense row-major rectangle, so one
// concrete type replaces the vtable.
package grid

// Grid is a dense row-major rectangular array of elements of type T.
type Grid[T any] struct {
	w, h int
	data []T
}

// New returns a Grid with the given width and height, zero-valued.
func New[T any](w, h int) *Grid[T] {
	if w < 0 || h < 0 {
		panic("grid: negative dimension")
	}
	return &Grid[T]{w: w, h: h, data: make([]T, w*h)}
}

// Width returns the grid's width.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the grid's height.
func (g *Grid[T]) Height() int { return g.h }

// At returns the element at (x, y).
func (g *Grid[T]) At(x, y int) T {
	g.checkBounds(x, y)
	return g.data[y*g.w+x]
}

// Set stores v at (x, y).
func (g *Grid[T]) Set(x, y int, v T) {
	g.checkBounds(x, y)
	g.data[y*g.w+x] = v
}

// Ptr returns a pointer to the element at (x, y), for in-place mutation.
func (g *Grid[T]) Ptr(x, y int) *T {
	g.checkBounds(x, y)
	return &g.data[y*g.w+x]
}

func (g *Grid[T]) checkBounds(x, y int) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		panic("grid: index out of range")
	}
}

// Apply calls fn once for every element in row-major order (y outer, x
// inner), passing the element's coordinates and a pointer so fn can
// mutate it in place. This is the direct-traversal replacement for the
// apply-function-closure pattern: callers inline what used to be a
// separate closure struct.
func (g *Grid[T]) Apply(fn func(x, y int, v *T)) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			fn(x, y, &g.data[y*g.w+x])
		}
	}
}
