// Package unionfind provides a disjoint-set structure over a fixed number of
// integer elements.
//
// The implementation is weighted quick-union: the root of the smaller tree is
// attached under the root of the larger one, and Find halves paths as it walks
// to the root. Union, Find and Connected run in amortized near-constant time.
package unionfind

import "fmt"

// UF partitions the elements 0..Len()-1 into disjoint components.
//
// Thread-safety: NOT thread-safe. Find mutates the parent links.
type UF struct {
	parent []int
	size   []int // size[r] is the element count of the tree rooted at r
	count  int
}

// New creates a UF with n singleton components.
// Panics if n is negative.
func New(n int) *UF {
	if n < 0 {
		panic(fmt.Sprintf("unionfind: negative element count %d", n))
	}
	uf := &UF{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

// Len returns the number of elements.
func (uf *UF) Len() int {
	return len(uf.parent)
}

// Count returns the number of components.
func (uf *UF) Count() int {
	return uf.count
}

// Find returns the root of the component containing p.
// Panics if p is out of range.
func (uf *UF) Find(p int) int {
	uf.validate(p)
	for uf.parent[p] != p {
		// Path halving: point p at its grandparent.
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}
	return p
}

// Connected reports whether p and q are in the same component.
// Panics if either index is out of range.
func (uf *UF) Connected(p, q int) bool {
	return uf.Find(p) == uf.Find(q)
}

// Union merges the components containing p and q. It is a no-op when they
// are already connected.
// Panics if either index is out of range.
func (uf *UF) Union(p, q int) {
	rootP := uf.Find(p)
	rootQ := uf.Find(q)
	if rootP == rootQ {
		return
	}
	if uf.size[rootP] < uf.size[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	uf.parent[rootQ] = rootP
	uf.size[rootP] += uf.size[rootQ]
	uf.count--
}

func (uf *UF) validate(p int) {
	if p < 0 || p >= len(uf.parent) {
		panic(fmt.Sprintf("unionfind: index %d out of bounds [0, %d)", p, len(uf.parent)))
	}
}
