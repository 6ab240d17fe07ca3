package sim

import (
	"fmt"

	"github.com/inference-sim/percolation-sim/sim/unionfind"
)

// Grid is an n-by-n site percolation system.
//
// Sites are addressed by 1-indexed (row, col) and stored at linear index
// (row-1)*n + col. Two virtual sites are always open: index 0 sits above the
// grid and is joined to every site of the first row, index n²+1 sits below it
// and is joined to every site of the last row. For n = 3:
//
//	[   , 0 ,   ]  top
//	[ 1 , 2 , 3 ]
//	[ 4 , 5 , 6 ]
//	[ 7 , 8 , 9 ]
//	[   , 10,   ]  bottom
//
// Thread-safety: NOT thread-safe.
type Grid struct {
	n      int
	open   []bool // len n²+2; sentinels are true
	uf     *unionfind.UF
	opened int
}

// NewGrid creates an n-by-n grid with every site blocked.
// Returns an error wrapping ErrInvalidArgument if n < 1.
func NewGrid(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("grid size must be positive, got %d: %w", n, ErrInvalidArgument)
	}
	size := n*n + 2
	g := &Grid{
		n:    n,
		open: make([]bool, size),
		uf:   unionfind.New(size),
	}
	g.open[g.top()] = true
	g.open[g.bottom()] = true

	for col := 1; col <= n; col++ {
		g.uf.Union(g.top(), g.index(1, col))
		g.uf.Union(g.bottom(), g.index(n, col))
	}
	return g, nil
}

// Size returns the grid dimension n.
func (g *Grid) Size() int {
	return g.n
}

// Open opens site (row, col) and joins it with its open neighbors.
// Opening an already open site changes nothing.
func (g *Grid) Open(row, col int) error {
	if err := g.validate(row, col); err != nil {
		return err
	}
	self := g.index(row, col)
	if g.open[self] {
		return nil
	}
	g.open[self] = true
	g.opened++

	// No wraparound: each neighbor is taken only inside the grid.
	if row > 1 {
		g.joinIfOpen(self, g.index(row-1, col))
	}
	if row < g.n {
		g.joinIfOpen(self, g.index(row+1, col))
	}
	if col > 1 {
		g.joinIfOpen(self, g.index(row, col-1))
	}
	if col < g.n {
		g.joinIfOpen(self, g.index(row, col+1))
	}
	return nil
}

// IsOpen reports whether site (row, col) is open.
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}
	return g.open[g.index(row, col)], nil
}

// IsFull reports whether site (row, col) is open and reachable from the top
// row through open sites.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}
	self := g.index(row, col)
	return g.open[self] && g.uf.Connected(self, g.top()), nil
}

// NumberOfOpenSites returns the number of open sites, excluding the sentinels.
func (g *Grid) NumberOfOpenSites() int {
	return g.opened
}

// Percolates reports whether an open path joins the top row to the bottom row.
func (g *Grid) Percolates() bool {
	// With one site the first and last row coincide, so both sentinels are
	// joined before anything is opened.
	if g.n == 1 {
		return g.opened == 1
	}
	return g.uf.Connected(g.top(), g.bottom())
}

func (g *Grid) joinIfOpen(self, neighbor int) {
	if g.open[neighbor] {
		g.uf.Union(self, neighbor)
	}
}

func (g *Grid) validate(row, col int) error {
	if row < 1 || row > g.n {
		return fmt.Errorf("row %d outside [1, %d]: %w", row, g.n, ErrInvalidArgument)
	}
	if col < 1 || col > g.n {
		return fmt.Errorf("col %d outside [1, %d]: %w", col, g.n, ErrInvalidArgument)
	}
	return nil
}

func (g *Grid) index(row, col int) int {
	return (row-1)*g.n + col
}

func (g *Grid) top() int {
	return 0
}

func (g *Grid) bottom() int {
	return g.n*g.n + 1
}
