package grid

import (
	"fmt"
)

// Boundary selects how ghost nodes beyond an axis edge are filled before
// gradient reconstruction.
type Boundary int

const (
	// Extrapolate fills ghost nodes by linear extrapolation of the edge slope.
	Extrapolate Boundary = iota
	// Periodic wraps ghost nodes around to the opposite edge. A periodic
	// axis excludes the duplicate endpoint node.
	Periodic
)

func (b Boundary) String() string {
	switch b {
	case Periodic:
		return "periodic"
	case Extrapolate:
		return "extrapolate"
	}
	return fmt.Sprintf("boundary(%d)", int(b))
}

// ParseBoundary maps a config name to a Boundary.
func ParseBoundary(name string) (Boundary, error) {
	switch name {
	case "", "extrapolate":
		return Extrapolate, nil
	case "periodic":
		return Periodic, nil
	}
	return 0, fmt.Errorf("grid: unknown boundary %q", name)
}

// Axis describes one spatial dimension of the grid.
type Axis struct {
	Min, Max float64
	Nodes    int
	Boundary Boundary
}

// Spacing returns the distance between adjacent nodes. Periodic axes place
// Nodes samples on a half-open interval, so the duplicate endpoint is not
// stored.
func (a Axis) Spacing() float64 {
	if a.Boundary == Periodic {
		return (a.Max - a.Min) / float64(a.Nodes)
	}
	return (a.Max - a.Min) / float64(a.Nodes-1)
}

// Grid is an immutable structured grid over one or more axes. Node fields
// (values, gradients, masks) are flat slices in row-major node order.
type Grid struct {
	axes     []Axis
	shape    []int
	strides  []int
	spacings []float64
	numNodes int
	states   []float64 // numNodes * ndim, node-major
}

// New validates the axes and precomputes node coordinates.
func New(axes ...Axis) (*Grid, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("grid: at least one axis required")
	}
	g := &Grid{
		axes:     append([]Axis(nil), axes...),
		shape:    make([]int, len(axes)),
		strides:  make([]int, len(axes)),
		spacings: make([]float64, len(axes)),
		numNodes: 1,
	}
	for d, ax := range axes {
		if ax.Nodes < 2 {
			return nil, fmt.Errorf("grid: axis %d needs at least 2 nodes, got %d", d, ax.Nodes)
		}
		if !(ax.Max > ax.Min) {
			return nil, fmt.Errorf("grid: axis %d extent [%g, %g] is empty", d, ax.Min, ax.Max)
		}
		g.shape[d] = ax.Nodes
		g.spacings[d] = ax.Spacing()
		g.numNodes *= ax.Nodes
	}
	for d := len(axes) - 1; d >= 0; d-- {
		if d == len(axes)-1 {
			g.strides[d] = 1
		} else {
			g.strides[d] = g.strides[d+1] * g.shape[d+1]
		}
	}

	nd := len(axes)
	g.states = make([]float64, g.numNodes*nd)
	for i := 0; i < g.numNodes; i++ {
		rem := i
		for d := 0; d < nd; d++ {
			idx := rem / g.strides[d]
			rem -= idx * g.strides[d]
			g.states[i*nd+d] = axes[d].Min + float64(idx)*g.spacings[d]
		}
	}
	return g, nil
}

// NumDims returns the number of spatial axes.
func (g *Grid) NumDims() int { return len(g.axes) }

// NumNodes returns the total node count.
func (g *Grid) NumNodes() int { return g.numNodes }

// Shape returns the per-axis node counts.
func (g *Grid) Shape() []int { return g.shape }

// Spacings returns the per-axis node spacing.
func (g *Grid) Spacings() []float64 { return g.spacings }

// Axes returns the axis descriptions.
func (g *Grid) Axes() []Axis { return g.axes }

// State returns the coordinate vector of flat node i. The returned slice
// aliases grid-owned storage and must not be modified.
func (g *Grid) State(i int) []float64 {
	nd := len(g.axes)
	return g.states[i*nd : (i+1)*nd]
}

// FlatIndex converts a multi-dimensional node index to a flat one.
func (g *Grid) FlatIndex(idx ...int) int {
	flat := 0
	for d, k := range idx {
		flat += k * g.strides[d]
	}
	return flat
}

// UpwindGradValues reconstructs left- and right-biased derivative estimates
// of values along every axis using the given scheme. Both results are
// node-major gradient slices of length NumNodes()*NumDims().
//
// The value field must have exactly one entry per node; callers validate
// shapes before stepping, so a mismatch here panics.
func (g *Grid) UpwindGradValues(scheme Scheme, values []float64) (left, right []float64) {
	if len(values) != g.numNodes {
		panic(fmt.Sprintf("grid: value field has %d entries, grid has %d nodes", len(values), g.numNodes))
	}
	nd := len(g.axes)
	left = make([]float64, g.numNodes*nd)
	right = make([]float64, g.numNodes*nd)

	pad := scheme.StencilWidth()
	for d := 0; d < nd; d++ {
		n := g.shape[d]
		stride := g.strides[d]
		h := g.spacings[d]
		bc := g.axes[d].Boundary

		line := make([]float64, n+2*pad)
		dl := make([]float64, n)
		dr := make([]float64, n)

		// Lines along axis d are enumerated by splitting the flat index
		// into the part above and below the axis stride.
		outer := g.numNodes / (n * stride)
		for hi := 0; hi < outer; hi++ {
			for lo := 0; lo < stride; lo++ {
				base := hi*n*stride + lo
				for k := 0; k < n; k++ {
					line[pad+k] = values[base+k*stride]
				}
				fillGhosts(line, n, pad, bc)
				scheme.Reconstruct(line, h, dl, dr)
				for k := 0; k < n; k++ {
					at := (base + k*stride) * nd
					left[at+d] = dl[k]
					right[at+d] = dr[k]
				}
			}
		}
	}
	return left, right
}

// fillGhosts populates pad ghost nodes on both ends of a padded grid line.
func fillGhosts(line []float64, n, pad int, bc Boundary) {
	switch bc {
	case Periodic:
		for k := 0; k < pad; k++ {
			line[pad-1-k] = line[pad+n-1-k]
			line[pad+n+k] = line[pad+k]
		}
	default:
		loSlope := line[pad+1] - line[pad]
		hiSlope := line[pad+n-1] - line[pad+n-2]
		for k := 0; k < pad; k++ {
			line[pad-1-k] = line[pad] - float64(k+1)*loSlope
			line[pad+n+k] = line[pad+n-1] + float64(k+1)*hiSlope
		}
	}
}
