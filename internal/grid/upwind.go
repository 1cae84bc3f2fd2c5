package grid

import "math"

// Scheme reconstructs one-sided first-derivative estimates along a single
// padded grid line. Implementations are stateless values safe for
// concurrent use.
type Scheme interface {
	Name() string
	// StencilWidth is the number of ghost nodes required on each side.
	StencilWidth() int
	// Reconstruct fills left and right (each of length n) with the
	// left- and right-biased derivative estimates at the n interior
	// nodes of line, which holds n+2*StencilWidth() samples spaced h apart.
	Reconstruct(line []float64, h float64, left, right []float64)
}

// FirstOrder is plain one-sided differencing.
type FirstOrder struct{}

func (FirstOrder) Name() string      { return "first_order" }
func (FirstOrder) StencilWidth() int { return 1 }

func (FirstOrder) Reconstruct(line []float64, h float64, left, right []float64) {
	n := len(left)
	for i := 0; i < n; i++ {
		j := i + 1
		left[i] = (line[j] - line[j-1]) / h
		right[i] = (line[j+1] - line[j]) / h
	}
}

// ENO2 is second-order essentially-non-oscillatory differencing: the
// first-order estimate plus the smaller-magnitude second-difference
// correction of the two candidate stencils.
type ENO2 struct{}

func (ENO2) Name() string      { return "eno2" }
func (ENO2) StencilWidth() int { return 2 }

func (ENO2) Reconstruct(line []float64, h float64, left, right []float64) {
	n := len(left)
	dd := func(j int) float64 { return (line[j+1] - 2*line[j] + line[j-1]) / (h * h) }
	for i := 0; i < n; i++ {
		j := i + 2
		left[i] = (line[j]-line[j-1])/h + h/2*minMagnitude(dd(j-1), dd(j))
		right[i] = (line[j+1]-line[j])/h - h/2*minMagnitude(dd(j), dd(j+1))
	}
}

// WENO3 is third-order weighted ENO: a smoothness-weighted blend of the
// two ENO2 candidate stencils with ideal weights 1/3 and 2/3.
type WENO3 struct{}

func (WENO3) Name() string      { return "weno3" }
func (WENO3) StencilWidth() int { return 2 }

func (WENO3) Reconstruct(line []float64, h float64, left, right []float64) {
	n := len(left)
	d := func(j int) float64 { return (line[j+1] - line[j]) / h }
	for i := 0; i < n; i++ {
		j := i + 2
		left[i] = weno3Blend(d(j-2), d(j-1), d(j))
		right[i] = weno3Blend(d(j+1), d(j), d(j-1))
	}
}

// weno3Blend combines the upwinded stencil (3v1-v0)/2 with the central
// stencil (v1+v2)/2; v0 is the difference furthest from the node.
func weno3Blend(v0, v1, v2 float64) float64 {
	eps := 1e-6*maxSquare(v0, v1, v2) + 1e-99
	b0 := (v1 - v0) * (v1 - v0)
	b1 := (v2 - v1) * (v2 - v1)
	w0 := (1.0 / 3.0) / ((eps + b0) * (eps + b0))
	w1 := (2.0 / 3.0) / ((eps + b1) * (eps + b1))
	return (w0*(3*v1-v0)/2 + w1*(v1+v2)/2) / (w0 + w1)
}

// WENO5 is fifth-order weighted ENO over three candidate stencils with
// ideal weights 1/10, 6/10, 3/10.
type WENO5 struct{}

func (WENO5) Name() string      { return "weno5" }
func (WENO5) StencilWidth() int { return 3 }

func (WENO5) Reconstruct(line []float64, h float64, left, right []float64) {
	n := len(left)
	d := func(j int) float64 { return (line[j+1] - line[j]) / h }
	for i := 0; i < n; i++ {
		j := i + 3
		left[i] = weno5Blend(d(j-3), d(j-2), d(j-1), d(j), d(j+1))
		right[i] = weno5Blend(d(j+2), d(j+1), d(j), d(j-1), d(j-2))
	}
}

// weno5Blend combines the three candidate stencils of the Jiang-Shu WENO
// reconstruction; v0 is the difference furthest upwind of the node.
func weno5Blend(v0, v1, v2, v3, v4 float64) float64 {
	p0 := v0/3 - 7*v1/6 + 11*v2/6
	p1 := -v1/6 + 5*v2/6 + v3/3
	p2 := v2/3 + 5*v3/6 - v4/6

	b0 := 13.0/12.0*sq(v0-2*v1+v2) + 0.25*sq(v0-4*v1+3*v2)
	b1 := 13.0/12.0*sq(v1-2*v2+v3) + 0.25*sq(v1-v3)
	b2 := 13.0/12.0*sq(v2-2*v3+v4) + 0.25*sq(3*v2-4*v3+v4)

	eps := 1e-6*maxSquare(v0, v1, v2, v3, v4) + 1e-99
	w0 := 0.1 / sq(eps+b0)
	w1 := 0.6 / sq(eps+b1)
	w2 := 0.3 / sq(eps+b2)
	return (w0*p0 + w1*p1 + w2*p2) / (w0 + w1 + w2)
}

func sq(x float64) float64 { return x * x }

func minMagnitude(a, b float64) float64 {
	if math.Abs(a) <= math.Abs(b) {
		return a
	}
	return b
}

func maxSquare(vs ...float64) float64 {
	m := 0.0
	for _, v := range vs {
		if v*v > m {
			m = v * v
		}
	}
	return m
}
