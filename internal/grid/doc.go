// Package grid provides the structured computational grid for the solver.
//
// A [Grid] is an ordered set of spatial axes, each with a spacing, a node
// count and a boundary condition. The grid owns node coordinates and the
// upwind gradient reconstruction used by the numerical scheme:
//
//   - [Axis]: one spatial dimension (extent, node count, boundary)
//   - [Grid]: node states, shape/stride bookkeeping
//   - [Scheme]: one-sided derivative reconstruction (first order, ENO2,
//     WENO3, WENO5)
//
// # Gradient layout
//
// Gradient fields are flat float64 slices in node-major order: the entry
// for node i along axis a sits at index i*NumDims()+a. Value fields have
// one entry per node in row-major node order.
package grid
