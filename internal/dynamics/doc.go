// Package dynamics provides example Hamiltonians for the solver.
//
// Each model implements [solver.Dynamics], supplying the Hamiltonian
// H(x, t, v, grad) and the per-axis wave-speed bounds the dissipation and
// CFL machinery need:
//
//   - [Advection]: constant drift, H = c . grad
//   - [Eikonal]: isotropic front propagation, H = -s * |grad|
//   - [Dubins]: constant-speed car with bounded turn rate
//
// Models are registered by name for the CLI; see [Get] and [List].
package dynamics
