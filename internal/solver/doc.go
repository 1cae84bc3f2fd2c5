// Package solver implements the Hamilton-Jacobi time-integration engine.
//
// The package combines upwind spatial gradients from [grid] with a
// problem-specific [Dynamics] Hamiltonian into a Lax-Friedrichs numerical
// flux, selects a CFL-stable step size, and marches the value function in
// time with total-variation-diminishing Runge-Kutta schemes:
//
//   - [Field]: dense value function, one entry per grid node
//   - [Dynamics]: Hamiltonian and per-axis wave-speed bounds
//   - [Settings]: scheme selection, post-processors, CFL number
//   - [Step], [Solve]: driver entry points
//
// Integration is symmetric in time: the direction is inferred from the
// sign of the requested step, so backward reachability is just a negative
// target time.
//
// # Thread safety
//
// Each stage produces a fresh value field; per-node flux evaluation runs
// in parallel across worker chunks, and the step-size reduction is a hard
// barrier between flux computation and the update.
package solver
