// Package reactor provides the numerical core for three coupled, well-mixed
// chemical reactors linked by flow streams.
//
// The package is built from plain value types and pure functions:
//
//   - [Params]: reactor volumes, flow rates, feed and initial concentrations,
//     and the simulation horizon
//   - [ValidateFlows]: checks the four volumetric mass-balance equations
//   - [Simulate]: explicit Euler integration producing a [Trajectory]
//   - [Run]: positivity checks, flow validation and simulation in one call
//
// # Example
//
//	p := reactor.Params{...}
//	if v := reactor.ValidateFlows(p.Flows); !v.OK() {
//		return v.Err()
//	}
//	tr, err := reactor.Simulate(p, reactor.DefaultPoints)
//
// # Thread Safety
//
// Nothing in the package holds state. Independent simulations may run in
// parallel; see the sweep package.
package reactor
