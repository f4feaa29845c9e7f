// Package widgets contains dumb render primitives.
//
// Allowed here:
//   - stateless drawing/composition helpers (stacks, callouts, metric cards, grids,
//     markdown blocks, popup overlay compositor)
//
// Not allowed here:
// - key handling, app state transitions, deck content, or tab policy
package widgets
