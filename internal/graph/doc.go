// Package graph defines the contact store for relaylogic's evaluation engine.
//
// A Graph is an arena of contacts addressed by dense integer Handles. It is
// intentionally split into:
//   - Node storage: per-contact program/state/input values of the domain type
//   - Edge structure: ordered structural children plus ordered short edges
//
// Handle 0 is the root, created with the graph; it never has a parent. Nodes
// and edges are only ever added, so handles stay valid for the lifetime of
// the graph and sequence positions are stable.
package graph
