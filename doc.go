// Package digraph is an in-memory, generic directed graph container:
// nodes carry an orderable value, and directed edges between nodes
// optionally carry a weight of a second orderable type.
//
// 🚀 What is digraph?
//
//	A small, deterministic container library that brings together:
//		• Generic storage: Graph[N, E] for any ordered node and weight type
//		• Total ordering everywhere: nodes by value, edges by (src, dst, weight)
//		• Cascade semantics: rename, merge and erase rewrite incident edges
//		• Bidirectional edge cursors with erase-returns-next semantics
//		• Deterministic text rendering, structural equality, cheap cloning
//
// ✨ Why choose digraph?
//
//   - Minimal API, clear, intuitive naming — insert, erase, replace, merge, find
//   - Deterministic everything — stable iteration, stable rendered output
//   - Value semantics — returned snapshots never mutate under you
//   - Pure Go — no cgo, one small ordered-storage dependency
//
// Everything lives in a single subpackage:
//
//	core/ — the Graph, Edge and EdgeIterator types and all operations
//
// Quick ASCII example:
//
//	    hello ──5──▶ how
//	      │ ▲         │
//	    2,8 └────4────┘
//	      ▼           ▼
//	     are ──3──▶ you?
//
//	a directed graph where parallel edges differ by weight.
//
// Dive into core/doc.go for the full API sketch and into examples/
// for a runnable demo.
//
//	go get github.com/katalvlaran/digraph/core
package digraph
