// Package config loads hypergraph documents from YAML and keeps them fresh.
//
// A document lists nodes and weighted hyperedges, and may append generated
// structure through builder constructors:
//
//	weighted: true
//	nodes: [9]
//	edges:
//	  - nodes: [1, 2]
//	    weight: 2.5
//	  - nodes: [2, 3, 4]
//	generate:
//	  - kind: windows
//	    n: 5
//	    k: 3
//	    first_id: 100
//
// Load and Parse validate on the way in; Document.Build materializes a
// core.Hypergraph. Loader adds fsnotify-based hot reload with OnChange
// callbacks.
package config
