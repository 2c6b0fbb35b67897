// Package critpath answers three questions about an undirected weighted graph
// and two of its vertices A and B:
//
//  1. How far apart are A and B?
//  2. Which edges lie on at least one shortest A→B path?
//  3. Which edges lie on every shortest A→B path (the critical edges)?
//
// The module is organized in small packages, lowest layer first:
//
//	core/          - thread-safe graph with integer vertices and stable edge IDs
//	builder/       - deterministic graph generators (path, cycle, grid, ladder, random)
//	dijkstra/      - single-source distances with a binary heap
//	shortestedges/ - classification of edges by the distance identity dA[u]+w+dB[v]=D
//	pathcount/     - arbitrary-precision counts of shortest paths from each end
//	critical/      - the full analysis: distances, path edges and critical edges
//	graphio/       - the "N M / u v w" text format and report writers
//	cmd/critpath/  - command line front end (analysis and generate)
//
// Quick example:
//
//	    1
//	A───────C
//	│ 1     │ 1
//	B───────D
//	    1
//
// Both A-C-D and A-B-D have length 2, so every edge is on a shortest A→D path
// but none is critical and part three of the report is -1.
//
//	go install github.com/katalvlaran/critpath/cmd/critpath@latest
package critpath
