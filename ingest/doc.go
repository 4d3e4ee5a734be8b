// Package ingest reads delimited edge and node files into a validated
// graph.EdgeList.
//
// What
//
//   - Edge file: one edge per row with source, destination and optional
//     weight and edge-type columns (defaults "subject", "object",
//     "weight", "edge_label").
//   - Node file (optional): node id and optional type column (defaults
//     "id", "category"). Without it, nodes are the sorted set of edge
//     endpoints.
//   - Files ending in ".gz" are decompressed on the fly.
//   - Without a header row, column options are zero-based indices ("0", "1").
//
// Checks
//
//	Everything the index assumes clean is enforced here:
//	  - rows of inconsistent width (CheckRows),
//	  - duplicate (source, destination[, type]) rows (CheckDuplicates),
//	  - duplicate node ids and edge endpoints missing from the node file,
//	  - unparsable or negative weights.
//
// Types
//
//	Type strings are mapped to int16 ids by sorted order; empty cells take
//	DefaultNodeType / DefaultEdgeType. The dictionaries are returned in
//	Result so ids can be mapped back.
//
// Logging
//
//	Progress is logged through the configured *logrus.Entry; the default
//	logger discards everything.
package ingest
