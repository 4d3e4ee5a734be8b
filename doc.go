// Package walkvec generates biased random-walk corpora for graph
// embeddings (node2vec-style skip-gram training).
//
// What is walkvec?
//
//	An immutable, flat-array graph index with precomputed alias tables,
//	and a parallel, deterministic walk generator on top of it:
//		• alias   – Walker alias tables: O(n) setup, O(1) draws
//		• graph   – node/edge index, first- and second-order transition tables
//		• walk    – repetitions × nodes walks, reproducible for a seed
//		• window  – skip-gram (center, context) pairs from walk rows
//		• ingest  – delimited edge/node files (.gz aware) → validated edge list
//		• export  – walks or pairs as TSV
//		• config  – TOML run settings
//
// Transition rule for a walk that arrived at v from u and considers x:
//
//	weight(v→x) × 1/p        if x == u          (ReturnWeight)
//	weight(v→x) × 1          if u→x is an edge
//	weight(v→x) × 1/q        otherwise          (ExploreWeight)
//
// further multiplied by ChangeNodeTypeWeight when type(x) ≠ type(v) and by
// ChangeEdgeTypeWeight when type(v→x) ≠ type(u→v).
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╱ │
//	    C   D
//
//	walk from A, length 4:  A → B → D → B
//
// The walkgen command (cmd/walkgen) wires the packages into a pipeline:
//
//	go run ./cmd/walkgen -length 80 -repetitions 10 -out walks.tsv.gz edges.tsv
package walkvec
