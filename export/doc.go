// Package export writes walk matrices as text corpora.
//
// Two shapes are produced:
//
//	walks  one tab-separated line per walk, padding cells omitted
//	pairs  one "center<TAB>context" line per skip-gram pair (see package window)
//
// Tokens are node ids unless a naming function is supplied. Create opens
// an output file and compresses it when the path ends in ".gz".
package export
