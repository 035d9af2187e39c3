// Package treedist computes the edit distance between ordered labeled trees.
//
// Trees are stored as arenas: nodes live in a slice and refer to their
// children by index, so no pointer-linked structure is built.
//
//	t := treedist.New("table")
//	row := t.Add(t.Root(), "row")
//	t.Add(row, "cell")
//
// [Distance] implements the Zhang-Shasha dynamic program. Inserting or
// deleting a node costs 1, so inserting or deleting a whole subtree costs its
// node count. Relabeling costs whatever the caller's rename function returns,
// which must lie in [0, 1] for the distance to stay bounded by the larger
// tree's size.
//
// Time is O(|T1| |T2| min(depth, leaves)^2) and the memo is a flat
// |T1| x |T2| table indexed by post-order position.
package treedist
