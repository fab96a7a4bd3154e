// Package indexes provides the three access structures the postdex catalog
// keeps synchronized over one logical set of records.
//
// # Overview
//
//  1. HashTable (point lookup)
//     A fixed-bucket chained hash from a string key to a value. Lookups are
//     O(1) on average. Duplicate keys are allowed: a later insert is appended
//     to the chain and Search keeps returning the first-inserted entry.
//
//  2. Tree (range queries)
//     An unbalanced binary search tree ordered by the string key
//     (lexicographic). Range returns every value whose key falls in an
//     inclusive interval, visiting a node before either of its subtrees, so
//     the output follows traversal order, not key order. Balanced is a
//     drop-in B-tree variant with the same surface whose Range output is
//     sorted ascending.
//
//  3. Priority (top-by-rank)
//     A binary max-heap parameterized by an explicit comparator. Peek is
//     O(1), push and extract are O(log n), and Descending sorts a snapshot
//     without disturbing the heap.
//
// # Consistency
//
// The structures know nothing about each other. The catalog fans every
// insert out to all three and serializes access, so a value reachable
// through one structure is reachable through the other two.
//
// # Failure semantics
//
// A miss is a normal result, reported with an ok-style boolean. The only
// error any structure returns is ErrEmptyIndex from Priority.PopMax.
package indexes
