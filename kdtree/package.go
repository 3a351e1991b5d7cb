// Package kdtree implements an immutable, packed k-d tree over 2-D
// points, binary-compatible with the reference JavaScript kdbush
// layout. A KDTree is built once via Builder and then only ever
// queried; there is no insert, delete, or rebalance after Finish.
package kdtree
