// Package scanner finds occurrences of search targets in a directory tree.
//
// The scanner is responsible for:
//   - Walking the tree depth-first, skipping directories whose path contains
//     an excluded fragment
//   - Selecting files by base-name glob and excluded extensions
//   - Decoding each file as text and matching case-folded lines against all
//     targets at once
//   - Collecting per-file read failures as problems without stopping the scan
//
// The scanner is filesystem-agnostic through the filesystem.FileSystemProvider
// interface, enabling both production use with the OS filesystem and testing
// with in-memory filesystems.
package scanner
