// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines interfaces for file and directory operations, enabling
// scanner tests to run against an in-memory tree (including injected read
// failures) while production code walks the OS filesystem.
//
// Key interfaces:
//   - FileSystemProvider: Opens directories and files, stats paths
//   - Directory: Represents a directory that can be walked depth-first
//   - File: An entry met during a walk
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
