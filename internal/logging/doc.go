// Package logging provides concrete implementations of the varfind.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr (or any writer), colouring
//     prefixes when the destination is a terminal
//   - NullLogger: Discards all messages (useful for testing and --quiet)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
