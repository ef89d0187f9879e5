// Package match finds which of a fixed set of patterns occur in a line.
//
// Patterns and text are expected to be case-folded by the caller; matching
// here is exact byte-substring containment. Two strategies are provided:
//   - Naive: one strings.Contains per pattern, O(patterns) per line
//   - Automaton: Aho-Corasick (github.com/cloudflare/ahocorasick), O(line length) per line
//
// Both report each pattern at most once per line and are safe for
// concurrent use once built.
package match
