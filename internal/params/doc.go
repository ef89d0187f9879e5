// Package params parses repeated key=value command-line arguments.
//
// Order is preserved: the scan command runs one pass per --column flag in
// the order given, so results are produced in a predictable sequence.
package params
