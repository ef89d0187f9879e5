// Package report serializes scan results and reads them back.
//
// Writer emits one row per (target, occurrence) in ResultMap order, as CSV
// (the default) or YAML depending on the destination's extension. Read and
// Diff turn written tables back into triples so two runs can be compared.
package report
