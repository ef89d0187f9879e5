// Package loader reads search targets from a delimited table.
//
// The table must start with a header row. Values under the requested column
// are collected into a varfind.TargetSet; empty cells and rows too short to
// reach the column are skipped. A leading byte order mark is honoured, so
// spreadsheets exported as UTF-8 with BOM or UTF-16 load unchanged.
//
// Loading fails soft: whatever was read before a failure is returned together
// with a varfind.Error of kind SourceRead.
package loader
