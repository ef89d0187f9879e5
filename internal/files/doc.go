// Package files groups the file-facing building blocks of varfind:
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: Tree traversal, filtering and per-line target matching
//   - loader: Reading search targets from a delimited table
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/varfind/internal/files/loader"
//	    "github.com/vvka-141/varfind/internal/files/scanner"
//	)
//
//	targets, err := loader.NewLoader().Load("inventory.csv", "Name")
//	report, err := scanner.NewScanner(logger).Scan(ctx, cfg, targets)
package files
