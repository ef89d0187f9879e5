// Package services wires the loader, scanner and writer into the search
// workflow run by the CLI.
package services
