package textio

import "golang.org/x/text/cases"

// Folder applies Unicode case folding.
// A Folder is not safe for concurrent use; give each goroutine its own.
type Folder struct {
	caser cases.Caser
}

// NewFolder returns a ready Folder.
func NewFolder() *Folder {
	return &Folder{caser: cases.Fold()}
}

// Fold returns the case-folded form of s.
func (f *Folder) Fold(s string) string {
	return f.caser.String(s)
}
