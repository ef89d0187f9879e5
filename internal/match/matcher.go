package match

import (
	"fmt"

	"github.com/vvka-141/varfind/pkg/varfind"
)

// Matcher reports which patterns a text contains.
type Matcher interface {
	// FindAll appends to dst the indices of the patterns contained in text,
	// each index at most once, in ascending order.
	FindAll(text string, dst []int) []int

	// Len returns the number of patterns.
	Len() int
}

// New builds the matcher selected by kind over patterns.
// Pattern indices in results refer to positions in patterns.
func New(kind varfind.MatcherKind, patterns []string) (Matcher, error) {
	switch kind {
	case varfind.MatcherNaive:
		return NewNaive(patterns), nil
	case varfind.MatcherAutomaton, "":
		return NewAutomaton(patterns), nil
	default:
		return nil, fmt.Errorf("unknown matcher %q: %w", kind, varfind.ErrInvalidConfig)
	}
}
