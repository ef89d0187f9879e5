package match

import "strings"

// Naive tests every pattern against every text.
type Naive struct {
	patterns []string
}

// NewNaive returns a Naive matcher over patterns.
func NewNaive(patterns []string) *Naive {
	p := make([]string, len(patterns))
	copy(p, patterns)
	return &Naive{patterns: p}
}

func (n *Naive) Len() int { return len(n.patterns) }

func (n *Naive) FindAll(text string, dst []int) []int {
	for i, p := range n.patterns {
		if strings.Contains(text, p) {
			dst = append(dst, i)
		}
	}
	return dst
}
