package match

import (
	"sort"

	"github.com/cloudflare/ahocorasick"
)

// Automaton is an Aho-Corasick matcher over pattern bytes.
// It is immutable after construction and safe for concurrent use.
type Automaton struct {
	ac *ahocorasick.Matcher
	n  int
	// owners maps each distinct non-empty pattern to the indices it was given at.
	owners [][]int
	// empty holds indices of zero-length patterns, which match every text.
	empty []int
}

// NewAutomaton builds an automaton over patterns.
func NewAutomaton(patterns []string) *Automaton {
	a := &Automaton{n: len(patterns)}

	// The dictionary keeps one index per trie node, so repeated patterns
	// are collapsed here and fanned out again in FindAll.
	slot := make(map[string]int, len(patterns))
	var dict []string
	for i, p := range patterns {
		if p == "" {
			a.empty = append(a.empty, i)
			continue
		}
		s, ok := slot[p]
		if !ok {
			s = len(dict)
			slot[p] = s
			dict = append(dict, p)
			a.owners = append(a.owners, nil)
		}
		a.owners[s] = append(a.owners[s], i)
	}

	if len(dict) > 0 {
		a.ac = ahocorasick.NewStringMatcher(dict)
	}
	return a
}

func (a *Automaton) Len() int { return a.n }

func (a *Automaton) FindAll(text string, dst []int) []int {
	start := len(dst)
	dst = append(dst, a.empty...)

	if a.ac != nil && len(text) > 0 {
		for _, s := range a.ac.MatchThreadSafe([]byte(text)) {
			dst = append(dst, a.owners[s]...)
		}
	}

	return dedupe(dst, start)
}

// dedupe sorts dst[start:] and removes repeated indices in place.
func dedupe(dst []int, start int) []int {
	found := dst[start:]
	if len(found) < 2 {
		return dst
	}
	sort.Ints(found)
	w := 1
	for r := 1; r < len(found); r++ {
		if found[r] != found[w-1] {
			found[w] = found[r]
			w++
		}
	}
	return dst[:start+w]
}
