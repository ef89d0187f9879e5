package report

import (
	"sort"

	"github.com/vvka-141/varfind/pkg/varfind"
)

// Difference lists the triples present in only one of two tables.
type Difference struct {
	OnlyInA []varfind.Triple
	OnlyInB []varfind.Triple
}

// Empty reports whether both tables hold the same triples.
func (d Difference) Empty() bool {
	return len(d.OnlyInA) == 0 && len(d.OnlyInB) == 0
}

// Diff compares two tables as sets; row order and duplicates are ignored.
// Both sides of the result are sorted.
func Diff(a, b []varfind.Triple) Difference {
	inA := toSet(a)
	inB := toSet(b)

	var d Difference
	for t := range inA {
		if _, ok := inB[t]; !ok {
			d.OnlyInA = append(d.OnlyInA, t)
		}
	}
	for t := range inB {
		if _, ok := inA[t]; !ok {
			d.OnlyInB = append(d.OnlyInB, t)
		}
	}
	sortTriples(d.OnlyInA)
	sortTriples(d.OnlyInB)
	return d
}

func toSet(triples []varfind.Triple) map[varfind.Triple]struct{} {
	set := make(map[varfind.Triple]struct{}, len(triples))
	for _, t := range triples {
		set[t] = struct{}{}
	}
	return set
}

func sortTriples(triples []varfind.Triple) {
	sort.Slice(triples, func(i, j int) bool {
		a, b := triples[i], triples[j]
		if a.Variable != b.Variable {
			return a.Variable < b.Variable
		}
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		return a.Line < b.Line
	})
}
