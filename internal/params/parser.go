package params

import (
	"fmt"
	"strings"
)

// Pair is one parsed key=value argument.
type Pair struct {
	Key   string
	Value string
}

// ParseKeyValuePairs converts "key=value" strings into pairs, keeping their order.
// The value may itself contain '='. Empty keys, empty values and repeated
// keys are rejected.
//
// Example:
//
//	pairs, err := ParseKeyValuePairs([]string{"Name=by_name.csv", "ID=by_id.csv"})
//	// Returns: []Pair{{"Name", "by_name.csv"}, {"ID", "by_id.csv"}}
func ParseKeyValuePairs(args []string) ([]Pair, error) {
	pairs := make([]Pair, 0, len(args))
	seen := make(map[string]bool, len(args))

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("argument %q is not in key=value format (example: --column Name=search_results_by_name.csv)", arg)
		}
		if key == "" {
			return nil, fmt.Errorf("argument has empty key: %q", arg)
		}
		if value == "" {
			return nil, fmt.Errorf("argument has empty value: %q", arg)
		}
		if seen[key] {
			return nil, fmt.Errorf("key %q given more than once", key)
		}
		seen[key] = true

		pairs = append(pairs, Pair{Key: key, Value: value})
	}

	return pairs, nil
}
