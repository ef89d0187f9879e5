package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/varfind/pkg/varfind"
)

// matcherNames contains valid --matcher values for shell completion.
var matcherNames = []string{string(varfind.MatcherAutomaton), string(varfind.MatcherNaive)}

// tableExtensions are the file types varfind reads and writes.
var tableExtensions = []string{"csv", "yaml", "yml"}

// completeMatchers provides shell completion for matcher flag values.
func completeMatchers(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, name := range matcherNames {
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}

// completeTables restricts file completion to table files.
func completeTables(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return tableExtensions, cobra.ShellCompDirectiveFilterFileExt
}
