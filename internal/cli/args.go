package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// OptionalRootPath accepts zero or one root directory argument.
func OptionalRootPath(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("accepts at most 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireInputPath validates that exactly one input table argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireInputPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <input>

Usage: %s

Example:
  %s variables.csv --column Name`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireTwoTables validates that exactly two result tables are provided.
func RequireTwoTables(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf(`missing required argument: expected <a> <b>, received %d arg(s)

Usage: %s

Example:
  %s before.csv after.csv`, len(args), cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}
