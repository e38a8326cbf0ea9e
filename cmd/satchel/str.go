// Str command group exposes the string-matching helpers. Each subcommand
// prints true or false; a false result also exits with code 1.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/strutil"
)

var strCmd = &cobra.Command{
	Use:   "str",
	Short: "String matching helpers",
}

var strContainsCmd = &cobra.Command{
	Use:   "contains <haystack> <needle>",
	Short: "Report whether haystack contains needle",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printBool(strutil.Contains(args[0], args[1]))
	},
}

var strContainsOneOfCmd = &cobra.Command{
	Use:   "contains-one-of <haystack> <needle>...",
	Short: "Report whether haystack contains any of the needles",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printBool(strutil.ContainsOneOf(args[0], args[1:]))
	},
}

var strEndsWithCmd = &cobra.Command{
	Use:   "ends-with <haystack> <needle>",
	Short: "Report whether haystack ends with needle",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printBool(strutil.EndsWith(args[0], args[1]))
	},
}

func init() {
	strCmd.AddCommand(strContainsCmd)
	strCmd.AddCommand(strContainsOneOfCmd)
	strCmd.AddCommand(strEndsWithCmd)
}

// printBool prints the result and maps false to errNoMatch so main can exit
// with a distinguishing code.
func printBool(result bool) error {
	fmt.Println(result)
	if !result {
		return errNoMatch
	}
	return nil
}
