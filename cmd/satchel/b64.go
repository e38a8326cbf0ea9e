// B64 command translates URL-safe base64 to the standard alphabet.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/strutil"
)

var b64Cmd = &cobra.Command{
	Use:   "b64 <token>",
	Short: "Translate a URL-safe base64 token to the standard alphabet",
	Long: `B64 substitutes the URL-safe base64 alphabet characters with their
standard counterparts, positionally: '_' -> '/', '-' -> '+', '*' -> '='.
No length validation is performed.

Example:
  satchel b64 'eyJhbGciOiJSUzI1NiJ9*'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		translated := strutil.ToURLUnsafe(args[0])

		if outputJSON() {
			out, err := json.MarshalIndent(map[string]string{
				"input":  args[0],
				"output": translated,
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal result: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Println(translated)
		return nil
	},
}
