// Kinds command lists the primitive kind names collections can declare.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/collection"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the primitive kind names recognized by typed collections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds := collection.Kinds()

		if outputJSON() {
			out, err := json.MarshalIndent(kinds, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal kinds: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		for _, k := range kinds {
			fmt.Println(k)
		}
		return nil
	},
}
