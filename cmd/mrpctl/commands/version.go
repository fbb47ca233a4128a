package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print mrpctl's version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("mrpctl %s (%s)\n", Version, Commit)
		return nil
	},
}
