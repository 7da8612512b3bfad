package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adalundhe/hostelbuddy/core/format"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show what HostelBuddy can help with",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), format.Greeting())
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
