// Package cmd provides CLI commands for the HostelBuddy application.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hostelbuddy",
	Short: "HostelBuddy - An AI hostel assistant",
	Long:  `HostelBuddy is an AI assistant that routes student queries to hostel specialists for complaints, lost & found, mess, rules, and facility status.`,
}

func Execute() error {
	return rootCmd.Execute()
}
