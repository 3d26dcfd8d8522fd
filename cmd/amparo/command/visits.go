package command

import "github.com/spf13/cobra"

var visitsCmd = &cobra.Command{
	Use:   "visits",
	Short: "List, schedule and export visits",
}

func init() {
	rootCmd.AddCommand(visitsCmd)
}
