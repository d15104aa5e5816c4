package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dairy-api",
	Short: "Authenticated diary entry API",
	Long:  "dairy-api serves a bearer-token authenticated CRUD API for personal diary entries.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
