package main

import (
	"os"

	"github.com/spf13/cobra"

	"campusdesk/internal/interfaces/cli/seed"
	"campusdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "campusdesk",
		Short: "CampusDesk - campus help desk backend",
		Long:  `CampusDesk is the campus help desk ticketing backend with built-in server and seeding commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
