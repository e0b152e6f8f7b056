package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/storefront/core/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "storefront",
		Short: "Storefront API Server",
		Long:  `Storefront is a small e-commerce backend exposing product and cart REST endpoints over flat-file JSON storage.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewSeedCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
