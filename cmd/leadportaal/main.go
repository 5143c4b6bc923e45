package main

import (
	"fmt"
	"os"

	"leadportaal/internal/logging"

	"github.com/spf13/cobra"
)

var logger *logging.Logger

// apiURL is where the wizard commands submit to.
var apiURL string

func initLogger() {
	logConfig := &logging.Config{
		File:       "~/.leadportaal/cli.log",
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}

	if err := logging.InitLogger(logConfig); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger = logging.GetGlobalLogger()
}

var rootCmd = &cobra.Command{
	Use:   "leadportaal",
	Short: "Leadportaal CLI - lead intake from the terminal",
	Long: `Leadportaal CLI walks through the same intake steps as the website forms
and submits the result to the lead API.`,
}

func main() {
	initLogger()

	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "Base URL of the lead API")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(freelancerCmd)
	rootCmd.AddCommand(createAdminCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
