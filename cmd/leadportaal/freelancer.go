package main

import (
	"context"
	"fmt"
	"os"

	"leadportaal/internal/client"
	"leadportaal/internal/forms"

	"github.com/spf13/cobra"
)

var freelancerCmd = &cobra.Command{
	Use:   "freelancer",
	Short: "Apply as a freelancer",
	Long: `Walks through the freelancer application steps (personal details, profile,
portfolio) and submits the application to the lead API.

Example:
  leadportaal freelancer
  leadportaal freelancer --api https://api.example.nl`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Aanmelden als freelancer")

		err := runWizard(context.Background(), forms.FreelancerSchema(), client.New(apiURL))
		if err != nil {
			logger.Error("Freelancer application failed: %v", err)
			os.Exit(1)
		}
	},
}
