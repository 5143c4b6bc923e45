package main

import (
	"context"
	"fmt"
	"os"

	"leadportaal/internal/client"
	"leadportaal/internal/forms"

	"github.com/spf13/cobra"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Request a website quote",
	Long: `Walks through the quote request steps (project, budget, contact details)
and submits the request to the lead API.

Example:
  leadportaal quote
  leadportaal quote --api https://api.example.nl`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Offerte aanvragen")

		err := runWizard(context.Background(), forms.QuoteSchema(), client.New(apiURL))
		if err != nil {
			logger.Error("Quote submission failed: %v", err)
			os.Exit(1)
		}
	},
}
