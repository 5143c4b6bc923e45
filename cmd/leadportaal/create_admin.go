package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"leadportaal/internal/config"
	"leadportaal/internal/db"
	"leadportaal/internal/repository"
	"leadportaal/internal/service"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

var (
	adminUsername string
	adminPassword string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create or reset the dashboard admin account",
	Long: `Creates the dashboard admin account, or resets its password if the
username already exists. The password can be passed with --password, the
ADMIN_PASSWORD environment variable, or entered interactively.`,
	Run: func(cmd *cobra.Command, args []string) {
		password := adminPassword
		if password == "" {
			password = os.Getenv("ADMIN_PASSWORD")
		}
		if password == "" {
			prompt := &survey.Password{Message: "Wachtwoord voor " + adminUsername + ":"}
			if err := survey.AskOne(prompt, &password); err != nil {
				fmt.Println(translateSurveyErr(err))
				os.Exit(1)
			}
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Failed to load configuration: %v\n", err)
			os.Exit(1)
		}

		conn, err := db.Initialize(cfg)
		if err != nil {
			fmt.Printf("Failed to connect to database: %v\n", err)
			os.Exit(1)
		}
		defer conn.Close()

		authService := service.NewAuthService(
			repository.NewUserRepository(conn),
			cfg.JWTSecret,
			time.Duration(cfg.TokenLifetime)*time.Hour,
		)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		user, err := authService.SeedAdmin(ctx, adminUsername, password)
		if err != nil {
			fmt.Printf("Failed to create admin: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Admin account %q is ready.\n", user.Username)
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminUsername, "username", "admin", "Username for the admin account")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Password for the admin account (min 8 characters)")
}
