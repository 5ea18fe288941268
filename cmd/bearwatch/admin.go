package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/service"
	mongostore "github.com/pamelashiell-afk/finlay-bear-tracker/internal/infrastructure/db/mongo"
)

// adminCommand groups curator account management.
func adminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage curator accounts",
	}
	cmd.AddCommand(createUserCommand())
	return cmd
}

func createUserCommand() *cobra.Command {
	var username, password, email string

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a curator allowed to register bears",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return createUser(cmd.Context(), username, password, email, cmd)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name")
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	cmd.Flags().StringVar(&email, "email", "", "contact address")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func createUser(ctx context.Context, username, password, email string, cmd *cobra.Command) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(context.WithoutCancel(ctx))

	repo := mongostore.NewAuthRepository(a.db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	// Tokens are never issued here, so the signing secret is irrelevant.
	user, err := service.NewAuthService(repo, a.cfg.JWTSecret, tokenTTL).Register(ctx, username, password, email)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created curator %q (%s)\n", user.Username, user.ID)
	return nil
}
