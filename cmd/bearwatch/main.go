package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	_ "github.com/pamelashiell-afk/finlay-bear-tracker/docs"
)

// @title                       bearwatch API
// @version                     1.0
// @description                 Sighting reports and journey maps for tracked bears.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// rootCommand creates the bearwatch command tree.
func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "bearwatch",
		Short:         "Bear sighting tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		serveCommand(),
		bearCommand(),
		adminCommand(),
	)
	return root
}
