package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
	mongostore "github.com/pamelashiell-afk/finlay-bear-tracker/internal/infrastructure/db/mongo"
)

// bearCommand groups bear administration.
func bearCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bear",
		Short: "Manage tracked bears",
	}
	cmd.AddCommand(bearCreateCommand())
	return cmd
}

type bearFlags struct {
	id, name, color string
	city, country   string
	lat, lng        float64
}

func bearCreateCommand() *cobra.Command {
	var f bearFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a bear and its starting point",
		Example: `  bearwatch bear create --id finlay --name Finlay --lat 55.9533 --lng -3.1883
  bearwatch bear create --name Hamish --city Inverness --country Scotland`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := f.input(cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng"))
			return createBear(cmd.Context(), in)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.id, "id", "", "bear id; generated when empty")
	fl.StringVar(&f.name, "name", "", "display name")
	fl.StringVar(&f.color, "color", "", "map color, e.g. #1f77b4")
	fl.StringVar(&f.city, "city", "", "origin city, geocoded when no coordinates are given")
	fl.StringVar(&f.country, "country", "", "origin country")
	fl.Float64Var(&f.lat, "lat", 0, "origin latitude")
	fl.Float64Var(&f.lng, "lng", 0, "origin longitude")
	_ = cmd.MarkFlagRequired("name")
	cmd.MarkFlagsRequiredTogether("lat", "lng")

	return cmd
}

func (f bearFlags) input(withCoordinates bool) ports.CreateBearInput {
	in := ports.CreateBearInput{
		ID:          f.id,
		Name:        f.name,
		OriginPlace: domain.Place{City: f.city, Country: f.country},
		Color:       f.color,
	}
	if withCoordinates {
		in.Origin = &domain.Coordinates{Lat: f.lat, Lng: f.lng}
	}
	return in
}

func createBear(ctx context.Context, in ports.CreateBearInput) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(context.WithoutCancel(ctx))

	bear, err := a.bearService(mongostore.NewBearRepository(a.db)).CreateBear(ctx, in)
	if err != nil {
		return fmt.Errorf("create bear: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(bear)
}
