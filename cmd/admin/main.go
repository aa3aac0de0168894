// Command admin provides maintenance commands that bypass the HTTP API.
//
//	admin createsuperuser -email admin@example.com -password secret
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/models"
)

func main() {
	log := logger.NewConsoleLogger("recipe-admin")

	if len(os.Args) < 2 || os.Args[1] != "createsuperuser" {
		fmt.Fprintln(os.Stderr, "usage: admin createsuperuser -email EMAIL -password PASSWORD [-username NAME]")
		os.Exit(2)
	}

	var user models.User
	fs := flag.NewFlagSet("createsuperuser", flag.ExitOnError)
	fs.StringVar(&user.Email, "email", "", "Email address")
	fs.StringVar(&user.Password, "password", "", "Password")
	fs.StringVar(&user.Username, "username", "", "Display name")
	_ = fs.Parse(os.Args[2:])

	cfg, err := config.GetAdminConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()
	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	auth := service.NewAuthValidationService(cfg.App.PasswordMinLength).
		Wrap(service.NewAuthService(store.NewUserRepository(db, log), cfg.App, log))

	created, err := auth.CreateSuperuser(ctx, user)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating superuser")
	}

	log.Info().Str("email", created.Email).Msg("superuser created")
}
