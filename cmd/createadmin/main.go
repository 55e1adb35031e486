// Command createadmin bootstraps the first admin account. Public signup can
// only create plain users, so a fresh deployment needs this one-shot tool
// (or an existing admin) before the admin surface is reachable.
package main

import (
	"context"
	"errors"
	"flag"
	"strings"
	"time"

	"github.com/campushub/campus-portal/internal/core/domain"
	"github.com/campushub/campus-portal/internal/core/service"
	"github.com/campushub/campus-portal/internal/infrastructure/config"
	mongodb "github.com/campushub/campus-portal/internal/infrastructure/db/mongo"
	"github.com/campushub/campus-portal/pkg/logger"
)

func main() {
	username := flag.String("username", "admin", "admin username")
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required, min 6 chars)")
	flag.Parse()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	if *email == "" || len(*password) < 6 {
		log.Fatal().Msg("usage: createadmin -email <email> -password <password> [-username <name>]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	digest, err := hasher.Hash(*password)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing failed")
	}

	now := time.Now().UTC()
	users := mongodb.NewUserRepository(db)
	created, err := users.Insert(ctx, &domain.User{
		Username:       strings.ToLower(*username),
		Email:          strings.ToLower(*email),
		PasswordDigest: digest,
		Role:           domain.RoleAdmin,
		DisplayName:    "Admin",
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			log.Fatal().Msg("admin user already exists")
		}
		log.Fatal().Err(err).Msg("admin creation failed")
	}

	log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("admin user created")
}
