// Command devtoken mints a bearer token for a seeded user so the API can be
// exercised locally.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	authProcessor "redeem-server/internal/auth/processor"
	"redeem-server/internal/config"
	"redeem-server/internal/observability"
	"redeem-server/internal/store"
)

func main() {
	email := flag.String("email", "", "email of the user to sign a token for")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	logger := observability.NewLogger()
	defer logger.Sync()
	ctx := context.Background()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "usage: devtoken -email user@example.com [-ttl 24h]")
		os.Exit(2)
	}
	if os.Getenv("GO_ENV") == "production" {
		fmt.Fprintln(os.Stderr, "devtoken refuses to run with GO_ENV=production")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", err)
	}

	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		logger.Fatal(ctx, "failed to connect to database", err)
	}
	defer dataStore.Close()

	user, err := dataStore.GetUserByEmail(ctx, *email)
	if err != nil {
		logger.Fatal(ctx, "failed to find user", err)
	}

	auth := authProcessor.New(&dataStore, cfg.Auth.JWTSecret, logger)
	token, err := auth.GenerateJWTToken(ctx, user, *ttl)
	if err != nil {
		logger.Fatal(ctx, "failed to sign token", err)
	}

	fmt.Println(token)
}
