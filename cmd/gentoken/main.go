package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"Scribe/internal/auth"
	"Scribe/internal/core/users"
	postgresRepo "Scribe/internal/db/postgres"
)

// gentoken mints a bearer token for local development.
//
// Usage:
//
//	go run ./cmd/gentoken -id 1
//	go run ./cmd/gentoken -seed alice        # creates the user first
//
// The secret and issuer default to JWT_SECRET and JWT_ISSUER so the token
// verifies against a server started with the same environment.
func main() {
	fs := flag.NewFlagSet("gentoken", flag.ExitOnError)

	userID := fs.Int64("id", 0, "user ID to issue the token for")
	seed := fs.String("seed", "", "create a user with this username and issue the token for it")
	secret := fs.String("s", os.Getenv("JWT_SECRET"), "JWT secret key")
	issuer := fs.String("iss", envOr("JWT_ISSUER", "scribe"), "token issuer")
	dsn := fs.String("d", os.Getenv("DATABASE_URL"), "database DSN (needed with -seed)")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	if *seed != "" {
		id, err := seedUser(context.Background(), *dsn, *seed)
		if err != nil {
			log.Fatalf("Failed to seed user: %v", err)
		}
		*userID = id
		fmt.Fprintf(os.Stderr, "Created user %q with ID %d\n", *seed, id)
	}

	if *userID <= 0 {
		log.Fatal("a positive -id or a -seed username is required")
	}

	token, err := auth.NewTokenManager([]byte(*secret), *issuer).Issue(*userID, *ttl)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}

	fmt.Println(token)
}

func seedUser(ctx context.Context, dsn, username string) (int64, error) {
	if dsn == "" {
		return 0, fmt.Errorf("database DSN is required (DATABASE_URL or -d)")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	if err := postgresRepo.RunMigrations(ctx, db); err != nil {
		return 0, err
	}

	service := users.NewUserService(postgresRepo.NewUserRepository(db))
	user, err := service.CreateUser(ctx, users.CreateUserRequest{Username: username})
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
