// Command createeditor adds an editor account. Editors have no public sign-up route.
//
//	go run ./cmd/createeditor -email ed@example.com -name Ed
//
// The password is read from -password or, when empty, from EDITOR_PASSWORD.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"eventlisting/config"
	"eventlisting/internal/adapters/auth"
	"eventlisting/internal/repository/postgres"
	"eventlisting/internal/services"
)

func main() {
	email := flag.String("email", "", "editor email (required)")
	password := flag.String("password", "", "editor password, defaults to $EDITOR_PASSWORD")
	name := flag.String("name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	flag.Parse()

	if *password == "" {
		*password = os.Getenv("EDITOR_PASSWORD")
	}
	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		fail(err)
	}
	defer db.Close()

	svc := services.NewAuthService(
		postgres.NewUserRepository(db),
		auth.NewBcryptHasher(auth.DefaultCost),
		auth.NewJWTIssuer(cfg.JWTSecret),
		cfg.TokenExpiry,
	)
	user, err := svc.SignUp(context.Background(), *email, *password, *name, *lastName)
	if err != nil {
		fail(err)
	}
	logger.Info("editor created", "id", user.ID, "email", user.Email)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "createeditor:", err)
	os.Exit(1)
}
