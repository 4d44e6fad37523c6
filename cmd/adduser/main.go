// Command adduser provisions a login account with group memberships.
//
//	adduser -username alice -password secret123 -groups Admin,HR
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cmlabs-hris/hris-attendance-go/internal/config"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-attendance-go/internal/repository/postgresql"
	accessService "github.com/cmlabs-hris/hris-attendance-go/internal/service/access"
	serviceAuth "github.com/cmlabs-hris/hris-attendance-go/internal/service/auth"
)

func main() {
	var (
		username = flag.String("username", "", "login name")
		email    = flag.String("email", "", "optional email address")
		password = flag.String("password", "", "password, at least 8 characters")
		groups   = flag.String("groups", "Viewer", "comma separated groups (Admin, HR, Viewer)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initialising jwt:", err)
		os.Exit(1)
	}
	authService := serviceAuth.NewAuthService(postgresql.NewTransactor(db), postgresql.NewUserRepository(db), JWTService, accessService.NewGroupPolicy())

	created, err := authService.CreateUser(ctx, auth.CreateUserRequest{
		Username: *username,
		Email:    *email,
		Password: *password,
		Groups:   splitGroups(*groups),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating user:", err)
		db.Close()
		os.Exit(1)
	}

	fmt.Printf("created user %s (%s) groups=%s\n", created.Username, created.ID, strings.Join(created.Groups, ","))
}

func splitGroups(raw string) []string {
	var groups []string
	for _, g := range strings.Split(raw, ",") {
		if g = strings.TrimSpace(g); g != "" {
			groups = append(groups, g)
		}
	}
	return groups
}
