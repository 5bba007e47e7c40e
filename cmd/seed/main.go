package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/Koundinya12/UserService/config"
	"github.com/Koundinya12/UserService/internal/domain/entity"
	pginfra "github.com/Koundinya12/UserService/internal/infrastructure/postgres"
)

// Seeds a couple of demo users (one with addresses) through the
// repository, exercising the same save path the service uses.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	repo := pginfra.NewUserRepository(pool)

	users := []*entity.User{
		{
			ID:       "demo-1",
			Username: "demoUser",
			Email:    "demo@example.com",
			Addresses: []entity.Address{
				{Street: "1 Demo Street", City: "Springfield", State: "IL", ZipCode: "62701", Country: "US", Type: "home"},
				{Street: "200 Office Park", City: "Springfield", State: "IL", ZipCode: "62702", Country: "US", Type: "work"},
			},
		},
		{
			ID:       "demo-2",
			Username: "secondUser",
			Email:    "second@example.com",
		},
	}

	for _, u := range users {
		saved, err := repo.Save(ctx, u)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", u.ID, err)
		}
		fmt.Printf("seeded user: id=%s username=%s email=%s addresses=%d\n",
			saved.ID, saved.Username, saved.Email, len(saved.Addresses))
	}
}
