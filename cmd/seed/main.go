package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/photocards/config"
	"github.com/oksasatya/photocards/internal/domain/entity"
	"github.com/oksasatya/photocards/internal/domain/repository"
	"github.com/oksasatya/photocards/internal/infrastructure/mongodb"
	"github.com/oksasatya/photocards/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	client, err := mongodb.NewClient(ctx, cfg.MongoURI, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(cfg.MongoDatabase)
	if err := mongodb.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}
	users := mongodb.NewUserRepository(db)
	cards := mongodb.NewCardRepository(db)

	email := "demo@photocards.dev"
	password := "password123"
	hash, err := helpers.HashPassword(password, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	user := &entity.User{Email: email, Password: hash}
	user.ApplyDefaults()
	switch err := users.Create(ctx, user); {
	case errors.Is(err, repository.ErrDuplicateEmail):
		existing, err := users.GetCredentials(ctx, email)
		if err != nil {
			log.Fatalf("failed to load existing demo user: %v", err)
		}
		user = existing
		fmt.Printf("demo user already present: id=%s email=%s\n", user.ID, email)
	case err != nil:
		log.Fatalf("failed to seed user: %v", err)
	default:
		fmt.Printf("seeded user: id=%s email=%s password=%s\n", user.ID, email, password)
	}

	demo := []entity.Card{
		{Name: "Arkhyz", Link: "https://pictures.s3.yandex.net/frontend-developer/cards-compressed/arkhyz.jpg"},
		{Name: "Lake Baikal", Link: "https://pictures.s3.yandex.net/frontend-developer/cards-compressed/baikal.jpg"},
	}
	for i := range demo {
		card := demo[i]
		card.Owner = user.ID
		if err := cards.Create(ctx, &card); err != nil {
			log.Fatalf("failed to seed card %q: %v", card.Name, err)
		}
		fmt.Printf("seeded card: id=%s name=%s\n", card.ID, card.Name)
	}
}
