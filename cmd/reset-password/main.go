package main

import (
	"flag"
	"log"

	"go-labstock/internal/config"
	"go-labstock/internal/repository"
	"go-labstock/pkg/database"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	email := flag.String("email", "admin@lab.local", "account to reset")
	password := flag.String("password", "admin123", "new password")
	flag.Parse()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	userRepo := repository.NewUserRepo(db)

	user, err := userRepo.FindByEmail(*email)
	if err != nil {
		log.Fatalf("user %s not found in database: %v", *email, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	if err := userRepo.UpdatePassword(user.ID, string(hashedPassword)); err != nil {
		log.Fatalf("failed to update password: %v", err)
	}

	log.Printf("password for %s has been reset", *email)
}
