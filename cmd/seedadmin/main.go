// cmd/seedadmin/main.go
//
// One-off command that seeds an administrator account directly into the
// document store, bypassing the HTTP surface. Meant to be run once against
// a fresh deployment.
package main

import (
	"context"
	"errors"
	"faction-api/config"
	"faction-api/db"
	"faction-api/logger"
	"faction-api/model"
	"faction-api/repository"
	"faction-api/service"
	"faction-api/store"
	"flag"
)

func main() {
	username := flag.String("username", "", "admin username (required)")
	password := flag.String("password", "", "admin password (required)")
	faction := flag.String("faction", "", "faction id (required)")
	rank := flag.Int("rank", 10, "admin rank")
	force := flag.Bool("force", false, "overwrite an existing account")
	flag.Parse()

	config.LoadConfig(".")
	logger.Init()

	if *username == "" || *password == "" || *faction == "" {
		logger.Log.Fatal("username, password and faction are required")
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the document store: %v", err)
	}
	defer redisClient.Close()

	documentStore := store.NewRedisStore(redisClient)
	userRepo := repository.NewUserRepository(documentStore)
	authService := service.NewAuthService(userRepo, repository.NewTokenRepository(documentStore), config.AppConfig)

	ctx := context.Background()

	_, err = userRepo.GetUserByUsername(ctx, *username)
	switch {
	case err == nil && !*force:
		logger.Log.Fatalf("User %q already exists; re-run with -force to overwrite", *username)
	case err != nil && !errors.Is(err, repository.ErrUserNotFound):
		logger.Log.Fatalf("Error checking for existing user: %v", err)
	}

	passwordHash, err := authService.HashPassword(*password)
	if err != nil {
		logger.Log.Fatalf("Error hashing password: %v", err)
	}

	admin := &model.User{
		Username:     *username,
		PasswordHash: passwordHash,
		FactionID:    *faction,
		Rank:         *rank,
		Blocked:      false,
	}
	if err := userRepo.CreateUser(ctx, admin); err != nil {
		logger.Log.Fatalf("Error creating admin user: %v", err)
	}

	logger.Log.WithField("username", *username).Info("Admin account seeded")
}
