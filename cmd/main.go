package main

import (
	"context"
	"log"
	"net/http"

	"github.com/AnthonyVeilleux/COS498MidtermAV/internal/config"
	"github.com/AnthonyVeilleux/COS498MidtermAV/internal/handlers"
	"github.com/AnthonyVeilleux/COS498MidtermAV/internal/repository"
	"github.com/AnthonyVeilleux/COS498MidtermAV/internal/service/comments"
	"github.com/AnthonyVeilleux/COS498MidtermAV/internal/service/users"
	"github.com/AnthonyVeilleux/COS498MidtermAV/internal/session"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.MustLoad()

	conn, err := repository.NewConnection(ctx, cfg.StorageConfig.DSN)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	if err := repository.Seed(ctx, conn); err != nil {
		log.Fatalf("failed to seed storage: %v", err)
	}

	userRepo := repository.NewUserRepository(conn)
	commentRepo := repository.NewCommentRepository(conn)
	codec := session.NewCodec(cfg.SessionConfig.Secret, cfg.SessionConfig.TTL)

	userService := users.NewService(userRepo)
	commentService := comments.NewService(commentRepo)

	h := handlers.NewHandler(userService, commentService, codec, cfg.SessionConfig)

	log.Print("start listening on port " + cfg.ServerConfig.Port)
	log.Fatal(http.ListenAndServe("[::]:"+cfg.ServerConfig.Port, h.Routes()))
}
