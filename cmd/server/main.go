// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/topguess/topguess/internal/cache"
	"github.com/topguess/topguess/internal/handlers"
	"github.com/topguess/topguess/internal/lobby"
	"github.com/topguess/topguess/internal/middleware"
	"github.com/topguess/topguess/internal/question"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)

	bank := loadBank(logger)
	store := lobby.NewStore(bank)

	if os.Getenv("REDIS_ADDR") != "" {
		if err := cache.ConnectRedis(); err != nil {
			logger.Warnf("Redis unavailable, event publishing disabled: %v", err)
			cache.Rdb = nil
		} else {
			logger.Info("Connected to Redis, event publishing enabled")
		}
	}

	srv := handlers.NewServer(store, logger)
	logged := middleware.LogMiddleware(logger)

	mux := http.NewServeMux()

	// lobby endpoints
	mux.Handle("/lobby/create", logged(http.HandlerFunc(handlers.CreateLobbyHandler(srv))))
	mux.Handle("/lobby/public", logged(http.HandlerFunc(handlers.ListPublicLobbiesHandler(srv))))
	mux.Handle("/lobby/join", logged(http.HandlerFunc(handlers.JoinLobbyHandler(srv))))
	mux.Handle("/lobby/leave", logged(http.HandlerFunc(handlers.LeaveLobbyHandler(srv))))
	mux.Handle("/lobby/ready", logged(http.HandlerFunc(handlers.SetReadyHandler(srv))))
	mux.Handle("/lobby/settings", logged(http.HandlerFunc(handlers.UpdateSettingsHandler(srv))))

	// game endpoints
	mux.Handle("/lobby/start", logged(http.HandlerFunc(handlers.StartGameHandler(srv))))
	mux.Handle("/lobby/next-round", logged(http.HandlerFunc(handlers.NextRoundHandler(srv))))
	mux.Handle("/lobby/answer", logged(http.HandlerFunc(handlers.SubmitAnswerHandler(srv))))
	mux.Handle("/lobby/status", logged(http.HandlerFunc(handlers.StatusHandler(srv))))

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("Running on %s with %d posts in the question bank", addr, bank.Len())
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// loadBank builds the question bank from the first configured source:
// Postgres, then a JSON catalog file, then the built-in catalog.
func loadBank(logger *logrus.Logger) *question.Bank {
	var (
		posts []question.Post
		err   error
	)

	switch {
	case os.Getenv("QUESTION_DB_URL") != "":
		posts, err = question.LoadPostgres(context.Background(), os.Getenv("QUESTION_DB_URL"))
		if err != nil {
			logger.Fatalf("failed to load question catalog from Postgres: %v", err)
		}
		logger.Infof("Loaded %d posts from Postgres", len(posts))
	case os.Getenv("QUESTION_FILE") != "":
		posts, err = question.LoadFile(os.Getenv("QUESTION_FILE"))
		if err != nil {
			logger.Fatalf("failed to load question catalog from file: %v", err)
		}
		logger.Infof("Loaded %d posts from %s", len(posts), os.Getenv("QUESTION_FILE"))
	default:
		posts = question.DefaultPosts()
	}

	bank, err := question.NewBank(posts)
	if err != nil {
		logger.Fatalf("invalid question catalog: %v", err)
	}
	return bank
}
