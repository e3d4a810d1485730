package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/redeboard/cliparse"
	"github.com/danielhkuo/redeboard/handlers"
	"github.com/danielhkuo/redeboard/middleware"
	"github.com/danielhkuo/redeboard/models"
	"github.com/danielhkuo/redeboard/riot"
	"github.com/danielhkuo/redeboard/router"
	"github.com/danielhkuo/redeboard/session"
	"github.com/danielhkuo/redeboard/store"
)

func main() {
	// A .env file is optional; env vars may come from anywhere
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// One in-memory session: seeded store plus a fresh draft.
	// Nothing survives a restart.
	st := store.New(models.SeedPosts()...)
	sess := session.New()
	board := handlers.NewBoard(st, sess)
	images := riot.NewImages(cfg.ImageBaseURL)
	slog.Info("Board ready", "posts", st.Len(), "image_base_url", images.BaseURL)

	// Create router
	mux := router.NewRouter(board)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
