package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devconnect/internal/handlers"
	"devconnect/internal/logger"
	"devconnect/internal/repository"
	"devconnect/internal/server"
	"devconnect/internal/service"

	_ "devconnect/docs"

	"github.com/rs/cors"
	"github.com/spf13/viper"
)

// @title        DevConnect API
// @version      1.0
// @description  Social profile service: registration, JWT auth, profiles, GitHub lookup.

// @securityDefinitions.apikey ApiKeyAuth
// @in   header
// @name x-auth-token

func main() {
	// load config.yml first so the log level comes from it
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log_level"))

	// open DB
	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies; config is read once here and passed in explicitly
	repos := repository.NewRepository(db)
	services := service.NewService(repos,
		service.AuthConfig{
			SigningKey: viper.GetString("auth.signing_key"),
			TokenTTL:   time.Duration(viper.GetInt("auth.token_ttl_hours")) * time.Hour,
		},
		service.GithubConfig{
			ClientID:     viper.GetString("github.client_id"),
			ClientSecret: viper.GetString("github.client_secret"),
		},
	)
	apiHandler := handlers.NewHandler(services, log, viper.GetInt("auth.rate_limit_rpm"))

	// the React client runs on its own origin during development
	withCORS := newCORS().Handler(apiHandler.InitRoutes())

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), withCORS, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.SetDefault("port", "8080")
	viper.SetDefault("log_level", logger.InfoLevel)
	viper.SetDefault("auth.token_ttl_hours", 100)
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "devconnect.db")
		dbPath = "devconnect.db"
	}
	return repository.InitDB(dbPath)
}

// newCORS builds the CORS wrapper from config.
func newCORS() *cors.Cors {
	origins := viper.GetStringSlice("cors.origins")
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "x-auth-token"},
	})
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler http.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler); err != nil && err != http.ErrServerClosed {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
