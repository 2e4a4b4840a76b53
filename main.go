package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"simpleblog/app/auth"
	"simpleblog/app/config"
	"simpleblog/app/models"
	"simpleblog/app/routes"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("simpleblog version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: simpleblog <command>
Commands:
  help        Display this help message.
  version     Show version information.
  serve       Run the blog API server. Configuration comes from the
              environment: DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME,
              SECRET_KEY, LISTEN_ADDR and optionally REVOCATION_DB to
              enable the token denylist and the logout endpoint.
`
	fmt.Println(helpText)
}

// serve opens the database, migrates the schema and starts the API server.
func serve() {
	cfg := config.Load()
	if cfg.SecretKey == "" {
		log.Fatal("SECRET_KEY must be set")
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	tokens := auth.NewTokenService([]byte(cfg.SecretKey))
	if cfg.RevocationDB != "" {
		store, err := auth.OpenRevocationStore(cfg.RevocationDB)
		if err != nil {
			log.Fatalf("Failed to open revocation store: %v", err)
		}
		defer store.Close()
		tokens.SetRevocationStore(store)
		slog.Info("token revocation enabled", "path", cfg.RevocationDB)
	}

	router := routes.SetupRoutes(db, tokens)

	slog.Info("starting blog API server", "addr", cfg.ListenAddr)
	if err := routes.StartServer(cfg.ListenAddr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
