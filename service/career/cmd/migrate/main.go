package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"UltimateCareer/service/career/internal/config"
	"UltimateCareer/service/career/internal/db"
	"github.com/jmoiron/sqlx"
)

// Applica le migrazioni embedded e poi, se passati, i file SQL di seed.
// Uso: go run ./service/career/cmd/migrate [seed.sql ...]
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 1) Env e DSN.
	config.LoadDotenv(logger, "service/career/.env")
	dbCfg, err := config.LoadDB()
	if err != nil {
		logger.Error("config non valida", "error", err)
		os.Exit(1)
	}

	database, err := db.Open(dbCfg.URL())
	if err != nil {
		logger.Error("db connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// 2) Schema.
	version, err := db.Migrate(database.DB)
	if err != nil {
		logger.Error("migrazioni fallite", "error", err)
		os.Exit(1)
	}
	logger.Info("schema aggiornato", "version", version)

	// 3) Seed opzionali, ognuno nella sua transazione.
	for _, file := range os.Args[1:] {
		if err := execSQLFile(database, file); err != nil {
			logger.Error("esecuzione sql fallita", "file", file, "error", err)
			os.Exit(1)
		}
		logger.Info("sql eseguito", "file", file)
	}
}

func execSQLFile(database *sqlx.DB, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return db.InTx(ctx, database, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, string(content))
		return err
	})
}
