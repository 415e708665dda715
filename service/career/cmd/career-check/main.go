package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"UltimateCareer/service/career/internal/career"
	"UltimateCareer/service/career/internal/config"
	"UltimateCareer/service/career/internal/db"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 1) Carica env per connessione DB.
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

	// 2) Risolve user_id (da env o dalla prima career nel DB).
	userID, err := loadUserID(database)
	if err != nil {
		logger.Error("user id non disponibile", "error", err)
		os.Exit(1)
	}

	// 3) Chiama il service di dominio e stampa il risultato.
	service := career.NewService(career.NewRepo(database), logger)
	careers, err := service.FindAllByUser(context.Background(), userID)
	if err != nil {
		logger.Error("errore lettura career", "error", err)
		os.Exit(1)
	}
	if len(careers) == 0 {
		logger.Error("nessuna career", "user_id", userID)
		os.Exit(1)
	}

	fmt.Printf("user_id=%s careers=%d\n", userID, len(careers))
	for _, c := range careers {
		fmt.Printf("career id=%s team_id=%s round=%d budget=%s reputation=%d status=%s\n",
			c.ID, c.TeamID, c.CurrentRound, c.Budget, c.Reputation, c.Status)
	}
}

// loadUserID usa USER_ID se presente, altrimenti prende la career piu' vecchia.
func loadUserID(database *sqlx.DB) (uuid.UUID, error) {
	if raw := os.Getenv("USER_ID"); raw != "" {
		return uuid.Parse(raw)
	}

	const query = `
SELECT user_id
FROM careers
ORDER BY created_at ASC
LIMIT 1`

	var userID uuid.UUID
	if err := database.Get(&userID, query); err != nil {
		return uuid.Nil, err
	}
	return userID, nil
}
