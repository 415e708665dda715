package db

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Open crea la connessione Postgres e la valida con un ping.
func Open(dsn string) (*sqlx.DB, error) {
	if dsn == "" {
		slog.Error("DB_DSN mancante")
		return nil, errors.New("DB_DSN is required")
	}

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	// Fallisce subito se il database non e' raggiungibile.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		slog.Error("ping database fallito", "error", err)
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Codici SQLSTATE di Postgres usati per tradurre gli errori in errori di dominio.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// IsUniqueViolation riconosce la violazione di un vincolo UNIQUE.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// IsForeignKeyViolation riconosce un riferimento a una riga inesistente.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}

// InTx esegue fn in una transazione: commit se fn ritorna nil, altrimenti rollback.
func InTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
