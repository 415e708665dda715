package career

import (
	"context"
	"time"

	"UltimateCareer/pkg/money"
	"github.com/google/uuid"
)

// Contratti e modelli del dominio "career".
// Espongono cosa serve al resto dell'app senza dettagli di DB/gRPC.

// Authorizer risolve una career verificando che appartenga al richiedente.
// Tutti i servizi con scope career (squad, market, schedule) passano da qui.
type Authorizer interface {
	FindByID(ctx context.Context, id, requesterID uuid.UUID) (*Career, error)
}

// Status e' lo stato della career; active e' l'unico stato non terminale.
type Status string

const (
	StatusActive    Status = "active"
	StatusFinished  Status = "finished"
	StatusRelegated Status = "relegated"
	StatusChampion  Status = "champion"
)

// Valid indica se lo stato appartiene all'insieme chiuso.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusFinished, StatusRelegated, StatusChampion:
		return true
	}
	return false
}

// Terminal indica uno stato da cui non si torna ad active.
func (s Status) Terminal() bool {
	return s != StatusActive
}

// Career e' la partita di un utente con il club scelto.
type Career struct {
	ID           uuid.UUID   `db:"id"`
	UserID       uuid.UUID   `db:"user_id"`
	TeamID       uuid.UUID   `db:"team_id"`
	SeasonID     uuid.UUID   `db:"season_id"`
	DivisionID   uuid.UUID   `db:"division_id"`
	CurrentRound int         `db:"current_round"`
	Budget       money.Value `db:"budget"`
	Reputation   int         `db:"reputation"`
	Status       Status      `db:"status"`
	CreatedAt    time.Time   `db:"created_at"`
}

// Team e' il club scelto; serve solo il prestigio per budget e reputazione.
type Team struct {
	ID       uuid.UUID `db:"id"`
	Name     string    `db:"name"`
	Prestige int64     `db:"prestige"`
}

// Division e' il livello di campionato in cui parte la career.
type Division struct {
	ID             uuid.UUID `db:"id"`
	ChampionshipID uuid.UUID `db:"championship_id"`
	SeasonID       uuid.UUID `db:"season_id"`
	Name           string    `db:"name"`
	Level          int       `db:"level"`
}

type Season struct {
	ID   uuid.UUID `db:"id"`
	Year int       `db:"year"`
}

// CreateInput e' la richiesta di nuova career (club + campionato scelti).
type CreateInput struct {
	ChampionshipID string `json:"championship_id" validate:"required,uuid"`
	TeamID         string `json:"team_id" validate:"required,uuid"`
}

// ProgressInput aggiorna round corrente e stato; lo usa il collaboratore
// esterno che chiude le giornate e la stagione.
type ProgressInput struct {
	CurrentRound int    `json:"current_round" validate:"gte=1"`
	Status       Status `json:"status" validate:"required,oneof=active finished relegated champion"`
}
